package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryDocStore is an in-memory DocStore used in tests and local
// development. It mirrors the Postgres store's merge and scan semantics at
// the top level of each document.
type MemoryDocStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage

	// FailSet and FailExists force errors, for exercising degraded paths.
	// FailSetPrefix limits FailSet to paths under that prefix.
	FailSet       error
	FailSetPrefix string
	FailExists    error
}

// NewMemoryDocStore creates an empty MemoryDocStore
func NewMemoryDocStore() *MemoryDocStore {
	return &MemoryDocStore{docs: map[string]json.RawMessage{}}
}

// Len reports how many documents are stored.
func (s *MemoryDocStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Set writes a document, replacing or merging on conflict.
func (s *MemoryDocStore) Set(_ context.Context, path string, doc interface{}, merge bool) error {
	if s.FailSet != nil && strings.HasPrefix(path, s.FailSetPrefix) {
		return s.FailSet
	}
	if _, _, err := splitPath(path); err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[path]
	if !merge || !ok {
		s.docs[path] = body
		return nil
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(existing, &merged); err != nil {
		return fmt.Errorf("failed to merge document %s: %w", path, err)
	}
	incoming := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &incoming); err != nil {
		return fmt.Errorf("failed to merge document %s: %w", path, err)
	}
	for k, v := range incoming {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to merge document %s: %w", path, err)
	}
	s.docs[path] = out
	return nil
}

// Get reads a single document into out.
func (s *MemoryDocStore) Get(_ context.Context, path string, out interface{}) error {
	s.mu.RLock()
	body, ok := s.docs[path]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", path, err)
	}
	return nil
}

// Exists probes for a document.
func (s *MemoryDocStore) Exists(_ context.Context, path string) (bool, error) {
	if s.FailExists != nil {
		return false, s.FailExists
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[path]
	return ok, nil
}

// Patch merges fields into an existing document.
func (s *MemoryDocStore) Patch(ctx context.Context, path string, fields map[string]interface{}) error {
	s.mu.RLock()
	_, ok := s.docs[path]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return s.Set(ctx, path, fields, true)
}

// Delete removes a document.
func (s *MemoryDocStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[path]; !ok {
		return ErrNotFound
	}
	delete(s.docs, path)
	return nil
}

// List returns the documents of one collection.
func (s *MemoryDocStore) List(_ context.Context, parent string) ([]Document, error) {
	return s.scan(func(path string) bool {
		p, _, err := splitPath(path)
		return err == nil && p == parent
	})
}

// Group performs a collection-group scan.
func (s *MemoryDocStore) Group(_ context.Context, leaf, prefix string) ([]Document, error) {
	return s.scan(func(path string) bool {
		_, l, err := splitPath(path)
		return err == nil && l == leaf && strings.HasPrefix(path, prefix)
	})
}

// FindInGroup performs a collection-group scan filtered on one document field.
func (s *MemoryDocStore) FindInGroup(ctx context.Context, leaf, prefix, field, value string) ([]Document, error) {
	docs, err := s.Group(ctx, leaf, prefix)
	if err != nil {
		return nil, err
	}

	matched := []Document{}
	for _, doc := range docs {
		var fields map[string]interface{}
		if err := json.Unmarshal(doc.Data, &fields); err != nil {
			continue
		}
		if v, ok := fields[field].(string); ok && v == value {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func (s *MemoryDocStore) scan(match func(path string) bool) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []Document{}
	for path, body := range s.docs {
		if match(path) {
			data := make([]byte, len(body))
			copy(data, body)
			docs = append(docs, Document{Path: path, Data: data})
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}
