package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/intakeform/internal/pkg/logger"
)

// ErrNotFound is returned when a document does not exist at the given path.
var ErrNotFound = errors.New("document not found")

// Document is one stored record: its full path and raw JSON body.
type Document struct {
	Path string
	Data []byte
}

// ID returns the document's key, the last path segment.
func (d Document) ID() string {
	idx := strings.LastIndexByte(d.Path, '/')
	return d.Path[idx+1:]
}

// DocStore is a path-keyed document store with collection/document
// alternation. Paths look like
// "student-information-form/form-values/fsc/Physics/submissions/12345678";
// the second-to-last segment names the leaf collection, which is what
// collection-group scans key on.
type DocStore interface {
	// Set writes the document at path. With merge, existing top-level
	// fields not present in doc are preserved; otherwise the document is
	// replaced wholesale.
	Set(ctx context.Context, path string, doc interface{}, merge bool) error
	// Get unmarshals the document at path into out, or returns ErrNotFound.
	Get(ctx context.Context, path string, out interface{}) error
	// Exists reports whether a document exists at path.
	Exists(ctx context.Context, path string) (bool, error)
	// Patch merges the given top-level fields into the document at path.
	Patch(ctx context.Context, path string, fields map[string]interface{}) error
	// Delete removes the document at path, or returns ErrNotFound.
	Delete(ctx context.Context, path string) error
	// List returns every document directly under the given collection path.
	List(ctx context.Context, parent string) ([]Document, error)
	// Group returns every document in any collection named leaf whose path
	// starts with prefix (a collection-group scan).
	Group(ctx context.Context, leaf, prefix string) ([]Document, error)
	// FindInGroup narrows a Group scan to documents whose top-level field
	// equals value.
	FindInGroup(ctx context.Context, leaf, prefix, field, value string) ([]Document, error)
}

// PostgresDocStore implements DocStore over a single jsonb-backed documents
// table.
type PostgresDocStore struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresDocStore creates a new PostgresDocStore
func NewPostgresDocStore(db *pgxpool.Pool) *PostgresDocStore {
	return &PostgresDocStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// splitPath derives the parent collection path and leaf collection name from
// a full document path. A document path always has an even number of
// segments, alternating collection and document.
func splitPath(path string) (parent, leaf string, err error) {
	segments := strings.Split(path, "/")
	if len(segments) < 2 || len(segments)%2 != 0 {
		return "", "", fmt.Errorf("invalid document path %q", path)
	}
	for _, s := range segments {
		if s == "" {
			return "", "", fmt.Errorf("invalid document path %q", path)
		}
	}
	return strings.Join(segments[:len(segments)-1], "/"), segments[len(segments)-2], nil
}

// Set writes a document, replacing or merging on conflict.
func (s *PostgresDocStore) Set(ctx context.Context, path string, doc interface{}, merge bool) error {
	parent, leaf, err := splitPath(path)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", path, err)
	}

	conflict := "ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()"
	if merge {
		conflict = "ON CONFLICT (path) DO UPDATE SET doc = documents.doc || EXCLUDED.doc, updated_at = now()"
	}

	sql, args, err := s.sb.Insert("documents").
		Columns("path", "parent", "leaf", "doc").
		Values(path, parent, leaf, body).
		Suffix(conflict).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set document SQL")
		return fmt.Errorf("failed to build set document query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error writing document")
		return fmt.Errorf("error writing document: %w", err)
	}

	return nil
}

// Get reads a single document into out.
func (s *PostgresDocStore) Get(ctx context.Context, path string, out interface{}) error {
	sql, args, err := s.sb.Select("doc").
		From("documents").
		Where(squirrel.Eq{"path": path}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get document SQL")
		return fmt.Errorf("failed to build get document query: %w", err)
	}

	var body []byte
	err = s.db.QueryRow(ctx, sql, args...).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Str("path", path).Msg("Error reading document")
		return fmt.Errorf("error reading document: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", path, err)
	}
	return nil
}

// Exists probes for a document without reading its body.
func (s *PostgresDocStore) Exists(ctx context.Context, path string) (bool, error) {
	sql, args, err := s.sb.Select("1").
		From("documents").
		Where(squirrel.Eq{"path": path}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building document exists SQL")
		return false, fmt.Errorf("failed to build document existence query: %w", err)
	}

	var exists bool
	err = s.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("path", path).Msg("Error checking document existence")
		return false, fmt.Errorf("error checking document existence: %w", err)
	}

	return exists, nil
}

// Patch merges fields into an existing document.
func (s *PostgresDocStore) Patch(ctx context.Context, path string, fields map[string]interface{}) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal patch for %s: %w", path, err)
	}

	sql, args, err := s.sb.Update("documents").
		Set("doc", squirrel.Expr("doc || ?::jsonb", body)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"path": path}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building patch document SQL")
		return fmt.Errorf("failed to build patch document query: %w", err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error patching document")
		return fmt.Errorf("error patching document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a document.
func (s *PostgresDocStore) Delete(ctx context.Context, path string) error {
	sql, args, err := s.sb.Delete("documents").
		Where(squirrel.Eq{"path": path}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete document SQL")
		return fmt.Errorf("failed to build delete document query: %w", err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Error deleting document")
		return fmt.Errorf("error deleting document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns the documents of one collection.
func (s *PostgresDocStore) List(ctx context.Context, parent string) ([]Document, error) {
	sql, args, err := s.sb.Select("path", "doc").
		From("documents").
		Where(squirrel.Eq{"parent": parent}).
		OrderBy("path ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list collection SQL")
		return nil, fmt.Errorf("failed to build list collection query: %w", err)
	}

	return s.queryDocuments(ctx, sql, args)
}

// Group performs a collection-group scan.
func (s *PostgresDocStore) Group(ctx context.Context, leaf, prefix string) ([]Document, error) {
	builder := s.sb.Select("path", "doc").
		From("documents").
		Where(squirrel.Eq{"leaf": leaf})
	if prefix != "" {
		builder = builder.Where(squirrel.Like{"path": prefix + "%"})
	}

	sql, args, err := builder.OrderBy("path ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building collection group SQL")
		return nil, fmt.Errorf("failed to build collection group query: %w", err)
	}

	return s.queryDocuments(ctx, sql, args)
}

// FindInGroup performs a collection-group scan filtered on one document field.
func (s *PostgresDocStore) FindInGroup(ctx context.Context, leaf, prefix, field, value string) ([]Document, error) {
	builder := s.sb.Select("path", "doc").
		From("documents").
		Where(squirrel.Eq{"leaf": leaf}).
		Where(squirrel.Expr("doc->>? = ?", field, value))
	if prefix != "" {
		builder = builder.Where(squirrel.Like{"path": prefix + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building group field query SQL")
		return nil, fmt.Errorf("failed to build group field query: %w", err)
	}

	return s.queryDocuments(ctx, sql, args)
}

func (s *PostgresDocStore) queryDocuments(ctx context.Context, sql string, args []interface{}) ([]Document, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing document query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.Path, &doc.Data); err != nil {
			logger.Error().Err(err).Msg("Error scanning document row")
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating document rows")
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}
