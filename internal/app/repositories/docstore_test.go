package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	parent, leaf, err := splitPath("student-information-form/form-values/fsc/Physics/submissions/12345678")
	require.NoError(t, err)
	assert.Equal(t, "student-information-form/form-values/fsc/Physics/submissions", parent)
	assert.Equal(t, "submissions", leaf)

	parent, leaf, err = splitPath("admin-users/admin@university.edu")
	require.NoError(t, err)
	assert.Equal(t, "admin-users", parent)
	assert.Equal(t, "admin-users", leaf)

	_, _, err = splitPath("student-information-form/form-values/fsc")
	assert.Error(t, err, "odd segment counts name a collection, not a document")

	_, _, err = splitPath("a//b/c")
	assert.Error(t, err)
}

func TestDocumentID(t *testing.T) {
	doc := Document{Path: "complaints/abc-123"}
	assert.Equal(t, "abc-123", doc.ID())
}

func TestMemoryStoreMergePreservesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()

	require.NoError(t, store.Set(ctx, "complaints/c1", map[string]interface{}{
		"title":  "wifi down",
		"status": "open",
	}, false))

	require.NoError(t, store.Set(ctx, "complaints/c1", map[string]interface{}{
		"status": "resolved",
	}, true))

	var doc map[string]interface{}
	require.NoError(t, store.Get(ctx, "complaints/c1", &doc))
	assert.Equal(t, "resolved", doc["status"])
	assert.Equal(t, "wifi down", doc["title"], "merge must keep fields absent from the patch")
}

func TestMemoryStoreReplaceDropsFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()

	require.NoError(t, store.Set(ctx, "complaints/c1", map[string]interface{}{"title": "a", "status": "open"}, false))
	require.NoError(t, store.Set(ctx, "complaints/c1", map[string]interface{}{"title": "b"}, false))

	var doc map[string]interface{}
	require.NoError(t, store.Get(ctx, "complaints/c1", &doc))
	assert.Equal(t, "b", doc["title"])
	_, hasStatus := doc["status"]
	assert.False(t, hasStatus)
}

func TestMemoryStoreGroupScan(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocStore()

	require.NoError(t, store.Set(ctx, "student-information-form/form-values/fsc/Physics/submissions/1", map[string]interface{}{"studentId": "1"}, false))
	require.NoError(t, store.Set(ctx, "student-information-form/form-values/fa/English/submissions/2", map[string]interface{}{"studentId": "2"}, false))
	require.NoError(t, store.Set(ctx, "student-information-form/studentSubmissions/submissions/1", map[string]interface{}{"studentId": "1"}, false))

	docs, err := store.Group(ctx, "submissions", "student-information-form/form-values/")
	require.NoError(t, err)
	assert.Len(t, docs, 2, "index entries outside the prefix must not match")

	docs, err = store.Group(ctx, "submissions", "")
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestMemoryStorePatchMissingDocument(t *testing.T) {
	store := NewMemoryDocStore()
	err := store.Patch(context.Background(), "complaints/none", map[string]interface{}{"status": "closed"})
	assert.ErrorIs(t, err, ErrNotFound)
}
