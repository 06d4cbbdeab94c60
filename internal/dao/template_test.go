package dao

import (
	"path/filepath"
	"testing"

	coreErrors "github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTemplates(t *testing.T) *TemplateStore {
	return NewTemplateStore(filepath.Join(t.TempDir(), "prompt_templates.json"))
}

func TestTemplateStore_UpsertReplacesByName(t *testing.T) {
	store := newTestTemplates(t)

	require.NoError(t, store.Upsert(&PromptTemplate{Name: "qa", PromptTemplate: "v1 {context} {question}"}))
	require.NoError(t, store.Upsert(&PromptTemplate{Name: "qa", PromptTemplate: "v2 {context} {question}"}))

	got, err := store.Get("qa")
	require.NoError(t, err)
	assert.Equal(t, "v2 {context} {question}", got.PromptTemplate)

	records, err := store.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTemplateStore_GetMissing(t *testing.T) {
	store := newTestTemplates(t)

	_, err := store.Get("absent")
	require.Error(t, err)
	assert.Equal(t, coreErrors.ErrTemplateNotFound, coreErrors.CodeOf(err))
}

func TestTemplateStore_Delete(t *testing.T) {
	store := newTestTemplates(t)

	require.NoError(t, store.Upsert(&PromptTemplate{Name: "keep"}))
	require.NoError(t, store.Upsert(&PromptTemplate{Name: "drop"}))

	require.NoError(t, store.Delete("drop"))
	_, err := store.Get("drop")
	assert.Error(t, err)

	err = store.Delete("drop")
	require.Error(t, err)
	assert.Equal(t, coreErrors.ErrTemplateNotFound, coreErrors.CodeOf(err))
}
