package dao

import (
	"path/filepath"
	"testing"

	coreErrors "github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *HistoryStore {
	return NewHistoryStore(filepath.Join(t.TempDir(), "conversations_history.json"))
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store := newTestHistory(t)

	meta := &ConversationMeta{
		DateAndTime:         "2026-08-30 10:00:00",
		ConversationSummary: "什么是向量检索...",
		ConversationID:      "conv-1",
		Provider:            "ollama",
		ModelName:           "llama3",
		CollectionName:      "docs",
	}
	require.NoError(t, store.Save(meta))

	got, err := store.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, meta, got)

	exists, err := store.Exists("conv-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestHistoryStore_GetMissing(t *testing.T) {
	store := newTestHistory(t)

	_, err := store.Get("absent")
	require.Error(t, err)
	assert.Equal(t, coreErrors.ErrConversationNotFound, coreErrors.CodeOf(err))
}

func TestHistoryStore_ListEmpty(t *testing.T) {
	store := newTestHistory(t)

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryStore_Delete(t *testing.T) {
	store := newTestHistory(t)

	require.NoError(t, store.Save(&ConversationMeta{ConversationID: "a"}))
	require.NoError(t, store.Save(&ConversationMeta{ConversationID: "b"}))

	require.NoError(t, store.Delete("a"))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].ConversationID)

	err = store.Delete("a")
	require.Error(t, err)
	assert.Equal(t, coreErrors.ErrConversationNotFound, coreErrors.CodeOf(err))
}
