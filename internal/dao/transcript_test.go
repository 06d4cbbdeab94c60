package dao

import (
	"os"
	"testing"

	"github.com/gogf/gf/v2/os/gctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp 等价于 Go 1.24 的 t.Chdir(t.TempDir())，当前工具链为 1.21
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestTranscriptStore_AppendAndRead(t *testing.T) {
	chdirTemp(t)
	ctx := gctx.New()
	store := NewTranscriptStore()

	require.NoError(t, store.AppendUser(ctx, "docs", "conv-1", "第一个问题"))
	require.NoError(t, store.AppendModel(ctx, "docs", "conv-1", "第一个回答"))
	require.NoError(t, store.AppendUser(ctx, "docs", "conv-1", "第二个问题"))

	turns, err := store.Read(ctx, "docs", "conv-1")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, &Turn{Role: RoleUser, Content: "第一个问题"}, turns[0])
	assert.Equal(t, &Turn{Role: RoleModel, Content: "第一个回答"}, turns[1])
	assert.Equal(t, &Turn{Role: RoleUser, Content: "第二个问题"}, turns[2])
}

func TestTranscriptStore_ReadMissingFile(t *testing.T) {
	chdirTemp(t)
	ctx := gctx.New()
	store := NewTranscriptStore()

	// 转录文件缺失时返回空转录而不是错误
	turns, err := store.Read(ctx, "docs", "never-written")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestTranscriptStore_Delete(t *testing.T) {
	chdirTemp(t)
	ctx := gctx.New()
	store := NewTranscriptStore()

	require.NoError(t, store.AppendUser(ctx, "docs", "conv-2", "hello"))
	require.NoError(t, store.Delete(ctx, "docs", "conv-2"))

	turns, err := store.Read(ctx, "docs", "conv-2")
	require.NoError(t, err)
	assert.Empty(t, turns)

	// 重复删除视为成功
	assert.NoError(t, store.Delete(ctx, "docs", "conv-2"))
}

func TestTranscriptStore_RejectsUnsafeCollection(t *testing.T) {
	chdirTemp(t)
	ctx := gctx.New()
	store := NewTranscriptStore()

	err := store.AppendUser(ctx, "../escape", "conv-3", "hello")
	assert.Error(t, err)
}
