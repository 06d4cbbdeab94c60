package retriever

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	"github.com/gogf/gf/v2/os/gctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 从未被调用的向量化函数，库缺失路径不应触发任何向量化
func failingEmbed(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("embed must not be called")
}

// chdirTemp 等价于 Go 1.24 的 t.Chdir(t.TempDir())，当前工具链为 1.21
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func newTestRetriever(t *testing.T) *Retriever {
	chdirTemp(t)
	return New(vector_store.NewRegistry(failingEmbed))
}

func TestQueryDocuments_MissingStoreReturnsEmpty(t *testing.T) {
	r := newTestRetriever(t)
	ctx := gctx.New()

	docs := r.QueryDocuments(ctx, "never-ingested", "any query", 5)
	assert.Empty(t, docs)
}

func TestQueryContext_MissingStoreReturnsEmpty(t *testing.T) {
	r := newTestRetriever(t)
	ctx := gctx.New()

	docs := r.QueryContext(ctx, "never-ingested", "conv-1", "any query", 5)
	assert.Empty(t, docs)
}

func TestRetrieve_MissingStoresReturnEmpty(t *testing.T) {
	r := newTestRetriever(t)
	ctx := gctx.New()

	// 两个库都不存在时检索降级为空结果，不报错
	texts, err := r.Retrieve(ctx, "never-ingested", "conv-1", "any query", 5)
	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestQueryDocuments_UnsafeCollectionReturnsEmpty(t *testing.T) {
	r := newTestRetriever(t)
	ctx := gctx.New()

	docs := r.QueryDocuments(ctx, "../outside", "any query", 5)
	assert.Empty(t, docs)
}
