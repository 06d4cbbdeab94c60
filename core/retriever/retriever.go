package retriever

import (
	"context"
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/core/fusion"
	"github.com/VINKAS7/Rag-WebApp/core/layout"
	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gfile"
	"github.com/google/uuid"
)

// Retriever 双库检索器：集合级文档库 + 会话级上下文库
type Retriever struct {
	stores *vector_store.Registry
}

// New 创建检索器
func New(stores *vector_store.Registry) *Retriever {
	return &Retriever{stores: stores}
}

// QueryDocuments 检索集合文档库
// 库不存在或查询失败时返回空结果：检索降级优于整轮失败
func (x *Retriever) QueryDocuments(ctx context.Context, collection, query string, topK int) []*schema.Document {
	dir, err := layout.DocumentStoreDir(ctx, collection)
	if err != nil {
		g.Log().Warningf(ctx, "invalid collection %s: %v", collection, err)
		return nil
	}
	if !gfile.Exists(dir) {
		g.Log().Infof(ctx, "document store missing for collection %s, returning empty", collection)
		return nil
	}

	store, err := x.stores.Get(dir, collection)
	if err != nil {
		g.Log().Errorf(ctx, "failed to open document store for %s: %v", collection, err)
		return nil
	}
	results, err := store.Query(ctx, query, topK)
	if err != nil {
		g.Log().Errorf(ctx, "document query failed for %s: %v", collection, err)
		return nil
	}
	return results
}

// QueryContext 检索会话上下文库
// 首轮会话没有上下文库，返回空结果；查询失败同样降级为空
func (x *Retriever) QueryContext(ctx context.Context, collection, conversationID, query string, topK int) []*schema.Document {
	dir, err := layout.ContextStoreDir(ctx, collection, conversationID)
	if err != nil {
		g.Log().Warningf(ctx, "invalid context store path for %s/%s: %v", collection, conversationID, err)
		return nil
	}
	if !gfile.Exists(dir) {
		return nil
	}

	store, err := x.stores.Get(dir, conversationID)
	if err != nil {
		g.Log().Errorf(ctx, "failed to open context store for %s: %v", conversationID, err)
		return nil
	}
	results, err := store.Query(ctx, query, topK)
	if err != nil {
		g.Log().Errorf(ctx, "context query failed for %s: %v", conversationID, err)
		return nil
	}
	return results
}

// AppendContext 向会话上下文库追加一条记录，库不存在时惰性创建
// 只追加，从不更新或删除既有条目
func (x *Retriever) AppendContext(ctx context.Context, collection, conversationID, text string) error {
	dir, err := layout.ContextStoreDir(ctx, collection, conversationID)
	if err != nil {
		return err
	}

	store, err := x.stores.Get(dir, conversationID)
	if err != nil {
		return errors.Newf(errors.ErrContextStoreWrite, "failed to open context store: %v", err)
	}

	doc := &schema.Document{
		ID:      uuid.NewString(),
		Content: text,
		MetaData: map[string]any{
			"conversation_id": conversationID,
			"collection":      collection,
		},
	}
	if err = store.AddDocuments(ctx, []*schema.Document{doc}); err != nil {
		return errors.Newf(errors.ErrContextStoreWrite, "failed to append context entry: %v", err)
	}
	return nil
}

// Retrieve 并行查询两个库后做RRF融合，返回去重的文档内容
// 检索故障在适配器内部降级为空列表，本方法不会因后端故障失败
func (x *Retriever) Retrieve(ctx context.Context, collection, conversationID, query string, topK int) ([]string, error) {
	var (
		wg         sync.WaitGroup
		docResults []*schema.Document
		ctxResults []*schema.Document
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		docResults = x.QueryDocuments(ctx, collection, query, topK)
	}()
	go func() {
		defer wg.Done()
		ctxResults = x.QueryContext(ctx, collection, conversationID, query, topK)
	}()
	wg.Wait()

	texts := fusion.FuseTexts([][]*schema.Document{docResults, ctxResults}, fusion.DefaultK, topK)
	g.Log().Infof(ctx, "retrieved %d docs + %d context entries, fused to %d", len(docResults), len(ctxResults), len(texts))
	return texts, nil
}
