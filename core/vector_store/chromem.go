package vector_store

import (
	"context"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/cloudwego/eino/schema"
	"github.com/philippgille/chromem-go"
)

// chromemStore 基于 chromem-go 的嵌入式持久化向量库
// 一个实例绑定磁盘上一个目录下的一个集合
type chromemStore struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewChromemStore 打开（或创建）path 目录下名为 name 的持久化集合
func NewChromemStore(path, name string, embed EmbedFunc) (VectorStore, error) {
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, errors.Newf(errors.ErrVectorStoreInit, "failed to open vector store at %s: %v", path, err)
	}

	collection, err := db.GetOrCreateCollection(name, nil, chromem.EmbeddingFunc(embed))
	if err != nil {
		return nil, errors.Newf(errors.ErrVectorStoreInit, "failed to open collection %s: %v", name, err)
	}

	return &chromemStore{
		db:         db,
		collection: collection,
	}, nil
}

// AddDocuments 写入文档，metadata 仅保留字符串值
func (x *chromemStore) AddDocuments(ctx context.Context, docs []*schema.Document) error {
	return x.add(ctx, docs, nil)
}

// AddDocumentsWithVectors 写入带预计算向量的文档
func (x *chromemStore) AddDocumentsWithVectors(ctx context.Context, docs []*schema.Document, vectors [][]float64) error {
	if len(vectors) != len(docs) {
		return errors.Newf(errors.ErrVectorInsert, "vector count %d does not match document count %d", len(vectors), len(docs))
	}
	return x.add(ctx, docs, vectors)
}

func (x *chromemStore) add(ctx context.Context, docs []*schema.Document, vectors [][]float64) error {
	if len(docs) == 0 {
		return nil
	}

	entries := make([]chromem.Document, 0, len(docs))
	for i, doc := range docs {
		metadata := make(map[string]string, len(doc.MetaData))
		for k, v := range doc.MetaData {
			if s, ok := v.(string); ok {
				metadata[k] = s
			}
		}
		entry := chromem.Document{
			ID:       doc.ID,
			Content:  doc.Content,
			Metadata: metadata,
		}
		if vectors != nil {
			embedding := make([]float32, len(vectors[i]))
			for j, v := range vectors[i] {
				embedding[j] = float32(v)
			}
			entry.Embedding = embedding
		}
		entries = append(entries, entry)
	}

	if err := x.collection.AddDocuments(ctx, entries, 1); err != nil {
		return errors.Newf(errors.ErrVectorInsert, "failed to add documents: %v", err)
	}
	return nil
}

// Query 相似度检索，topK 超过集合大小时自动收缩
func (x *chromemStore) Query(ctx context.Context, query string, topK int) ([]*schema.Document, error) {
	count := x.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if topK > count {
		topK = count
	}
	if topK <= 0 {
		topK = 1
	}

	results, err := x.collection.Query(ctx, query, topK, nil, nil)
	if err != nil {
		return nil, errors.Newf(errors.ErrVectorSearch, "vector query failed: %v", err)
	}

	docs := make([]*schema.Document, 0, len(results))
	for _, r := range results {
		metadata := make(map[string]any, len(r.Metadata))
		for k, v := range r.Metadata {
			metadata[k] = v
		}
		doc := &schema.Document{
			ID:       r.ID,
			Content:  r.Content,
			MetaData: metadata,
		}
		doc.WithScore(float64(r.Similarity))
		docs = append(docs, doc)
	}
	return docs, nil
}

// Count 当前集合中的文档数量
func (x *chromemStore) Count() int {
	return x.collection.Count()
}
