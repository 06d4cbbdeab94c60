package vector_store

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// EmbedFunc 文本向量化函数，由 embedding 层注入，避免循环依赖
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// VectorStore 向量库接口，一个实例对应磁盘上一个持久化集合
type VectorStore interface {
	// AddDocuments 写入文档，向量由内部 embedding 函数计算
	AddDocuments(ctx context.Context, docs []*schema.Document) error

	// AddDocumentsWithVectors 写入带预计算向量的文档，摄取管线批量嵌入后使用
	AddDocumentsWithVectors(ctx context.Context, docs []*schema.Document, vectors [][]float64) error

	// Query 相似度检索，返回按相似度降序的文档，Score 为相似度
	Query(ctx context.Context, query string, topK int) ([]*schema.Document, error)

	// Count 当前集合中的文档数量
	Count() int
}
