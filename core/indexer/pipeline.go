package indexer

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/core/layout"
	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"
)

// 来源类型
const (
	SourceTypeFile = "file"
	SourceTypeURL  = "url"
)

// Source 待摄取的一个来源：本地文件路径或URL
type Source struct {
	URI  string
	Type string // file / url
}

// Pipeline 文档摄取管线: 加载 -> 分块 -> 向量化 -> 入库
type Pipeline struct {
	stores *vector_store.Registry
}

// NewPipeline 创建摄取管线
func NewPipeline(stores *vector_store.Registry) *Pipeline {
	return &Pipeline{stores: stores}
}

// Ingest 把全部来源摄取进集合的文档向量库
// 单个来源失败只记日志并跳过；管线级初始化失败或全部来源失败时报错
func (x *Pipeline) Ingest(ctx context.Context, collection string, sources []Source) error {
	if len(sources) == 0 {
		return nil
	}

	storeDir, err := layout.DocumentStoreDir(ctx, collection)
	if err != nil {
		return err
	}
	store, err := x.stores.Get(storeDir, collection)
	if err != nil {
		return errors.Newf(errors.ErrIndexingFailed, "failed to open document store: %v", err)
	}

	loader, err := newLoader(ctx)
	if err != nil {
		return errors.Newf(errors.ErrIndexingFailed, "failed to build loader: %v", err)
	}
	indexerConf := config.LoadIndexerConfig(ctx)
	trans, err := newTransformer(ctx, indexerConf.ChunkSize, indexerConf.OverlapSize)
	if err != nil {
		return errors.Newf(errors.ErrIndexingFailed, "failed to build transformer: %v", err)
	}

	const concurrency = 5
	semaphore := make(chan struct{}, concurrency)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)

	for _, src := range sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := x.ingestOne(ctx, store, loader, trans, collection, src); err != nil {
				g.Log().Errorf(ctx, "ingest source %s failed: %v", src.URI, err)
				return
			}
			mu.Lock()
			succeeded++
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	if succeeded == 0 {
		return errors.Newf(errors.ErrIndexingFailed, "all %d sources failed to ingest", len(sources))
	}
	g.Log().Infof(ctx, "collection %s: ingested %d/%d sources", collection, succeeded, len(sources))
	return nil
}

// ingestOne 摄取单个来源
func (x *Pipeline) ingestOne(ctx context.Context, store vector_store.VectorStore, loader document.Loader, trans document.Transformer, collection string, src Source) error {
	docs, err := loader.Load(ctx, document.Source{URI: src.URI})
	if err != nil {
		return errors.Newf(errors.ErrDocumentParseFailed, "failed to load %s: %v", src.URI, err)
	}

	chunks, err := trans.Transform(ctx, docs)
	if err != nil {
		return errors.Newf(errors.ErrDocumentParseFailed, "failed to split %s: %v", src.URI, err)
	}
	chunks = dropEmpty(chunks)

	sourceName := src.URI
	if src.Type == SourceTypeFile {
		sourceName = filepath.Base(src.URI)
	}
	for _, chunk := range chunks {
		chunk.ID = uuid.NewString()
		if chunk.MetaData == nil {
			chunk.MetaData = make(map[string]any)
		}
		chunk.MetaData["source"] = sourceName
		chunk.MetaData["source_type"] = src.Type
		chunk.MetaData["collection"] = collection
	}

	return embedAndStore(ctx, store, chunks)
}

// dropEmpty 过滤空内容分块
func dropEmpty(chunks []*schema.Document) []*schema.Document {
	kept := chunks[:0]
	for _, chunk := range chunks {
		if chunk.Content != "" {
			kept = append(kept, chunk)
		}
	}
	return kept
}
