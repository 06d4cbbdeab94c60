package indexer

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/VINKAS7/Rag-WebApp/core/embedding"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
)

// batchInfo 批次信息
type batchInfo struct {
	Index  int
	Chunks []*schema.Document
	Texts  []string
}

// batchResult 批次结果
type batchResult struct {
	BatchIndex int
	Error      error
}

// embedAndStore 分批向量化并写入向量库，支持重试和并发
func embedAndStore(ctx context.Context, store vector_store.VectorStore, chunks []*schema.Document) error {
	if len(chunks) == 0 {
		return nil
	}

	const (
		batchSize    = 30               // 每批30个文本（避免API限制）
		concurrency  = 3                // 3个并发（避免API限流）
		maxRetries   = 5                // 最大重试次数
		initialDelay = 1 * time.Second  // 初始延迟
		maxDelay     = 30 * time.Second // 最大延迟
		multiplier   = 2.0              // 指数退避倍数
	)

	g.Log().Infof(ctx, "Starting vectorization of %d chunks (BatchSize: %d, Concurrency: %d)",
		len(chunks), batchSize, concurrency)

	// 1. 分批处理
	batches := createBatches(chunks, batchSize)

	// 2. 并发处理批次
	resultChan := make(chan batchResult, len(batches))
	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, batch := range batches {
		wg.Add(1)
		go func(b batchInfo) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			vectors, err := embedTextsWithRetry(ctx, b.Texts, maxRetries, initialDelay, maxDelay, multiplier)
			if err != nil {
				resultChan <- batchResult{
					BatchIndex: b.Index,
					Error:      errors.Newf(errors.ErrEmbeddingFailed, "batch %d failed: %v", b.Index, err),
				}
				return
			}

			if err = store.AddDocumentsWithVectors(ctx, b.Chunks, vectors); err != nil {
				resultChan <- batchResult{
					BatchIndex: b.Index,
					Error:      errors.Newf(errors.ErrVectorInsert, "batch %d storage failed: %v", b.Index, err),
				}
				return
			}

			resultChan <- batchResult{BatchIndex: b.Index}
			g.Log().Infof(ctx, "Batch %d completed successfully, chunks: %d", b.Index, len(b.Chunks))
		}(batch)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// 3. 收集结果，任一批次失败即整体失败
	for result := range resultChan {
		if result.Error != nil {
			return result.Error
		}
	}

	g.Log().Infof(ctx, "Vectorization completed, total chunks: %d", len(chunks))
	return nil
}

// createBatches 创建批次
func createBatches(chunks []*schema.Document, batchSize int) []batchInfo {
	var batches []batchInfo
	batchCount := int(math.Ceil(float64(len(chunks)) / float64(batchSize)))

	for i := 0; i < batchCount; i++ {
		start := i * batchSize
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		batchChunks := chunks[start:end]
		texts := make([]string, len(batchChunks))
		for j, chunk := range batchChunks {
			texts[j] = chunk.Content
		}

		batches = append(batches, batchInfo{
			Index:  i,
			Chunks: batchChunks,
			Texts:  texts,
		})
	}

	return batches
}

// embedTextsWithRetry 带重试的文本向量化
func embedTextsWithRetry(ctx context.Context, texts []string, maxRetries int, initialDelay, maxDelay time.Duration, multiplier float64) ([][]float64, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			g.Log().Infof(ctx, "Retrying embedding attempt %d/%d after %v delay", attempt, maxRetries, delay)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
				// 指数退避
				delay = time.Duration(float64(delay) * multiplier)
				if delay > maxDelay {
					delay = maxDelay
				}
			}
		}

		vectors, err := embedding.EmbedStrings(ctx, texts)
		if err != nil {
			lastErr = err
			g.Log().Warningf(ctx, "Embedding attempt %d failed: %v", attempt+1, err)
			continue
		}
		return vectors, nil
	}

	return nil, lastErr
}
