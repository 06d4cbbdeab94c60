package embedding

import (
	"context"
	"sync"
	"time"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	openaiembed "github.com/cloudwego/eino-ext/components/embedding/openai"
	"github.com/gogf/gf/v2/frame/g"
)

var (
	embedderOnce sync.Once
	embedderIns  *openaiembed.Embedder
	embedderErr  error
)

// GetEmbedder 返回全局 embedding 实例，首次调用时按配置构造
func GetEmbedder(ctx context.Context) (*openaiembed.Embedder, error) {
	embedderOnce.Do(func() {
		conf := config.LoadEmbeddingConfig(ctx)
		timeout := 60 * time.Second
		embedderIns, embedderErr = openaiembed.NewEmbedder(ctx, &openaiembed.EmbeddingConfig{
			APIKey:  conf.APIKey,
			BaseURL: conf.BaseURL,
			Model:   conf.Model,
			Timeout: timeout,
		})
		if embedderErr != nil {
			g.Log().Errorf(ctx, "failed to create embedder: %v", embedderErr)
		}
	})
	if embedderErr != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "embedder init failed: %v", embedderErr)
	}
	return embedderIns, nil
}

// EmbedStrings 批量向量化文本
func EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	embedder, err := GetEmbedder(ctx)
	if err != nil {
		return nil, err
	}
	vectors, err := embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "embedding request failed: %v", err)
	}
	return vectors, nil
}

// ChromemFunc 返回向量库使用的单文本向量化函数
func ChromemFunc() vector_store.EmbedFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		vectors, err := EmbedStrings(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(vectors) == 0 {
			return nil, errors.New(errors.ErrEmbeddingFailed, "empty embedding response")
		}
		result := make([]float32, len(vectors[0]))
		for i, v := range vectors[0] {
			result[i] = float32(v)
		}
		return result, nil
	}
}
