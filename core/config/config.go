package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
)

const (
	// DefaultStorageRoot 集合数据的默认根目录
	DefaultStorageRoot = "collections"
	// DefaultRecordDir 全局记录文件目录
	DefaultRecordDir = "db"
)

// ValidateConfiguration validates all required configuration items
func ValidateConfiguration(ctx context.Context) error {
	var missingConfigs []string
	var warnings []string

	// 验证 Embedding 配置
	embeddingAPIKey := g.Cfg().MustGet(ctx, "embedding.apiKey", "").String()
	embeddingBaseURL := g.Cfg().MustGet(ctx, "embedding.baseURL", "").String()
	embeddingModel := g.Cfg().MustGet(ctx, "embedding.model", "").String()

	if embeddingAPIKey == "" {
		missingConfigs = append(missingConfigs, "embedding.apiKey")
	}
	if embeddingBaseURL == "" {
		missingConfigs = append(missingConfigs, "embedding.baseURL")
	}
	if embeddingModel == "" {
		missingConfigs = append(missingConfigs, "embedding.model")
	}

	// 验证 Chat Provider 配置
	providers := g.Cfg().MustGet(ctx, "chat.providers").Map()
	if len(providers) == 0 {
		missingConfigs = append(missingConfigs, "chat.providers")
	}
	for name := range providers {
		baseURL := g.Cfg().MustGet(ctx, fmt.Sprintf("chat.providers.%s.baseURL", name), "").String()
		if baseURL == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("chat.providers.%s.baseURL", name))
		}
		apiKey := g.Cfg().MustGet(ctx, fmt.Sprintf("chat.providers.%s.apiKey", name), "").String()
		if apiKey == "" {
			warnings = append(warnings, fmt.Sprintf("chat.providers.%s.apiKey is not set", name))
		}
	}

	// 存储配置均有默认值，缺失只做提示
	if g.Cfg().MustGet(ctx, "storage.root", "").String() == "" {
		warnings = append(warnings, "storage.root is not set, using default: "+DefaultStorageRoot)
	}

	// 输出警告信息
	if len(warnings) > 0 {
		g.Log().Warningf(ctx, "Configuration warnings:\n- %s", strings.Join(warnings, "\n- "))
	}

	// 检查是否有缺失的必需配置
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration items:\n- %s\n\nPlease check your config.yaml file and ensure all required settings are properly configured", strings.Join(missingConfigs, "\n- "))
	}

	g.Log().Info(ctx, "✓ All required configuration items are present")

	return nil
}

// StorageRoot 返回集合数据根目录
func StorageRoot(ctx context.Context) string {
	return g.Cfg().MustGet(ctx, "storage.root", DefaultStorageRoot).String()
}

// RecordDir 返回全局记录文件目录（对话索引、提示词模板）
func RecordDir(ctx context.Context) string {
	return g.Cfg().MustGet(ctx, "storage.recordDir", DefaultRecordDir).String()
}

// EmbeddingConfig embedding 服务配置
type EmbeddingConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LoadEmbeddingConfig 从配置文件读取 embedding 配置
func LoadEmbeddingConfig(ctx context.Context) *EmbeddingConfig {
	return &EmbeddingConfig{
		APIKey:  g.Cfg().MustGet(ctx, "embedding.apiKey", "").String(),
		BaseURL: g.Cfg().MustGet(ctx, "embedding.baseURL", "").String(),
		Model:   g.Cfg().MustGet(ctx, "embedding.model", "").String(),
	}
}

// ProviderConfig 单个聊天模型提供方配置
type ProviderConfig struct {
	Type    string // openai / qwen
	APIKey  string
	BaseURL string
}

// LoadProviderConfig 读取指定提供方配置，未配置时返回 nil
func LoadProviderConfig(ctx context.Context, provider string) *ProviderConfig {
	prefix := fmt.Sprintf("chat.providers.%s.", provider)
	baseURL := g.Cfg().MustGet(ctx, prefix+"baseURL", "").String()
	if baseURL == "" {
		return nil
	}
	return &ProviderConfig{
		Type:    g.Cfg().MustGet(ctx, prefix+"type", "openai").String(),
		APIKey:  g.Cfg().MustGet(ctx, prefix+"apiKey", "").String(),
		BaseURL: baseURL,
	}
}

// IndexerConfig 摄取管线配置
type IndexerConfig struct {
	ChunkSize   int
	OverlapSize int
}

// LoadIndexerConfig 读取摄取管线配置
func LoadIndexerConfig(ctx context.Context) *IndexerConfig {
	return &IndexerConfig{
		ChunkSize:   g.Cfg().MustGet(ctx, "indexer.chunkSize", 1000).Int(),
		OverlapSize: g.Cfg().MustGet(ctx, "indexer.overlapSize", 200).Int(),
	}
}
