package model

import (
	"context"
	"strings"
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	openaimodel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	"github.com/cloudwego/eino/components/model"
)

// Provider 聊天模型提供方策略接口
// 新的提供方只需实现本接口并在 resolve 中注册
type Provider interface {
	// ChatModel 按模型名构造聊天模型实例
	ChatModel(ctx context.Context, modelName string) (model.BaseChatModel, error)
	// BaseURL 提供方的 OpenAI 兼容接口地址
	BaseURL() string
	// APIKey 提供方的鉴权密钥
	APIKey() string
}

// Registry 按提供方名称缓存 Provider 实例
type Registry struct {
	mu        sync.Mutex
	providers map[string]Provider
}

// NewRegistry 创建提供方注册表
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Resolve 解析提供方，未配置时报错
func (x *Registry) Resolve(ctx context.Context, name string) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "provider is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if p, ok := x.providers[name]; ok {
		return p, nil
	}

	conf := config.LoadProviderConfig(ctx, name)
	if conf == nil {
		return nil, errors.Newf(errors.ErrProviderNotFound, "provider not configured: %s", name)
	}

	var p Provider
	switch conf.Type {
	case "qwen":
		p = &qwenProvider{conf: conf}
	default:
		// openai 兼容端点（含 ollama / chatgpt 等）
		p = &openaiProvider{conf: conf}
	}
	x.providers[name] = p
	return p, nil
}

// ChatModel 解析提供方并构造聊天模型，一步到位的便捷入口
func (x *Registry) ChatModel(ctx context.Context, provider, modelName string) (model.BaseChatModel, error) {
	p, err := x.Resolve(ctx, provider)
	if err != nil {
		return nil, err
	}
	return p.ChatModel(ctx, modelName)
}

type openaiProvider struct {
	conf *config.ProviderConfig
}

func (x *openaiProvider) ChatModel(ctx context.Context, modelName string) (model.BaseChatModel, error) {
	if modelName == "" {
		return nil, errors.New(errors.ErrModelNotFound, "model name is empty")
	}
	cm, err := openaimodel.NewChatModel(ctx, &openaimodel.ChatModelConfig{
		APIKey:  x.conf.APIKey,
		BaseURL: x.conf.BaseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, errors.Newf(errors.ErrModelConfigInvalid, "failed to create chat model %s: %v", modelName, err)
	}
	return cm, nil
}

func (x *openaiProvider) BaseURL() string { return x.conf.BaseURL }
func (x *openaiProvider) APIKey() string  { return x.conf.APIKey }

type qwenProvider struct {
	conf *config.ProviderConfig
}

func (x *qwenProvider) ChatModel(ctx context.Context, modelName string) (model.BaseChatModel, error) {
	if modelName == "" {
		return nil, errors.New(errors.ErrModelNotFound, "model name is empty")
	}
	cm, err := qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
		APIKey:  x.conf.APIKey,
		BaseURL: x.conf.BaseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, errors.Newf(errors.ErrModelConfigInvalid, "failed to create qwen chat model %s: %v", modelName, err)
	}
	return cm, nil
}

func (x *qwenProvider) BaseURL() string { return x.conf.BaseURL }
func (x *qwenProvider) APIKey() string  { return x.conf.APIKey }
