package model

import (
	"context"
	"strings"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"
)

type modelListResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
	// ollama 原生接口返回 models 字段
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ListModels 查询提供方的可用模型列表（OpenAI 兼容 /models 接口）
func (x *Registry) ListModels(ctx context.Context, provider string) ([]string, error) {
	p, err := x.Resolve(ctx, provider)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(p.BaseURL(), "/") + "/models"
	client := g.Client()
	if key := p.APIKey(); key != "" {
		client = client.Header(map[string]string{"Authorization": "Bearer " + key})
	}

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, errors.Newf(errors.ErrModelListFailed, "failed to query %s: %v", url, err)
	}
	defer resp.Close()

	body := resp.ReadAll()
	var parsed modelListResponse
	if err = sonic.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Newf(errors.ErrModelListFailed, "failed to parse model list: %v", err)
	}

	names := make([]string, 0, len(parsed.Data)+len(parsed.Models))
	for _, m := range parsed.Data {
		names = append(names, m.ID)
	}
	for _, m := range parsed.Models {
		names = append(names, m.Name)
	}
	return names, nil
}
