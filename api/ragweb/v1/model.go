package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

// ModelListReq 可用模型列表请求
type ModelListReq struct {
	g.Meta   `path:"/models" method:"get" tags:"model"`
	Provider string `json:"provider" d:"ollama"`
}

// ModelListRes 可用模型列表响应
type ModelListRes struct {
	g.Meta `mime:"application/json"`
	Models []string `json:"models"`
}
