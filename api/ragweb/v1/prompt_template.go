package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

// TemplateSetActiveReq 设置当前生效模板请求
type TemplateSetActiveReq struct {
	g.Meta         `path:"/prompt_template/active" method:"post" tags:"prompt_template"`
	PromptTemplate string `json:"prompt_template" v:"required"`
}

// TemplateSetActiveRes 设置当前生效模板响应
type TemplateSetActiveRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}

// TemplateResetActiveReq 重置为默认模板请求
type TemplateResetActiveReq struct {
	g.Meta `path:"/prompt_template/active/reset" method:"post" tags:"prompt_template"`
}

// TemplateResetActiveRes 重置为默认模板响应
type TemplateResetActiveRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}

// TemplateModeReq 查询当前模板来源请求
type TemplateModeReq struct {
	g.Meta `path:"/prompt_template/active/mode" method:"get" tags:"prompt_template"`
}

// TemplateModeRes 查询当前模板来源响应
type TemplateModeRes struct {
	g.Meta `mime:"application/json"`
	Mode   string `json:"mode"` // default / custom
}

// TemplateUpsertReq 保存命名模板请求，同名覆盖
type TemplateUpsertReq struct {
	g.Meta         `path:"/prompt_template" method:"post" tags:"prompt_template"`
	Name           string `json:"name" v:"required"`
	PromptTemplate string `json:"prompt_template" v:"required"`
}

// TemplateUpsertRes 保存命名模板响应
type TemplateUpsertRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}

// TemplateGetReq 查询命名模板请求
type TemplateGetReq struct {
	g.Meta `path:"/prompt_template/:name" method:"get" tags:"prompt_template"`
	Name   string `json:"name" v:"required"`
}

// TemplateGetRes 查询命名模板响应
type TemplateGetRes struct {
	g.Meta         `mime:"application/json"`
	Name           string `json:"name"`
	PromptTemplate string `json:"prompt_template"`
}

// TemplateListReq 模板列表请求
type TemplateListReq struct {
	g.Meta `path:"/prompt_templates" method:"get" tags:"prompt_template"`
}

// TemplateListRes 模板列表响应
type TemplateListRes struct {
	g.Meta    `mime:"application/json"`
	Templates []*TemplateItem `json:"templates"`
}

// TemplateItem 模板项
type TemplateItem struct {
	Name           string `json:"name"`
	PromptTemplate string `json:"prompt_template"`
}

// TemplateDeleteReq 删除命名模板请求
type TemplateDeleteReq struct {
	g.Meta `path:"/prompt_template/:name" method:"delete" tags:"prompt_template"`
	Name   string `json:"name" v:"required"`
}

// TemplateDeleteRes 删除命名模板响应
type TemplateDeleteRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}
