package v1

import (
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
)

// CollectionCreateReq 创建集合请求，文件与URL至少提供一个
type CollectionCreateReq struct {
	g.Meta         `path:"/collections/:collection_name" method:"post" tags:"collection" mime:"multipart/form-data"`
	CollectionName string              `json:"collection_name" v:"required"`
	Files          []*ghttp.UploadFile `json:"files" type:"file"`
	URLs           []string            `json:"urls"`
}

// CollectionCreateRes 创建集合响应
type CollectionCreateRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}

// CollectionListReq 集合列表请求
type CollectionListReq struct {
	g.Meta `path:"/collections" method:"get" tags:"collection"`
}

// CollectionListRes 集合列表响应
type CollectionListRes struct {
	g.Meta      `mime:"application/json"`
	Collections []string `json:"collections"`
}

// CollectionDeleteReq 删除集合请求
type CollectionDeleteReq struct {
	g.Meta         `path:"/collections/:collection_name" method:"delete" tags:"collection"`
	CollectionName string `json:"collection_name" v:"required"`
}

// CollectionDeleteRes 删除集合响应
type CollectionDeleteRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}
