package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

// GetResponseReq 一轮对话请求
type GetResponseReq struct {
	g.Meta         `path:"/conversation/get_response" method:"post" tags:"conversation"`
	Provider       string `json:"provider" v:"required"`
	ModelName      string `json:"modelName" v:"required"`
	Prompt         string `json:"prompt" v:"required"`
	ConversationID string `json:"conversation_id" v:"required"`
	CollectionName string `json:"collection_name" v:"required"`
	Stream         bool   `json:"stream"` // 是否流式返回
}

// GetResponseRes 一轮对话响应
type GetResponseRes struct {
	g.Meta        `mime:"application/json"`
	Status        string `json:"status"`
	ModelResponse string `json:"model_response,omitempty"`
}

// ConversationGetReq 会话转录请求
type ConversationGetReq struct {
	g.Meta         `path:"/conversation/:conversation_id" method:"get" tags:"conversation"`
	ConversationID string `json:"conversation_id" v:"required"`
}

// ConversationGetRes 会话转录响应，按轮次顺序排列
type ConversationGetRes struct {
	g.Meta `mime:"application/json"`
	Turns  []*TurnItem `json:"turns"`
}

// TurnItem 转录中的一条记录
type TurnItem struct {
	Role    string `json:"role"` // user / model
	Content string `json:"content"`
}

// HistoryListReq 会话列表请求
type HistoryListReq struct {
	g.Meta `path:"/conversation/history" method:"get" tags:"conversation"`
}

// HistoryListRes 会话列表响应
type HistoryListRes struct {
	g.Meta        `mime:"application/json"`
	Conversations []*HistoryItem `json:"conversations"`
}

// HistoryItem 会话元数据项
type HistoryItem struct {
	DateAndTime         string `json:"DateAndTime"`
	ConversationSummary string `json:"conversation_summary"`
	ConversationID      string `json:"conversation_id"`
	Provider            string `json:"provider"`
	ModelName           string `json:"modelName"`
	CollectionName      string `json:"collectionName"`
}

// ConversationDeleteReq 删除会话请求
type ConversationDeleteReq struct {
	g.Meta         `path:"/conversation/:conversation_id" method:"delete" tags:"conversation"`
	ConversationID string `json:"conversation_id" v:"required"`
}

// ConversationDeleteRes 删除会话响应
type ConversationDeleteRes struct {
	g.Meta  `mime:"application/json"`
	Message string `json:"message"`
}
