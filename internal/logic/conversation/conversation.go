package conversation

import (
	"context"
	"strings"
	"time"

	"github.com/VINKAS7/Rag-WebApp/core/common"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/internal/dao"
	"github.com/VINKAS7/Rag-WebApp/internal/logic/template"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
)

// 轮次响应状态
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// 单轮检索的固定参数
const (
	retrieveTopK = 5
	summaryLimit = 50
)

// Retriever 双库检索与上下文追加
type Retriever interface {
	Retrieve(ctx context.Context, collection, conversationID, query string, topK int) ([]string, error)
	AppendContext(ctx context.Context, collection, conversationID, text string) error
}

// ModelResolver 按 (provider, model) 解析聊天模型
type ModelResolver interface {
	ChatModel(ctx context.Context, provider, modelName string) (model.BaseChatModel, error)
}

// HistoryStore 会话元数据读写
type HistoryStore interface {
	Exists(conversationID string) (bool, error)
	Save(meta *dao.ConversationMeta) error
	Get(conversationID string) (*dao.ConversationMeta, error)
	List() ([]*dao.ConversationMeta, error)
	Delete(conversationID string) error
}

// TranscriptStore 会话转录读写
type TranscriptStore interface {
	AppendUser(ctx context.Context, collection, conversationID, content string) error
	AppendModel(ctx context.Context, collection, conversationID, content string) error
	Read(ctx context.Context, collection, conversationID string) ([]*dao.Turn, error)
	Delete(ctx context.Context, collection, conversationID string) error
}

// TurnRequest 一轮对话请求
type TurnRequest struct {
	Provider       string
	ModelName      string
	Prompt         string
	ConversationID string
	CollectionName string
}

// TurnResult 一轮对话结果
type TurnResult struct {
	Status        string
	ModelResponse string
}

// Orchestrator 对话编排器，驱动一轮对话的完整状态机
type Orchestrator struct {
	retriever  Retriever
	models     ModelResolver
	templates  *template.Manager
	history    HistoryStore
	transcript TranscriptStore

	// 流式转发函数，测试中可替换
	streamFn func(ctx context.Context, sr *schema.StreamReader[*schema.Message]) (string, error)
}

// NewOrchestrator 创建对话编排器
func NewOrchestrator(retriever Retriever, models ModelResolver, templates *template.Manager, history HistoryStore, transcript TranscriptStore) *Orchestrator {
	return &Orchestrator{
		retriever:  retriever,
		models:     models,
		templates:  templates,
		history:    history,
		transcript: transcript,
		streamFn:   common.StreamResponse,
	}
}

// bind 首轮写入会话元数据并返回，后续轮次沿用首轮绑定的模型与集合
func (x *Orchestrator) bind(ctx context.Context, req *TurnRequest) (*dao.ConversationMeta, error) {
	exists, err := x.history.Exists(req.ConversationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return x.history.Get(req.ConversationID)
	}

	meta := &dao.ConversationMeta{
		DateAndTime:         time.Now().Format("2006-01-02 15:04:05"),
		ConversationSummary: common.Summarize(req.Prompt, summaryLimit),
		ConversationID:      req.ConversationID,
		Provider:            req.Provider,
		ModelName:           req.ModelName,
		CollectionName:      req.CollectionName,
	}
	if err = x.history.Save(meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// prepare 执行轮次的公共前半段：元数据绑定、用户记录、检索、模板渲染
func (x *Orchestrator) prepare(ctx context.Context, req *TurnRequest) (meta *dao.ConversationMeta, rendered string, err error) {
	if req.Prompt == "" || req.ConversationID == "" {
		return nil, "", errors.New(errors.ErrInvalidParameter, "prompt and conversation_id are required")
	}

	meta, err = x.bind(ctx, req)
	if err != nil {
		return nil, "", err
	}

	// 用户记录先于检索落盘，后续步骤失败也保留提问
	if err = x.transcript.AppendUser(ctx, meta.CollectionName, meta.ConversationID, req.Prompt); err != nil {
		return nil, "", err
	}

	texts, err := x.retriever.Retrieve(ctx, meta.CollectionName, meta.ConversationID, req.Prompt, retrieveTopK)
	if err != nil {
		return meta, "", errors.Newf(errors.ErrRetrievalFailed, "retrieval failed: %v", err)
	}

	rendered = x.templates.Render(strings.Join(texts, "\n"), req.Prompt)
	return meta, rendered, nil
}

// persist 成功产出回答后的持久化：模型记录 + 上下文条目
// 上下文条目为原始提问与回答的拼接，不含模板渲染后的提示词
func (x *Orchestrator) persist(ctx context.Context, meta *dao.ConversationMeta, prompt, answer string) error {
	if err := x.transcript.AppendModel(ctx, meta.CollectionName, meta.ConversationID, answer); err != nil {
		return err
	}
	return x.retriever.AppendContext(ctx, meta.CollectionName, meta.ConversationID, prompt+"\n"+answer)
}

// HandleTurn 执行一轮非流式对话
// 检索、生成、持久化任何一步失败都返回统一失败状态而不是错误
func (x *Orchestrator) HandleTurn(ctx context.Context, req *TurnRequest) (*TurnResult, error) {
	meta, rendered, err := x.prepare(ctx, req)
	if err != nil {
		if meta == nil {
			return nil, err
		}
		g.Log().Errorf(ctx, "turn preparation failed for %s: %v", req.ConversationID, err)
		return &TurnResult{Status: StatusError}, nil
	}

	cm, err := x.models.ChatModel(ctx, meta.Provider, meta.ModelName)
	if err != nil {
		g.Log().Errorf(ctx, "model resolution failed: %v", err)
		return &TurnResult{Status: StatusError}, nil
	}

	// 单次调用，不做重试
	message, err := cm.Generate(ctx, []*schema.Message{schema.UserMessage(rendered)})
	if err != nil {
		g.Log().Errorf(ctx, "generation failed for %s: %v", req.ConversationID, err)
		return &TurnResult{Status: StatusError}, nil
	}

	if err = x.persist(ctx, meta, req.Prompt, message.Content); err != nil {
		g.Log().Errorf(ctx, "persistence failed for %s: %v", req.ConversationID, err)
		return &TurnResult{Status: StatusError}, nil
	}

	return &TurnResult{Status: StatusSuccess, ModelResponse: message.Content}, nil
}

// HandleTurnStream 执行一轮流式对话，回答经SSE转发
// 持久化只在流正常结束后进行；流中途出错时跳过持久化
func (x *Orchestrator) HandleTurnStream(ctx context.Context, req *TurnRequest) error {
	meta, rendered, err := x.prepare(ctx, req)
	if err != nil {
		return err
	}

	cm, err := x.models.ChatModel(ctx, meta.Provider, meta.ModelName)
	if err != nil {
		return err
	}

	streamReader, err := cm.Stream(ctx, []*schema.Message{schema.UserMessage(rendered)})
	if err != nil {
		return errors.Newf(errors.ErrStreamingFailed, "failed to start stream: %v", err)
	}
	defer streamReader.Close()

	answer, err := x.streamFn(ctx, streamReader)
	if err != nil {
		// 错误已作为SSE事件发给客户端，不再写入任何记录
		g.Log().Errorf(ctx, "stream aborted for %s: %v", req.ConversationID, err)
		return nil
	}

	if err = x.persist(ctx, meta, req.Prompt, answer); err != nil {
		g.Log().Errorf(ctx, "persistence after stream failed for %s: %v", req.ConversationID, err)
	}
	return nil
}

// GetTranscript 按顺序返回会话的全部轮次记录
func (x *Orchestrator) GetTranscript(ctx context.Context, conversationID string) ([]*dao.Turn, error) {
	meta, err := x.history.Get(conversationID)
	if err != nil {
		return nil, err
	}
	// 元数据存在但转录文件缺失时返回空转录
	return x.transcript.Read(ctx, meta.CollectionName, conversationID)
}

// ListHistory 返回全部会话元数据
func (x *Orchestrator) ListHistory(ctx context.Context) ([]*dao.ConversationMeta, error) {
	return x.history.List()
}

// Delete 删除会话的元数据与转录
func (x *Orchestrator) Delete(ctx context.Context, conversationID string) error {
	meta, err := x.history.Get(conversationID)
	if err != nil {
		return err
	}
	if err = x.transcript.Delete(ctx, meta.CollectionName, conversationID); err != nil {
		return err
	}
	return x.history.Delete(conversationID)
}
