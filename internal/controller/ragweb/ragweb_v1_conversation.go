package ragweb

import (
	"context"

	v1 "github.com/VINKAS7/Rag-WebApp/api/ragweb/v1"
	"github.com/VINKAS7/Rag-WebApp/internal/logic/conversation"
	"github.com/VINKAS7/Rag-WebApp/internal/service"
)

func (c *ControllerV1) GetResponse(ctx context.Context, req *v1.GetResponseReq) (res *v1.GetResponseRes, err error) {
	turnReq := &conversation.TurnRequest{
		Provider:       req.Provider,
		ModelName:      req.ModelName,
		Prompt:         req.Prompt,
		ConversationID: req.ConversationID,
		CollectionName: req.CollectionName,
	}

	// 流式返回直接写SSE，不经过统一响应包装
	if req.Stream {
		return nil, service.Orchestrator().HandleTurnStream(ctx, turnReq)
	}

	result, err := service.Orchestrator().HandleTurn(ctx, turnReq)
	if err != nil {
		return nil, err
	}
	return &v1.GetResponseRes{
		Status:        result.Status,
		ModelResponse: result.ModelResponse,
	}, nil
}

func (c *ControllerV1) ConversationGet(ctx context.Context, req *v1.ConversationGetReq) (res *v1.ConversationGetRes, err error) {
	turns, err := service.Orchestrator().GetTranscript(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	items := make([]*v1.TurnItem, 0, len(turns))
	for _, turn := range turns {
		items = append(items, &v1.TurnItem{Role: turn.Role, Content: turn.Content})
	}
	return &v1.ConversationGetRes{Turns: items}, nil
}

func (c *ControllerV1) HistoryList(ctx context.Context, req *v1.HistoryListReq) (res *v1.HistoryListRes, err error) {
	metas, err := service.Orchestrator().ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*v1.HistoryItem, 0, len(metas))
	for _, meta := range metas {
		items = append(items, &v1.HistoryItem{
			DateAndTime:         meta.DateAndTime,
			ConversationSummary: meta.ConversationSummary,
			ConversationID:      meta.ConversationID,
			Provider:            meta.Provider,
			ModelName:           meta.ModelName,
			CollectionName:      meta.CollectionName,
		})
	}
	return &v1.HistoryListRes{Conversations: items}, nil
}

func (c *ControllerV1) ConversationDelete(ctx context.Context, req *v1.ConversationDeleteReq) (res *v1.ConversationDeleteRes, err error) {
	if err = service.Orchestrator().Delete(ctx, req.ConversationID); err != nil {
		return nil, err
	}
	return &v1.ConversationDeleteRes{Message: "conversation deleted"}, nil
}
