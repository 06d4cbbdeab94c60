package conversation

import (
	"context"
	"fmt"
	"io"
	"testing"

	coreErrors "github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/internal/dao"
	"github.com/VINKAS7/Rag-WebApp/internal/logic/template"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opLog 记录各依赖被调用的顺序
type opLog struct {
	ops []string
}

func (x *opLog) add(op string) { x.ops = append(x.ops, op) }

type fakeRetriever struct {
	log       *opLog
	texts     []string
	err       error
	appendErr error
	appended  []string
}

func (x *fakeRetriever) Retrieve(ctx context.Context, collection, conversationID, query string, topK int) ([]string, error) {
	x.log.add("retrieve")
	return x.texts, x.err
}

func (x *fakeRetriever) AppendContext(ctx context.Context, collection, conversationID, text string) error {
	x.log.add("appendContext")
	x.appended = append(x.appended, text)
	return x.appendErr
}

type fakeChatModel struct {
	log        *opLog
	response   string
	err        error
	chunks     []string
	chunkErr   error
	lastPrompt string
}

func (x *fakeChatModel) Generate(ctx context.Context, msgs []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	x.log.add("generate")
	if len(msgs) > 0 {
		x.lastPrompt = msgs[len(msgs)-1].Content
	}
	if x.err != nil {
		return nil, x.err
	}
	return schema.AssistantMessage(x.response, nil), nil
}

func (x *fakeChatModel) Stream(ctx context.Context, msgs []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	x.log.add("stream")
	sr, sw := schema.Pipe[*schema.Message](len(x.chunks) + 1)
	go func() {
		defer sw.Close()
		for _, chunk := range x.chunks {
			sw.Send(schema.AssistantMessage(chunk, nil), nil)
		}
		if x.chunkErr != nil {
			sw.Send(nil, x.chunkErr)
		}
	}()
	return sr, nil
}

type fakeResolver struct {
	cm  *fakeChatModel
	err error
}

func (x *fakeResolver) ChatModel(ctx context.Context, provider, modelName string) (model.BaseChatModel, error) {
	if x.err != nil {
		return nil, x.err
	}
	return x.cm, nil
}

type fakeHistory struct {
	log   *opLog
	metas map[string]*dao.ConversationMeta
}

func newFakeHistory(log *opLog) *fakeHistory {
	return &fakeHistory{log: log, metas: make(map[string]*dao.ConversationMeta)}
}

func (x *fakeHistory) Exists(id string) (bool, error) {
	_, ok := x.metas[id]
	return ok, nil
}

func (x *fakeHistory) Save(meta *dao.ConversationMeta) error {
	x.log.add("saveMeta")
	x.metas[meta.ConversationID] = meta
	return nil
}

func (x *fakeHistory) Get(id string) (*dao.ConversationMeta, error) {
	meta, ok := x.metas[id]
	if !ok {
		return nil, coreErrors.Newf(coreErrors.ErrConversationNotFound, "conversation not found: %s", id)
	}
	return meta, nil
}

func (x *fakeHistory) List() ([]*dao.ConversationMeta, error) {
	var result []*dao.ConversationMeta
	for _, meta := range x.metas {
		result = append(result, meta)
	}
	return result, nil
}

func (x *fakeHistory) Delete(id string) error {
	delete(x.metas, id)
	return nil
}

type fakeTranscript struct {
	log   *opLog
	turns map[string][]*dao.Turn
}

func newFakeTranscript(log *opLog) *fakeTranscript {
	return &fakeTranscript{log: log, turns: make(map[string][]*dao.Turn)}
}

func (x *fakeTranscript) AppendUser(ctx context.Context, collection, id, content string) error {
	x.log.add("appendUser")
	x.turns[id] = append(x.turns[id], &dao.Turn{Role: dao.RoleUser, Content: content})
	return nil
}

func (x *fakeTranscript) AppendModel(ctx context.Context, collection, id, content string) error {
	x.log.add("appendModel")
	x.turns[id] = append(x.turns[id], &dao.Turn{Role: dao.RoleModel, Content: content})
	return nil
}

func (x *fakeTranscript) Read(ctx context.Context, collection, id string) ([]*dao.Turn, error) {
	return x.turns[id], nil
}

func (x *fakeTranscript) Delete(ctx context.Context, collection, id string) error {
	delete(x.turns, id)
	return nil
}

type fixture struct {
	orch       *Orchestrator
	log        *opLog
	retriever  *fakeRetriever
	resolver   *fakeResolver
	history    *fakeHistory
	transcript *fakeTranscript
}

func newFixture() *fixture {
	log := &opLog{}
	retriever := &fakeRetriever{log: log, texts: []string{"doc one", "doc two"}}
	resolver := &fakeResolver{cm: &fakeChatModel{log: log, response: "the answer"}}
	history := newFakeHistory(log)
	transcript := newFakeTranscript(log)
	orch := NewOrchestrator(retriever, resolver, template.NewManager(), history, transcript)
	return &fixture{orch: orch, log: log, retriever: retriever, resolver: resolver, history: history, transcript: transcript}
}

func turnReq(conv string) *TurnRequest {
	return &TurnRequest{
		Provider:       "ollama",
		ModelName:      "llama3",
		Prompt:         "what is rrf?",
		ConversationID: conv,
		CollectionName: "docs",
	}
}

func TestHandleTurn_FirstTurnBindsMetadata(t *testing.T) {
	f := newFixture()

	result, err := f.orch.HandleTurn(context.Background(), turnReq("conv-1"))
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "the answer", result.ModelResponse)

	meta, err := f.history.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, "ollama", meta.Provider)
	assert.Equal(t, "llama3", meta.ModelName)
	assert.Equal(t, "docs", meta.CollectionName)
	assert.Equal(t, "what is rrf?", meta.ConversationSummary)

	// 用户记录必须先于检索落盘
	assert.Equal(t, []string{"saveMeta", "appendUser", "retrieve", "generate", "appendModel", "appendContext"}, f.log.ops)
}

func TestHandleTurn_LaterTurnsUseBoundModel(t *testing.T) {
	f := newFixture()

	_, err := f.orch.HandleTurn(context.Background(), turnReq("conv-1"))
	require.NoError(t, err)

	// 第二轮带不同的模型与集合，仍沿用首轮绑定
	second := turnReq("conv-1")
	second.ModelName = "other-model"
	second.CollectionName = "other-collection"
	_, err = f.orch.HandleTurn(context.Background(), second)
	require.NoError(t, err)

	meta, err := f.history.Get("conv-1")
	require.NoError(t, err)
	assert.Equal(t, "llama3", meta.ModelName)
	assert.Equal(t, "docs", meta.CollectionName)

	// 同一会话的两轮各自落盘一对记录和一条上下文条目，不做去重
	turns, err := f.transcript.Read(context.Background(), "docs", "conv-1")
	require.NoError(t, err)
	require.Len(t, turns, 4)
	assert.Equal(t, dao.RoleUser, turns[0].Role)
	assert.Equal(t, dao.RoleModel, turns[1].Role)
	assert.Equal(t, dao.RoleUser, turns[2].Role)
	assert.Equal(t, dao.RoleModel, turns[3].Role)
	assert.Len(t, f.retriever.appended, 2)
}

func TestHandleTurn_EmptyStoresUseDefaultTemplateWithBlankContext(t *testing.T) {
	f := newFixture()
	f.retriever.texts = nil

	result, err := f.orch.HandleTurn(context.Background(), turnReq("conv-empty"))
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "the answer", result.ModelResponse)

	// 两库皆空时上下文为空串，提示词仍按默认模板渲染
	expected := template.NewManager().Render("", "what is rrf?")
	assert.Equal(t, expected, f.resolver.cm.lastPrompt)

	turns, err := f.transcript.Read(context.Background(), "docs", "conv-empty")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, dao.RoleUser, turns[0].Role)
	assert.Equal(t, dao.RoleModel, turns[1].Role)
	require.Len(t, f.retriever.appended, 1)
	assert.Equal(t, "what is rrf?\nthe answer", f.retriever.appended[0])
}

func TestHandleTurn_LongPromptSummaryTruncated(t *testing.T) {
	f := newFixture()

	req := turnReq("conv-long")
	for i := 0; i < 20; i++ {
		req.Prompt += "padding "
	}
	_, err := f.orch.HandleTurn(context.Background(), req)
	require.NoError(t, err)

	meta, err := f.history.Get("conv-long")
	require.NoError(t, err)
	assert.Equal(t, "...", meta.ConversationSummary[len(meta.ConversationSummary)-3:])
}

func TestHandleTurn_GenerationFailureKeepsUserRecord(t *testing.T) {
	f := newFixture()
	f.resolver.cm.err = fmt.Errorf("model unavailable")

	result, err := f.orch.HandleTurn(context.Background(), turnReq("conv-2"))
	require.NoError(t, err)
	assert.Equal(t, StatusError, result.Status)
	assert.Empty(t, result.ModelResponse)

	// 用户记录保留，模型记录与上下文条目都没有写入
	turns, err := f.transcript.Read(context.Background(), "docs", "conv-2")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, dao.RoleUser, turns[0].Role)
	assert.Empty(t, f.retriever.appended)
}

func TestHandleTurn_RetrievalFailureUniformStatus(t *testing.T) {
	f := newFixture()
	f.retriever.err = fmt.Errorf("store exploded")

	result, err := f.orch.HandleTurn(context.Background(), turnReq("conv-3"))
	require.NoError(t, err)
	assert.Equal(t, StatusError, result.Status)
}

func TestHandleTurn_ContextEntryIsPromptPlusAnswer(t *testing.T) {
	f := newFixture()

	_, err := f.orch.HandleTurn(context.Background(), turnReq("conv-4"))
	require.NoError(t, err)

	require.Len(t, f.retriever.appended, 1)
	// 条目为原始提问与回答的拼接，不含渲染后的提示词
	assert.Equal(t, "what is rrf?\nthe answer", f.retriever.appended[0])
}

func TestHandleTurn_ValidationError(t *testing.T) {
	f := newFixture()

	_, err := f.orch.HandleTurn(context.Background(), &TurnRequest{ConversationID: "x"})
	require.Error(t, err)
	assert.Equal(t, coreErrors.ErrInvalidParameter, coreErrors.CodeOf(err))
}

func TestHandleTurnStream_PersistsAfterEOF(t *testing.T) {
	f := newFixture()
	f.resolver.cm.chunks = []string{"part1 ", "part2"}
	f.orch.streamFn = func(ctx context.Context, sr *schema.StreamReader[*schema.Message]) (string, error) {
		answer := ""
		for {
			chunk, err := sr.Recv()
			if err == io.EOF {
				return answer, nil
			}
			if err != nil {
				return "", err
			}
			answer += chunk.Content
		}
	}

	require.NoError(t, f.orch.HandleTurnStream(context.Background(), turnReq("conv-5")))

	turns, err := f.transcript.Read(context.Background(), "docs", "conv-5")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "part1 part2", turns[1].Content)
	require.Len(t, f.retriever.appended, 1)
}

func TestHandleTurnStream_MidStreamErrorSkipsPersistence(t *testing.T) {
	f := newFixture()
	f.resolver.cm.chunks = []string{"partial"}
	f.resolver.cm.chunkErr = fmt.Errorf("connection reset")
	f.orch.streamFn = func(ctx context.Context, sr *schema.StreamReader[*schema.Message]) (string, error) {
		answer := ""
		for {
			chunk, err := sr.Recv()
			if err == io.EOF {
				return answer, nil
			}
			if err != nil {
				return "", err
			}
			answer += chunk.Content
		}
	}

	require.NoError(t, f.orch.HandleTurnStream(context.Background(), turnReq("conv-6")))

	// 用户记录保留，模型记录与上下文条目都跳过
	turns, err := f.transcript.Read(context.Background(), "docs", "conv-6")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, dao.RoleUser, turns[0].Role)
	assert.Empty(t, f.retriever.appended)
}

func TestGetTranscript_UnknownConversation(t *testing.T) {
	f := newFixture()

	_, err := f.orch.GetTranscript(context.Background(), "absent")
	require.Error(t, err)
	assert.Equal(t, coreErrors.ErrConversationNotFound, coreErrors.CodeOf(err))
}

func TestDelete_RemovesMetaAndTranscript(t *testing.T) {
	f := newFixture()

	_, err := f.orch.HandleTurn(context.Background(), turnReq("conv-7"))
	require.NoError(t, err)

	require.NoError(t, f.orch.Delete(context.Background(), "conv-7"))

	_, err = f.orch.GetTranscript(context.Background(), "conv-7")
	assert.Error(t, err)
}
