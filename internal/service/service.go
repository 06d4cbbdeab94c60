package service

import (
	"context"

	"github.com/VINKAS7/Rag-WebApp/core/embedding"
	"github.com/VINKAS7/Rag-WebApp/core/indexer"
	coreModel "github.com/VINKAS7/Rag-WebApp/core/model"
	"github.com/VINKAS7/Rag-WebApp/core/retriever"
	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	"github.com/VINKAS7/Rag-WebApp/internal/dao"
	"github.com/VINKAS7/Rag-WebApp/internal/logic/collection"
	"github.com/VINKAS7/Rag-WebApp/internal/logic/conversation"
	"github.com/VINKAS7/Rag-WebApp/internal/logic/template"
)

var (
	retrieverIns    *retriever.Retriever
	modelRegistry   *coreModel.Registry
	templateManager *template.Manager
	orchestratorIns *conversation.Orchestrator
	collectionIns   *collection.Service
)

// Init 组装全部组件，进程启动时调用一次
func Init(ctx context.Context) error {
	if err := dao.Init(ctx); err != nil {
		return err
	}

	stores := vector_store.NewRegistry(embedding.ChromemFunc())
	retrieverIns = retriever.New(stores)
	modelRegistry = coreModel.NewRegistry()
	templateManager = template.NewManager()

	pipeline := indexer.NewPipeline(stores)
	collectionIns = collection.NewService(stores, pipeline)

	orchestratorIns = conversation.NewOrchestrator(
		retrieverIns,
		modelRegistry,
		templateManager,
		dao.History,
		dao.Transcript,
	)
	return nil
}

// Orchestrator 对话编排器
func Orchestrator() *conversation.Orchestrator {
	return orchestratorIns
}

// Collections 集合服务
func Collections() *collection.Service {
	return collectionIns
}

// Templates 模板管理器
func Templates() *template.Manager {
	return templateManager
}

// Models 模型提供方注册表
func Models() *coreModel.Registry {
	return modelRegistry
}

