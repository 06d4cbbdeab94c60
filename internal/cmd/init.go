package cmd

import (
	"context"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/file_store"
	"github.com/VINKAS7/Rag-WebApp/internal/service"
	"github.com/gogf/gf/v2/frame/g"
)

// init initializes all components of the application
func init() {
	ctx := context.Background()

	// Validate configuration before initializing components
	g.Log().Info(ctx, "Validating application configuration...")
	err := config.ValidateConfiguration(ctx)
	if err != nil {
		g.Log().Fatalf(ctx, "Configuration validation failed:\n%v", err)
	}

	// Initialize storage system
	file_store.InitStorage()

	// Initialize record stores, vector store registry, retriever, pipeline and orchestrator
	if err = service.Init(ctx); err != nil {
		g.Log().Fatalf(ctx, "Service initialization failed: %v", err)
	}

	g.Log().Info(ctx, "✓ All components initialized successfully")
}
