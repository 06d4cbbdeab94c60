package indexer

import (
	"context"

	"github.com/VINKAS7/Rag-WebApp/core/common"
	"github.com/cloudwego/eino-ext/components/document/loader/file"
	document_url "github.com/cloudwego/eino-ext/components/document/loader/url"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/schema"
)

// newLoader 本地文件与URL共用的加载器
func newLoader(ctx context.Context) (document.Loader, error) {
	parserInstance, err := newParser(ctx)
	if err != nil {
		return nil, err
	}

	fldr, err := file.NewFileLoader(ctx, &file.FileLoaderConfig{
		UseNameAsID: false,
		Parser:      parserInstance,
	})
	if err != nil {
		return nil, err
	}

	uldr, err := document_url.NewLoader(ctx, &document_url.LoaderConfig{})
	if err != nil {
		return nil, err
	}

	return &multiLoader{
		fileLoader: fldr,
		urlLoader:  uldr,
	}, nil
}

type multiLoader struct {
	fileLoader document.Loader
	urlLoader  document.Loader
}

func (x *multiLoader) Load(ctx context.Context, src document.Source, opts ...document.LoaderOption) ([]*schema.Document, error) {
	if common.IsURL(src.URI) {
		return x.urlLoader.Load(ctx, src, opts...)
	}
	return x.fileLoader.Load(ctx, src, opts...)
}
