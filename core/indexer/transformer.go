package indexer

import (
	"context"

	"github.com/cloudwego/eino-ext/components/document/transformer/splitter/markdown"
	"github.com/cloudwego/eino-ext/components/document/transformer/splitter/recursive"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/schema"
)

// markdown 标题层级写入的 metadata 键
const (
	metaTitle1 = "h1"
	metaTitle2 = "h2"
	metaTitle3 = "h3"
)

// newTransformer 创建分块器，md 文档按标题切分，其余递归切分
func newTransformer(ctx context.Context, chunkSize, overlapSize int) (document.Transformer, error) {
	trans := &transformer{}
	// 递归分割
	recTrans, err := recursive.NewSplitter(ctx, &recursive.Config{
		ChunkSize:   chunkSize,   // 自定义每段内容大小
		OverlapSize: overlapSize, // 自定义重叠大小
		Separators:  []string{"\n", "。", "?", "？", "!", "！"},
	})
	if err != nil {
		return nil, err
	}
	// md 文档特殊处理
	mdTrans, err := markdown.NewHeaderSplitter(ctx, &markdown.HeaderConfig{
		Headers:     map[string]string{"#": metaTitle1, "##": metaTitle2, "###": metaTitle3},
		TrimHeaders: false,
	})
	if err != nil {
		return nil, err
	}
	trans.recursive = recTrans
	trans.markdown = mdTrans
	return trans, nil
}

type transformer struct {
	markdown  document.Transformer
	recursive document.Transformer
}

func (x *transformer) Transform(ctx context.Context, docs []*schema.Document, opts ...document.TransformerOption) ([]*schema.Document, error) {
	isMd := false
	for _, doc := range docs {
		// 只需要判断第一个是不是.md
		if doc.MetaData["_extension"] == ".md" {
			isMd = true
			break
		}
	}
	if isMd {
		return x.markdown.Transform(ctx, docs, opts...)
	}
	return x.recursive.Transform(ctx, docs, opts...)
}
