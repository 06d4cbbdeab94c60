package indexer

import (
	"context"

	"github.com/cloudwego/eino-ext/components/document/parser/html"
	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino-ext/components/document/parser/xlsx"
	"github.com/cloudwego/eino/components/document/parser"
)

// newParser 按扩展名分发的文档解析器，未知类型按纯文本处理
func newParser(ctx context.Context) (parser.Parser, error) {
	htmlParser, err := html.NewParser(ctx, &html.Config{})
	if err != nil {
		return nil, err
	}
	pdfParser, err := pdf.NewPDFParser(ctx, &pdf.Config{})
	if err != nil {
		return nil, err
	}
	xlsxParser, err := xlsx.NewXlsxParser(ctx, &xlsx.Config{})
	if err != nil {
		return nil, err
	}

	return parser.NewExtParser(ctx, &parser.ExtParserConfig{
		Parsers: map[string]parser.Parser{
			".html": htmlParser,
			".htm":  htmlParser,
			".pdf":  pdfParser,
			".xlsx": xlsxParser,
		},
		FallbackParser: parser.TextParser{},
	})
}
