package dao

import (
	"context"
	"os"
	"path/filepath"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/os/gfile"
)

var (
	// History 全局会话索引
	History *HistoryStore
	// Template 提示词模板库
	Template *TemplateStore
	// Transcript 会话转录库
	Transcript *TranscriptStore
)

// Init 初始化记录存储，记录目录不存在时创建
func Init(ctx context.Context) error {
	recordDir := config.RecordDir(ctx)
	if err := os.MkdirAll(recordDir, 0755); err != nil {
		return errors.Newf(errors.ErrRecordWrite, "failed to create record dir %s: %v", recordDir, err)
	}

	History = NewHistoryStore(filepath.Join(recordDir, "conversations_history.json"))
	Template = NewTemplateStore(filepath.Join(recordDir, "prompt_templates.json"))
	Transcript = NewTranscriptStore()
	return nil
}

// readRecords 读取整个记录文件，文件不存在视为空列表
func readRecords[T any](path string) ([]T, error) {
	if !gfile.Exists(path) {
		return nil, nil
	}
	data := gfile.GetBytes(path)
	if len(data) == 0 {
		return nil, nil
	}
	var records []T
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, errors.Newf(errors.ErrRecordRead, "failed to parse %s: %v", path, err)
	}
	return records, nil
}

// writeRecords 整体回写记录文件
func writeRecords[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := sonic.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Newf(errors.ErrRecordWrite, "failed to marshal %s: %v", path, err)
	}
	if err = gfile.PutBytes(path, data); err != nil {
		return errors.Newf(errors.ErrRecordWrite, "failed to write %s: %v", path, err)
	}
	return nil
}
