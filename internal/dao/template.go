package dao

import (
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
)

// PromptTemplate 命名提示词模板
type PromptTemplate struct {
	Name           string `json:"name"`
	PromptTemplate string `json:"prompt_template"`
}

// TemplateStore 提示词模板库，单个JSON文件，按名称唯一
type TemplateStore struct {
	mu   sync.Mutex
	path string
}

// NewTemplateStore 创建模板存储
func NewTemplateStore(path string) *TemplateStore {
	return &TemplateStore{path: path}
}

// Upsert 按名称保存模板，同名覆盖
func (x *TemplateStore) Upsert(tpl *PromptTemplate) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*PromptTemplate](x.path)
	if err != nil {
		return err
	}

	replaced := false
	for i, record := range records {
		if record.Name == tpl.Name {
			records[i] = tpl
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, tpl)
	}
	return writeRecords(x.path, records)
}

// Get 按名称查询模板，未找到时报 ErrTemplateNotFound
func (x *TemplateStore) Get(name string) (*PromptTemplate, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*PromptTemplate](x.path)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.Name == name {
			return record, nil
		}
	}
	return nil, errors.Newf(errors.ErrTemplateNotFound, "prompt template not found: %s", name)
}

// List 返回全部模板
func (x *TemplateStore) List() ([]*PromptTemplate, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return readRecords[*PromptTemplate](x.path)
}

// Delete 按名称删除模板，未找到时报 ErrTemplateNotFound
func (x *TemplateStore) Delete(name string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*PromptTemplate](x.path)
	if err != nil {
		return err
	}

	kept := make([]*PromptTemplate, 0, len(records))
	found := false
	for _, record := range records {
		if record.Name == name {
			found = true
			continue
		}
		kept = append(kept, record)
	}
	if !found {
		return errors.Newf(errors.ErrTemplateNotFound, "prompt template not found: %s", name)
	}
	return writeRecords(x.path, kept)
}
