package dao

import (
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
)

// ConversationMeta 会话元数据，首轮对话时写入，此后不变
type ConversationMeta struct {
	DateAndTime         string `json:"DateAndTime"`
	ConversationSummary string `json:"conversation_summary"`
	ConversationID      string `json:"conversation_id"`
	Provider            string `json:"provider"`
	ModelName           string `json:"modelName"`
	CollectionName      string `json:"collectionName"`
}

// HistoryStore 全局会话索引，单个JSON文件
type HistoryStore struct {
	mu   sync.Mutex
	path string
}

// NewHistoryStore 创建会话索引存储
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Save 追加一条会话元数据
func (x *HistoryStore) Save(meta *ConversationMeta) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*ConversationMeta](x.path)
	if err != nil {
		return err
	}
	records = append(records, meta)
	return writeRecords(x.path, records)
}

// List 返回全部会话元数据
func (x *HistoryStore) List() ([]*ConversationMeta, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return readRecords[*ConversationMeta](x.path)
}

// Get 按会话ID查询元数据，未找到时报 ErrConversationNotFound
func (x *HistoryStore) Get(conversationID string) (*ConversationMeta, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*ConversationMeta](x.path)
	if err != nil {
		return nil, err
	}
	for _, meta := range records {
		if meta.ConversationID == conversationID {
			return meta, nil
		}
	}
	return nil, errors.Newf(errors.ErrConversationNotFound, "conversation not found: %s", conversationID)
}

// Exists 判断会话是否已记录
func (x *HistoryStore) Exists(conversationID string) (bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*ConversationMeta](x.path)
	if err != nil {
		return false, err
	}
	for _, meta := range records {
		if meta.ConversationID == conversationID {
			return true, nil
		}
	}
	return false, nil
}

// Delete 删除指定会话的元数据，未找到时报 ErrConversationNotFound
func (x *HistoryStore) Delete(conversationID string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[*ConversationMeta](x.path)
	if err != nil {
		return err
	}

	kept := make([]*ConversationMeta, 0, len(records))
	found := false
	for _, meta := range records {
		if meta.ConversationID == conversationID {
			found = true
			continue
		}
		kept = append(kept, meta)
	}
	if !found {
		return errors.Newf(errors.ErrConversationNotFound, "conversation not found: %s", conversationID)
	}
	return writeRecords(x.path, kept)
}
