package dao

import (
	"context"
	"os"
	"sync"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/core/layout"
	"github.com/gogf/gf/v2/os/gfile"
)

// 转录文件中单条记录的角色键
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn 转录中的一条记录，Role 为 user 或 model
type Turn struct {
	Role    string
	Content string
}

// TranscriptStore 会话转录库，每个会话一个JSON文件
// 文件内容为 [{"user": ...}, {"model": ...}] 形式的数组
type TranscriptStore struct {
	mu sync.Mutex
}

// NewTranscriptStore 创建转录存储
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{}
}

// AppendUser 追加一条用户记录
func (x *TranscriptStore) AppendUser(ctx context.Context, collection, conversationID, content string) error {
	return x.append(ctx, collection, conversationID, RoleUser, content)
}

// AppendModel 追加一条模型记录
func (x *TranscriptStore) AppendModel(ctx context.Context, collection, conversationID, content string) error {
	return x.append(ctx, collection, conversationID, RoleModel, content)
}

func (x *TranscriptStore) append(ctx context.Context, collection, conversationID, role, content string) error {
	path, err := layout.TranscriptPath(ctx, collection, conversationID)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[map[string]string](path)
	if err != nil {
		return err
	}
	records = append(records, map[string]string{role: content})
	return writeRecords(path, records)
}

// Read 按写入顺序返回全部转录记录
// 文件不存在时返回空转录，元数据是否存在由调用方校验
func (x *TranscriptStore) Read(ctx context.Context, collection, conversationID string) ([]*Turn, error) {
	path, err := layout.TranscriptPath(ctx, collection, conversationID)
	if err != nil {
		return nil, err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	records, err := readRecords[map[string]string](path)
	if err != nil {
		return nil, err
	}

	turns := make([]*Turn, 0, len(records))
	for _, record := range records {
		for _, role := range []string{RoleUser, RoleModel} {
			if content, ok := record[role]; ok {
				turns = append(turns, &Turn{Role: role, Content: content})
			}
		}
	}
	return turns, nil
}

// Delete 删除转录文件，文件不存在时视为成功
func (x *TranscriptStore) Delete(ctx context.Context, collection, conversationID string) error {
	path, err := layout.TranscriptPath(ctx, collection, conversationID)
	if err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if !gfile.Exists(path) {
		return nil
	}
	if err = os.Remove(path); err != nil {
		return errors.Newf(errors.ErrRecordDelete, "failed to delete transcript %s: %v", path, err)
	}
	return nil
}
