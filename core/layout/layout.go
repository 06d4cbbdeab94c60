package layout

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
)

// 集合目录下的固定子目录布局
const (
	documentStoreDir = "chromadb"
	contextStoreDir  = "context"
	transcriptDir    = "db"
	stagingDir       = "files"
)

// CollectionDir 解析集合目录，拒绝逃出存储根目录的名称
func CollectionDir(ctx context.Context, collection string) (string, error) {
	if collection == "" {
		return "", errors.New(errors.ErrInvalidParameter, "collection name is empty")
	}

	root, err := filepath.Abs(config.StorageRoot(ctx))
	if err != nil {
		return "", errors.Newf(errors.ErrInternalError, "failed to resolve storage root: %v", err)
	}

	dir, err := filepath.Abs(filepath.Join(root, collection))
	if err != nil {
		return "", errors.Newf(errors.ErrInternalError, "failed to resolve collection dir: %v", err)
	}

	// 路径前缀校验，集合目录必须在根目录之下
	if dir == root || !strings.HasPrefix(dir, root+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrCollectionNameUnsafe, "unsafe collection name: %s", collection)
	}
	return dir, nil
}

// DocumentStoreDir 集合的文档向量库目录
func DocumentStoreDir(ctx context.Context, collection string) (string, error) {
	dir, err := CollectionDir(ctx, collection)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, documentStoreDir), nil
}

// ContextStoreDir 会话的上下文向量库目录
func ContextStoreDir(ctx context.Context, collection, conversationID string) (string, error) {
	dir, err := CollectionDir(ctx, collection)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, contextStoreDir, conversationID), nil
}

// TranscriptPath 会话完整转录文件路径
func TranscriptPath(ctx context.Context, collection, conversationID string) (string, error) {
	dir, err := CollectionDir(ctx, collection)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, transcriptDir, conversationID+".json"), nil
}

// StagingDir 摄取前的文件暂存目录
func StagingDir(ctx context.Context, collection string) (string, error) {
	dir, err := CollectionDir(ctx, collection)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stagingDir), nil
}
