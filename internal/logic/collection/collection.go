package collection

import (
	"context"
	"os"

	"github.com/VINKAS7/Rag-WebApp/core/config"
	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/VINKAS7/Rag-WebApp/core/file_store"
	"github.com/VINKAS7/Rag-WebApp/core/indexer"
	"github.com/VINKAS7/Rag-WebApp/core/layout"
	"github.com/VINKAS7/Rag-WebApp/core/vector_store"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gfile"
)

// Service 集合生命周期管理
type Service struct {
	stores   *vector_store.Registry
	pipeline *indexer.Pipeline
}

// NewService 创建集合服务
func NewService(stores *vector_store.Registry, pipeline *indexer.Pipeline) *Service {
	return &Service{
		stores:   stores,
		pipeline: pipeline,
	}
}

// Create 创建（或追加）集合：暂存上传文件，摄取文件与URL来源
// 摄取整体失败时回滚新建的集合目录
func (x *Service) Create(ctx context.Context, name string, files []*ghttp.UploadFile, urls []string) error {
	collectionDir, err := layout.CollectionDir(ctx, name)
	if err != nil {
		return err
	}
	if len(files) == 0 && len(urls) == 0 {
		return errors.New(errors.ErrInvalidParameter, "no files or urls provided")
	}

	isNew := !gfile.Exists(collectionDir)

	stagingDir, err := layout.StagingDir(ctx, name)
	if err != nil {
		return err
	}

	// 暂存上传文件
	sources := make([]indexer.Source, 0, len(files)+len(urls))
	for _, uploadFile := range files {
		f, err := uploadFile.Open()
		if err != nil {
			g.Log().Errorf(ctx, "failed to open upload file %s: %v", uploadFile.Filename, err)
			continue
		}
		localPath, saveErr := file_store.SaveFileToLocal(ctx, stagingDir, uploadFile.Filename, f)
		_ = f.Close()
		if saveErr != nil {
			g.Log().Errorf(ctx, "failed to stage %s: %v", uploadFile.Filename, saveErr)
			continue
		}

		// rustfs 镜像失败不影响摄取
		if _, mirrorErr := file_store.MirrorToRustFS(ctx, name, localPath); mirrorErr != nil {
			g.Log().Warningf(ctx, "failed to mirror %s: %v", uploadFile.Filename, mirrorErr)
		}

		sources = append(sources, indexer.Source{URI: localPath, Type: indexer.SourceTypeFile})
	}
	for _, u := range urls {
		sources = append(sources, indexer.Source{URI: u, Type: indexer.SourceTypeURL})
	}

	if len(sources) == 0 {
		x.rollback(ctx, name, collectionDir, isNew)
		return errors.Newf(errors.ErrCollectionCreate, "no ingestible sources for collection %s", name)
	}

	if err = x.pipeline.Ingest(ctx, name, sources); err != nil {
		x.rollback(ctx, name, collectionDir, isNew)
		return errors.Newf(errors.ErrCollectionCreate, "ingestion failed for collection %s: %v", name, err)
	}

	// 摄取成功后移除暂存目录
	if err = os.RemoveAll(stagingDir); err != nil {
		g.Log().Warningf(ctx, "failed to remove staging dir %s: %v", stagingDir, err)
	}
	g.Log().Infof(ctx, "collection %s created with %d sources", name, len(sources))
	return nil
}

// rollback 摄取失败时清理新建集合的残留目录
func (x *Service) rollback(ctx context.Context, name, collectionDir string, isNew bool) {
	if !isNew {
		return
	}
	x.stores.EvictPrefix(collectionDir)
	if err := os.RemoveAll(collectionDir); err != nil {
		g.Log().Warningf(ctx, "failed to roll back collection dir %s: %v", collectionDir, err)
	}
}

// List 列出全部集合名称
func (x *Service) List(ctx context.Context) ([]string, error) {
	root := config.StorageRoot(ctx)
	if !gfile.Exists(root) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Newf(errors.ErrInternalError, "failed to read storage root: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Delete 删除集合的整个子树：文档库、全部会话上下文库和转录
func (x *Service) Delete(ctx context.Context, name string) error {
	collectionDir, err := layout.CollectionDir(ctx, name)
	if err != nil {
		return err
	}
	if !gfile.Exists(collectionDir) {
		return errors.Newf(errors.ErrCollectionNotFound, "collection not found: %s", name)
	}

	// 先清缓存，避免句柄指向已删除目录
	x.stores.EvictPrefix(collectionDir)

	if err = os.RemoveAll(collectionDir); err != nil {
		return errors.Newf(errors.ErrCollectionDelete, "failed to delete collection %s: %v", name, err)
	}

	file_store.RemoveCollectionMirror(ctx, name)
	g.Log().Infof(ctx, "collection %s deleted", name)
	return nil
}
