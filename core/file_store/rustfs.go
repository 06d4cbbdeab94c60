package file_store

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type RustfsConfig struct {
	Client     *minio.Client
	BucketName string
}

var rustfsConfig RustfsConfig

// InitRustFS 初始化 RustFS 存储
func InitRustFS(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, ssl bool) error {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create MinIO client: %v", err)
	}

	rustfsConfig = RustfsConfig{
		Client:     client,
		BucketName: bucketName,
	}

	// 创建 bucket，如果已存在则跳过
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to check if bucket exists: %v", err)
	}
	if exists {
		g.Log().Printf(ctx, "Bucket '%s' already exists, skipping creation.", bucketName)
		return nil
	}

	err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: ""})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create bucket: %v", err)
	}

	g.Log().Printf(ctx, "Created bucket '%s'", bucketName)
	return nil
}

// MirrorToRustFS 把已落盘的暂存文件镜像到 RustFS
// 对象键: sources/<集合名>/<文件名>，失败只影响镜像，不影响摄取
func MirrorToRustFS(ctx context.Context, collection string, localPath string) (rustfsKey string, err error) {
	if GetStorageType() != StorageTypeRustFS || rustfsConfig.Client == nil {
		return "", nil
	}

	uploadFile, err := os.Open(localPath)
	if err != nil {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to open local file for upload: %v", err)
	}
	defer uploadFile.Close()

	stat, err := uploadFile.Stat()
	if err != nil {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to get file stat: %v", err)
	}

	// 检测内容类型
	buffer := make([]byte, 512)
	_, err = uploadFile.Read(buffer)
	if err != nil && err != io.EOF {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to read file header: %v", err)
	}
	if _, err = uploadFile.Seek(0, 0); err != nil {
		return "", errors.Newf(errors.ErrFileReadFailed, "failed to seek file to beginning: %v", err)
	}
	contentType := http.DetectContentType(buffer)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	rustfsKey = filepath.Join("sources", collection, filepath.Base(localPath))
	_, err = rustfsConfig.Client.PutObject(ctx, rustfsConfig.BucketName, rustfsKey, uploadFile, stat.Size(),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to upload to RustFS: %v", err)
	}

	g.Log().Infof(ctx, "File mirrored to RustFS: bucket=%s, key=%s", rustfsConfig.BucketName, rustfsKey)
	return rustfsKey, nil
}

// RemoveCollectionMirror 删除集合在 RustFS 中的全部镜像对象
func RemoveCollectionMirror(ctx context.Context, collection string) {
	if GetStorageType() != StorageTypeRustFS || rustfsConfig.Client == nil {
		return
	}

	prefix := filepath.Join("sources", collection) + "/"
	objects := rustfsConfig.Client.ListObjects(ctx, rustfsConfig.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			g.Log().Warningf(ctx, "failed to list mirror objects: %v", object.Err)
			continue
		}
		if err := rustfsConfig.Client.RemoveObject(ctx, rustfsConfig.BucketName, object.Key, minio.RemoveObjectOptions{}); err != nil {
			g.Log().Warningf(ctx, "failed to remove mirror object %s: %v", object.Key, err)
		}
	}
}
