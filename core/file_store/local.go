package file_store

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/VINKAS7/Rag-WebApp/core/errors"
	"github.com/gogf/gf/v2/frame/g"
)

// SaveFileToLocal 把上传文件保存到指定暂存目录
func SaveFileToLocal(ctx context.Context, targetDir string, fileName string, file multipart.File) (finalPath string, err error) {
	// 确保目标目录存在
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		g.Log().Errorf(ctx, "Failed to create directory %s: %v", targetDir, err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to create directory %s: %v", targetDir, err)
	}

	finalPath = filepath.Join(targetDir, fileName)

	destFile, err := os.Create(finalPath)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to create file %s: %v", finalPath, err)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to create file %s: %v", finalPath, err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, file)
	if err != nil {
		g.Log().Errorf(ctx, "Failed to write file %s: %v", finalPath, err)
		// 删除写入失败的文件
		_ = os.Remove(finalPath)
		return "", errors.Newf(errors.ErrFileUploadFailed, "failed to write file %s: %v", finalPath, err)
	}

	g.Log().Infof(ctx, "File saved to local storage: %s", finalPath)
	return finalPath, nil
}
