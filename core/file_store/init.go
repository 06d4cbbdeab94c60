package file_store

import (
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

// InitStorage 初始化存储系统
// rustfs 仅作为上传源文件的镜像，摄取始终走本地暂存目录
func InitStorage() {
	ctx := gctx.New()

	storageTypeStr := g.Cfg().MustGet(ctx, "storage.type", "local").String()

	switch storageTypeStr {
	case "rustfs":
		rustfsEndpoint := g.Cfg().MustGet(ctx, "rustfs.endpoint", "").String()
		if rustfsEndpoint == "" {
			// 没有配置rustfs时退回本地存储
			SetStorageType(StorageTypeLocal)
			g.Log().Infof(ctx, "RustFS not configured, using local storage")
			return
		}

		rustfsAccessKey := g.Cfg().MustGet(ctx, "rustfs.accessKey").String()
		rustfsSecretKey := g.Cfg().MustGet(ctx, "rustfs.secretKey").String()
		rustfsBucketName := g.Cfg().MustGet(ctx, "rustfs.bucketName").String()
		rustfsSsl := g.Cfg().MustGet(ctx, "rustfs.ssl", false).Bool()

		err := InitRustFS(ctx, rustfsEndpoint, rustfsAccessKey, rustfsSecretKey, rustfsBucketName, rustfsSsl)
		if err != nil {
			g.Log().Fatalf(ctx, "failed to initialize RustFS: %v", err)
			return
		}

		SetStorageType(StorageTypeRustFS)
		g.Log().Infof(ctx, "Using RustFS storage as configured")
	default:
		SetStorageType(StorageTypeLocal)
		g.Log().Infof(ctx, "Using local storage as configured")
	}
}
