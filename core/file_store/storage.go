package file_store

// StorageType 存储类型
type StorageType string

const (
	StorageTypeRustFS StorageType = "rustfs"
	StorageTypeLocal  StorageType = "local"
)

var storageType StorageType

// SetStorageType 设置存储类型
func SetStorageType(storageTypeVal StorageType) {
	storageType = storageTypeVal
}

// GetStorageType 获取存储类型
func GetStorageType() StorageType {
	return storageType
}
