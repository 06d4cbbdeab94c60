package vector_store

import (
	"path/filepath"
	"strings"
	"sync"
)

// Registry 按磁盘路径缓存向量库实例
// 同一路径只构造一次，构造期间的并发请求等待同一结果
type Registry struct {
	mu     sync.Mutex
	stores map[string]*entry
	embed  EmbedFunc
}

type entry struct {
	once  sync.Once
	store VectorStore
	err   error
}

// NewRegistry 创建向量库注册表，embed 用于所有集合的向量化
func NewRegistry(embed EmbedFunc) *Registry {
	return &Registry{
		stores: make(map[string]*entry),
		embed:  embed,
	}
}

// Get 获取 path 目录下名为 name 的向量库，必要时构造
func (x *Registry) Get(path, name string) (VectorStore, error) {
	key := filepath.Clean(path)

	x.mu.Lock()
	e, ok := x.stores[key]
	if !ok {
		e = &entry{}
		x.stores[key] = e
	}
	x.mu.Unlock()

	e.once.Do(func() {
		e.store, e.err = NewChromemStore(key, name, x.embed)
	})
	if e.err != nil {
		// 构造失败的条目不留在缓存中，后续请求可以重试
		x.mu.Lock()
		if x.stores[key] == e {
			delete(x.stores, key)
		}
		x.mu.Unlock()
	}
	return e.store, e.err
}

// EvictPrefix 删除指定路径前缀下的所有缓存实例
// 集合被删除后调用，避免悬挂的句柄指向已清除的目录
func (x *Registry) EvictPrefix(prefix string) {
	prefix = filepath.Clean(prefix)
	x.mu.Lock()
	defer x.mu.Unlock()
	for key := range x.stores {
		if key == prefix || strings.HasPrefix(key, prefix+string(filepath.Separator)) {
			delete(x.stores, key)
		}
	}
}
