package catalog

import (
	"context"
)

// Source 图书目录数据源接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(内置数据集、数据集文件、MySQL)
// 2. 只在启动时调用一次,之后目录不再变化
// 3. 缓存层(Redis)以装饰器形式包在任意数据源外面
type Source interface {
	// Load 加载完整目录
	Load(ctx context.Context) (*Catalog, error)
}

// SourceFunc 函数适配器,便于测试时直接提供目录
type SourceFunc func(ctx context.Context) (*Catalog, error)

// Load 实现Source接口
func (f SourceFunc) Load(ctx context.Context) (*Catalog, error) {
	return f(ctx)
}
