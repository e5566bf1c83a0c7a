package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/dataset"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// SnapshotCache 目录快照缓存
//
// 设计说明：
// 1. 整个目录序列化为一个JSON值（与数据集文件格式相同），一个key对应一个数据源
// 2. Cache-Aside：先查缓存，未命中再读数据源，然后回填缓存
// 3. 目录在进程内只读，缓存只用于加快多实例启动、减轻MySQL压力
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache 创建快照缓存
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get 读取快照，缓存未命中时返回nil, nil（调用方需要读取数据源）
// pageSize大于0时覆盖快照中记录的每页数量，0表示沿用快照的设置
func (c *SnapshotCache) Get(ctx context.Context, name string, pageSize int) (*catalog.Catalog, error) {
	val, err := c.client.Get(ctx, snapshotKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.ErrRedisError.WithCause(fmt.Errorf("获取缓存失败: %w", err))
	}
	return decodeSnapshot(val, pageSize)
}

// Set 写入快照
func (c *SnapshotCache) Set(ctx context.Context, name string, cat *catalog.Catalog) error {
	val, err := encodeSnapshot(cat)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, snapshotKey(name), val, c.ttl).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("设置缓存失败: %w", err))
	}
	return nil
}

// Delete 删除快照（seed命令写入新数据后调用）
func (c *SnapshotCache) Delete(ctx context.Context, name string) error {
	if err := c.client.Del(ctx, snapshotKey(name)).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("删除缓存失败: %w", err))
	}
	return nil
}

// snapshotKey 缓存key，如 catalog:snapshot:mysql
func snapshotKey(name string) string {
	return "catalog:snapshot:" + name
}

func encodeSnapshot(cat *catalog.Catalog) ([]byte, error) {
	val, err := dataset.Marshal(dataset.FromCatalog(cat), dataset.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("序列化失败: %w", err)
	}
	return val, nil
}

func decodeSnapshot(val []byte, pageSize int) (*catalog.Catalog, error) {
	doc, err := dataset.Decode(val, dataset.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}
	return doc.ToCatalog(pageSize)
}

// CachedSource 带快照缓存的数据源（装饰器）
// 缓存读写失败只记录日志，不影响从数据源加载
type CachedSource struct {
	name     string
	source   catalog.Source
	cache    *SnapshotCache
	pageSize int
	log      *logger.Logger
}

// NewCachedSource 用快照缓存包装任意数据源
// name区分不同数据源的快照（embedded、file、mysql）
// pageSize与被包装的数据源一致：命中快照时同样以配置的每页数量为准
func NewCachedSource(name string, source catalog.Source, cache *SnapshotCache, pageSize int, log *logger.Logger) *CachedSource {
	return &CachedSource{name: name, source: source, cache: cache, pageSize: pageSize, log: log}
}

// Load 实现catalog.Source接口
func (s *CachedSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	fields := map[string]any{"source": s.name}

	cat, err := s.cache.Get(ctx, s.name, s.pageSize)
	if err != nil {
		s.log.WithFields(fields).Error(err, "读取目录快照失败")
	}
	if cat != nil {
		s.log.WithFields(fields).Debug("目录快照命中")
		return cat, nil
	}

	cat, err = s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.name, cat); err != nil {
		s.log.WithFields(fields).Error(err, "写入目录快照失败")
	}
	return cat, nil
}
