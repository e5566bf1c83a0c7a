package redis

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewCatalog(
		[]catalog.Book{
			{ID: "b1", Title: "Dune", Author: "herbert", Genres: []string{"scifi"}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "b2", Title: "The Hobbit", Author: "tolkien", Genres: []string{"fantasy"}, Published: time.Date(1937, 9, 21, 0, 0, 0, 0, time.UTC)},
		},
		[]catalog.Entry{{ID: "herbert", Name: "Frank Herbert"}, {ID: "tolkien", Name: "J.R.R. Tolkien"}},
		[]catalog.Entry{{ID: "scifi", Name: "Science Fiction"}, {ID: "fantasy", Name: "Fantasy"}},
		7,
	)
	require.NoError(t, err)
	return c
}

// unreachableClient 指向不可达地址的客户端，用于验证缓存故障时的降级
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// newMiniredis 内存Redis，测试结束自动关闭
func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// countingSource 记录Load调用次数
func countingSource(t *testing.T, calls *int) catalog.Source {
	return catalog.SourceFunc(func(ctx context.Context) (*catalog.Catalog, error) {
		*calls++
		return sampleCatalog(t), nil
	})
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "catalog:snapshot:mysql", snapshotKey("mysql"))
}

func TestSnapshotCodec(t *testing.T) {
	original := sampleCatalog(t)

	val, err := encodeSnapshot(original)
	require.NoError(t, err)

	restored, err := decodeSnapshot(val, 0)
	require.NoError(t, err)
	assert.Equal(t, original.Books(), restored.Books())
	assert.Equal(t, original.Authors(), restored.Authors())
	assert.Equal(t, 7, restored.PageSize())

	resized, err := decodeSnapshot(val, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, resized.PageSize())

	_, err = decodeSnapshot([]byte("not json"), 0)
	assert.Error(t, err)
}

func TestCachedSource(t *testing.T) {
	t.Run("Redis不可用时降级到数据源", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.New(logger.Options{Level: "debug", Format: "json", Writer: buf})
		require.NoError(t, err)

		calls := 0
		source := catalog.SourceFunc(func(ctx context.Context) (*catalog.Catalog, error) {
			calls++
			return sampleCatalog(t), nil
		})

		cached := NewCachedSource("embedded", source, NewSnapshotCache(unreachableClient(t), time.Minute), 0, log)
		c, err := cached.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 1, calls)
		assert.Contains(t, buf.String(), "读取目录快照失败")
		assert.Contains(t, buf.String(), "写入目录快照失败")
	})

	t.Run("数据源错误原样返回", func(t *testing.T) {
		boom := errors.New("boom")
		source := catalog.SourceFunc(func(ctx context.Context) (*catalog.Catalog, error) {
			return nil, boom
		})

		cached := NewCachedSource("mysql", source, NewSnapshotCache(unreachableClient(t), time.Minute), 0, logger.Nop())
		_, err := cached.Load(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestSnapshotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("未命中返回nil", func(t *testing.T) {
		_, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)

		c, err := cache.Get(ctx, "mysql", 0)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("写入后可读取并带TTL", func(t *testing.T) {
		mr, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "mysql", sampleCatalog(t)))
		assert.True(t, mr.Exists("catalog:snapshot:mysql"))
		assert.Equal(t, time.Minute, mr.TTL("catalog:snapshot:mysql"))

		c, err := cache.Get(ctx, "mysql", 0)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 7, c.PageSize())
	})

	t.Run("过期后未命中", func(t *testing.T) {
		mr, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "mysql", sampleCatalog(t)))
		mr.FastForward(2 * time.Minute)

		c, err := cache.Get(ctx, "mysql", 0)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("删除快照", func(t *testing.T) {
		mr, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "mysql", sampleCatalog(t)))
		require.NoError(t, cache.Delete(ctx, "mysql"))
		assert.False(t, mr.Exists("catalog:snapshot:mysql"))

		// 删除不存在的key不是错误
		assert.NoError(t, cache.Delete(ctx, "mysql"))
	})

	t.Run("损坏的快照返回错误", func(t *testing.T) {
		mr, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)

		require.NoError(t, mr.Set("catalog:snapshot:mysql", "not json"))
		_, err := cache.Get(ctx, "mysql", 0)
		assert.Error(t, err)
	})

	t.Run("Redis故障转换为缓存错误", func(t *testing.T) {
		cache := NewSnapshotCache(unreachableClient(t), time.Minute)

		_, err := cache.Get(ctx, "mysql", 0)
		assert.ErrorIs(t, err, apperrors.ErrRedisError)
		assert.ErrorIs(t, cache.Set(ctx, "mysql", sampleCatalog(t)), apperrors.ErrRedisError)
		assert.ErrorIs(t, cache.Delete(ctx, "mysql"), apperrors.ErrRedisError)
	})
}

func TestCachedSource_Redis(t *testing.T) {
	ctx := context.Background()

	t.Run("未命中时读取数据源并回填", func(t *testing.T) {
		mr, client := newMiniredis(t)
		calls := 0
		cached := NewCachedSource("mysql", countingSource(t, &calls), NewSnapshotCache(client, time.Minute), 0, logger.Nop())

		c, err := cached.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 1, calls)
		assert.True(t, mr.Exists("catalog:snapshot:mysql"))
	})

	t.Run("命中时不读取数据源", func(t *testing.T) {
		_, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)
		require.NoError(t, cache.Set(ctx, "mysql", sampleCatalog(t)))

		calls := 0
		cached := NewCachedSource("mysql", countingSource(t, &calls), cache, 0, logger.Nop())

		c, err := cached.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 0, calls)
	})

	t.Run("连续加载只读取一次数据源", func(t *testing.T) {
		_, client := newMiniredis(t)
		calls := 0
		cached := NewCachedSource("mysql", countingSource(t, &calls), NewSnapshotCache(client, time.Minute), 0, logger.Nop())

		for i := 0; i < 3; i++ {
			_, err := cached.Load(ctx)
			require.NoError(t, err)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("命中时以配置的每页数量为准", func(t *testing.T) {
		_, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)
		require.NoError(t, cache.Set(ctx, "mysql", sampleCatalog(t)))

		calls := 0
		cached := NewCachedSource("mysql", countingSource(t, &calls), cache, 5, logger.Nop())

		c, err := cached.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, calls)
		assert.Equal(t, 5, c.PageSize())
	})

	t.Run("删除快照后重新读取数据源", func(t *testing.T) {
		_, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)
		calls := 0
		cached := NewCachedSource("mysql", countingSource(t, &calls), cache, 0, logger.Nop())

		_, err := cached.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, cache.Delete(ctx, "mysql"))
		_, err = cached.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("不同数据源的快照互不影响", func(t *testing.T) {
		mr, client := newMiniredis(t)
		cache := NewSnapshotCache(client, time.Minute)
		calls := 0

		_, err := NewCachedSource("embedded", countingSource(t, &calls), cache, 0, logger.Nop()).Load(ctx)
		require.NoError(t, err)
		_, err = NewCachedSource("file:books.json", countingSource(t, &calls), cache, 0, logger.Nop()).Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
		assert.True(t, mr.Exists("catalog:snapshot:embedded"))
		assert.True(t, mr.Exists("catalog:snapshot:file:books.json"))
	})
}
