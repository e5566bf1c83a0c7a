package main

import (
	"context"
	"net/http"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/dataset"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// provideLogger 按log配置创建日志器
func provideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideCatalogSource 按catalog.source选择数据源
// 设计说明：
// 1. embedded/file直接读数据集，mysql读四张目录表
// 2. redis.enabled=true时外面再包一层快照缓存，Redis连不上只告警，不影响启动
// 3. 返回的cleanup按创建的逆序关闭连接
func provideCatalogSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (catalog.Source, func(), error) {
	var (
		source   catalog.Source
		closers  []func()
		pageSize = cfg.Catalog.PageSize
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Catalog.Source {
	case config.SourceFile:
		source = dataset.NewFileSource(cfg.Catalog.Path, pageSize)
	case config.SourceMySQL:
		db, err := mysql.NewDB(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := mysql.Close(db); err != nil {
				log.Error(err, "关闭数据库连接失败")
			}
		})
		source = mysql.NewCatalogSource(db, pageSize)
	default:
		source = dataset.NewEmbeddedSource(pageSize)
	}

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(ctx, cfg, log)
		if err != nil {
			log.WithFields(map[string]any{"addr": cfg.Redis.Addr()}).Warn("Redis不可用，跳过目录快照缓存")
			return source, cleanup, nil
		}
		closers = append(closers, func() { _ = client.Close() })

		cache := redis.NewSnapshotCache(client, cfg.Redis.SnapshotTTL)
		source = redis.NewCachedSource(snapshotName(cfg), source, cache, pageSize, log)
	}

	return source, cleanup, nil
}

// snapshotName 快照缓存名：不同数据文件的快照互不覆盖
func snapshotName(cfg *config.Config) string {
	if cfg.Catalog.Source == config.SourceFile {
		return config.SourceFile + ":" + cfg.Catalog.Path
	}
	return cfg.Catalog.Source
}

// provideCatalog 启动时加载一次目录，之后只读
func provideCatalog(ctx context.Context, source catalog.Source, log *logger.Logger) (*catalog.Catalog, error) {
	c, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]any{
		"books":     c.Len(),
		"authors":   len(c.Authors()),
		"genres":    len(c.Genres()),
		"page_size": c.PageSize(),
	}).Info("目录加载完成")
	return c, nil
}

// provideServer 创建HTTP服务器
func provideServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
