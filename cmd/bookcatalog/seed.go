package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/dataset"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
)

type seedOptions struct {
	file string
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a dataset into MySQL, replacing the stored catalog",
		Long: `Load a JSON or YAML dataset (or the bundled one when --file is omitted)
into the MySQL catalog tables. Existing rows are replaced in a single transaction
and the cached MySQL snapshot is dropped so the next start reads the new data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Dataset file (.json, .yaml); defaults to the bundled dataset")

	return cmd
}

// runSeed 数据集 → MySQL
// 设计说明：
// 1. 表结构总是先迁移，seed不依赖database.auto_migrate
// 2. 写入成功后删除mysql快照，避免下次启动读到旧缓存
func runSeed(cmd *cobra.Command, flags *rootFlags, opts *seedOptions) error {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return err
	}
	defer closeLogger(log)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var source catalog.Source = dataset.NewEmbeddedSource(cfg.Catalog.PageSize)
	if opts.file != "" {
		source = dataset.NewFileSource(opts.file, cfg.Catalog.PageSize)
	}
	c, err := source.Load(ctx)
	if err != nil {
		return err
	}

	db, err := mysql.NewDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := mysql.Close(db); err != nil {
			log.Error(err, "关闭数据库连接失败")
		}
	}()

	if err := mysql.AutoMigrate(db); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	if err := mysql.NewCatalogWriter(db).Replace(ctx, c); err != nil {
		return err
	}

	if cfg.Redis.Enabled {
		if client, err := redis.NewClient(ctx, cfg, log); err != nil {
			log.Warn("Redis不可用，未清理目录快照")
		} else {
			defer client.Close()
			cache := redis.NewSnapshotCache(client, cfg.Redis.SnapshotTTL)
			if err := cache.Delete(ctx, config.SourceMySQL); err != nil {
				log.Error(err, "清理目录快照失败")
			}
		}
	}

	log.WithFields(map[string]any{
		"books":   c.Len(),
		"authors": len(c.Authors()),
		"genres":  len(c.Genres()),
	}).Info("目录已写入MySQL")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ seeded %d books, %d authors, %d genres\n", c.Len(), len(c.Authors()), len(c.Genres()))
	return nil
}
