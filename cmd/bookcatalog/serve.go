package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

// runServe 启动HTTP服务
// 流程：配置 → 链路追踪 → 依赖组装 → 监听 → 收到SIGINT/SIGTERM后优雅关闭
func runServe(cmd *cobra.Command, flags *rootFlags) error {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return err
	}
	defer closeLogger(log)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorURL)
		if err != nil {
			return fmt.Errorf("初始化链路追踪失败: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Error(err, "关闭链路追踪失败")
			}
		}()
	}

	srv, cleanup, err := initializeServer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{
			"addr":    srv.Addr,
			"mode":    cfg.Server.Mode,
			"source":  cfg.Catalog.Source,
			"metrics": cfg.Metrics.Enabled,
		}).Info("HTTP服务启动")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP服务启动失败: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("正在优雅关闭服务")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器强制关闭: %w", err)
	}
	log.Info("服务已关闭")
	return nil
}
