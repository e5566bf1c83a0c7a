//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/bookcatalog` 重新生成wire_gen.go

package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/bookcatalog/internal/application/browse"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// catalogSet 数据源 → 目录 → 浏览服务
var catalogSet = wire.NewSet(
	provideCatalogSource,
	provideCatalog,
	browse.NewService,
)

// httpSet 处理器 → 路由 → HTTP服务器
var httpSet = wire.NewSet(
	handler.NewCatalogHandler,
	router.New,
	wire.Bind(new(http.Handler), new(*gin.Engine)),
	provideServer,
)

// initializeService 终端界面和查询命令使用
func initializeService(ctx context.Context, cfg *config.Config, log *logger.Logger) (*browse.Service, func(), error) {
	wire.Build(catalogSet)
	return nil, nil, nil
}

// initializeServer serve命令使用
func initializeServer(ctx context.Context, cfg *config.Config, log *logger.Logger) (*http.Server, func(), error) {
	wire.Build(catalogSet, httpSet)
	return nil, nil, nil
}
