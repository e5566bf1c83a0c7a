// Package router HTTP路由注册
//
// @title        Book Catalog API
// @version      1.0
// @description  图书目录浏览API：搜索、分页、详情、主题
// @BasePath     /
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	_ "github.com/xiebiao/bookcatalog/internal/interface/http/docs"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// New 创建并配置Gin引擎
// 中间件顺序：Recovery → 日志 → 链路追踪 → 指标 → CORS
func New(cfg *config.Config, log *logger.Logger, catalogHandler *handler.CatalogHandler) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}
	r.Use(middleware.CORS(cfg.CORS))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Swagger文档：http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.GET("", catalogHandler.ListBooks)
			books.GET("/:id", catalogHandler.GetBook)
		}
		v1.GET("/options", catalogHandler.GetOptions)
		v1.GET("/themes/:name", catalogHandler.GetTheme)
	}

	r.NoRoute(response.NotFound)

	return r
}
