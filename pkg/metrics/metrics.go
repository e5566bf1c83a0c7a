// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
//   - HTTP指标：请求总数、耗时分布、正在处理的请求数
//   - 目录指标：加载的图书数、搜索次数与命中数、"显示更多"次数、预览解析结果
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
//
//	metrics.IncCounterVec(metrics.SearchesTotal, map[string]string{"result": "hit"})
//	metrics.ObserveHistogram(metrics.SearchMatches, float64(len(matches)))
//
// # 命名规范
//
//   - Counter以`_total`结尾
//   - Histogram以单位结尾（`_seconds`），无单位的分布直接用名词（`catalog_search_matches`）
//   - 标签只使用有限取值（result、method、status），不要把图书ID作为标签
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// once 防止重复注册（promauto重复注册会panic）
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板，不是原始URL）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 目录业务指标

	// CatalogBooks 当前目录中的图书数量（Gauge）
	CatalogBooks prometheus.Gauge

	// SearchesTotal 搜索次数（Counter）
	// 标签：result（hit/empty）
	SearchesTotal *prometheus.CounterVec

	// SearchMatches 每次搜索命中的图书数量分布（Histogram）
	SearchMatches prometheus.Histogram

	// ShowMoreTotal "显示更多"次数（Counter）
	ShowMoreTotal prometheus.Counter

	// PreviewResolvesTotal 预览点击解析次数（Counter）
	// 标签：result（found/not_found）
	PreviewResolvesTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标
// 可以重复调用，只有第一次生效
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 目录全部在内存中，请求通常在毫秒级完成
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogBooks = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_books_loaded",
				Help: "目录中的图书数量",
			},
		)

		SearchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_searches_total",
				Help: "搜索次数",
			},
			[]string{"result"},
		)

		SearchMatches = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_search_matches",
				Help:    "每次搜索命中的图书数量",
				Buckets: []float64{0, 1, 5, 10, 36, 100, 500, 1000},
			},
		)

		ShowMoreTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_show_more_total",
				Help: "显示更多次数",
			},
		)

		PreviewResolvesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_preview_resolves_total",
				Help: "预览点击解析次数",
			},
			[]string{"result"},
		)
	})
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
