// Package browse 图书浏览应用服务
//
// 设计说明：
// 1. 把"搜索、显示更多、查看详情、保存设置"组织成命令：(State, 参数) → (State, View)
// 2. 表现层（TUI、HTTP、CLI）只调用这里的命令，不直接调用筛选和分页
// 3. 每个命令记录一个trace span和对应的业务指标
package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/domain/theme"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "bookcatalog/browse"

// Service 浏览服务
// 只持有只读的目录和分页器，可以被多个goroutine同时使用
type Service struct {
	catalog   *catalog.Catalog
	paginator *catalog.Paginator
	log       *logger.Logger
}

// NewService 创建浏览服务
// 目录的每页数量非法时返回catalog.ErrInvalidPageSize
func NewService(c *catalog.Catalog, log *logger.Logger) (*Service, error) {
	paginator, err := catalog.NewPaginator(c.PageSize())
	if err != nil {
		return nil, err
	}

	metrics.InitMetrics()
	metrics.SetGauge(metrics.CatalogBooks, float64(c.Len()))

	return &Service{catalog: c, paginator: paginator, log: log}, nil
}

// Catalog 返回服务使用的目录
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// PageSize 每页数量
func (s *Service) PageSize() int {
	return s.paginator.PageSize()
}

// Start 初始状态：全部图书、第一页、日间主题
func (s *Service) Start(ctx context.Context) (State, View) {
	_, span := tracing.StartSpan(ctx, tracerName, "browse.Start")
	defer span.End()

	st := State{
		Criteria: catalog.AllBooks(),
		Matches:  catalog.MatchSet(s.catalog.Books()),
		Page:     catalog.FirstPage,
		Theme:    theme.Day,
	}
	return st, s.render(st, false)
}

// Search 提交搜索表单
// 筛选条件不完整时返回错误，旧状态保持不变
func (s *Service) Search(ctx context.Context, st State, criteria catalog.FilterCriteria) (State, View, error) {
	_, span := tracing.StartSpan(ctx, tracerName, "browse.Search")
	defer span.End()

	matches, err := catalog.Filter(s.catalog, criteria)
	if err != nil {
		tracing.RecordError(span, err)
		return st, View{}, err
	}

	result := "hit"
	if len(matches) == 0 {
		result = "empty"
	}
	metrics.IncCounterVec(metrics.SearchesTotal, map[string]string{"result": result})
	metrics.ObserveHistogram(metrics.SearchMatches, float64(len(matches)))

	st.Criteria = criteria
	st.Matches = matches
	st.Page = catalog.FirstPage

	view := s.render(st, false)
	view.ShowEmptyMessage = len(matches) == 0
	view.ScrollTop = true
	view.CloseOverlay = OverlaySearch

	s.log.WithFields(map[string]any{
		"title":   criteria.Title,
		"author":  criteria.Author,
		"genre":   criteria.Genre,
		"matches": len(matches),
	}).Debug("search")

	return st, view, nil
}

// ShowMore 显示下一页
// 没有剩余图书时不推进页码，返回不含新条目的视图
func (s *Service) ShowMore(ctx context.Context, st State) (State, View) {
	_, span := tracing.StartSpan(ctx, tracerName, "browse.ShowMore")
	defer span.End()

	if s.paginator.Remaining(st.Matches, st.Page) == 0 {
		view := s.counts(st)
		view.Items = []PreviewItem{}
		view.Append = true
		return st, view
	}

	metrics.IncCounter(metrics.ShowMoreTotal)

	st.Page = st.Page.Advance()
	return st, s.render(st, true)
}

// Select 点击预览卡片
// 找不到图书时返回catalog.ErrBookNotFound，调用方应当保持详情浮层关闭
func (s *Service) Select(ctx context.Context, id string) (Detail, error) {
	_, span := tracing.StartSpan(ctx, tracerName, "browse.Select")
	defer span.End()

	book, err := s.catalog.Resolve(id)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			metrics.IncCounterVec(metrics.PreviewResolvesTotal, map[string]string{"result": "not_found"})
		}
		tracing.RecordError(span, err)
		return Detail{}, err
	}
	metrics.IncCounterVec(metrics.PreviewResolvesTotal, map[string]string{"result": "found"})

	return Detail{
		ID:          book.ID,
		Image:       book.Image,
		Title:       book.Title,
		Subtitle:    fmt.Sprintf("%s (%d)", s.authorName(book.Author), book.PublishedYear()),
		Description: book.Description,
	}, nil
}

// SaveSettings 保存设置（主题），只有"night"是夜间主题，其余都按日间处理
func (s *Service) SaveSettings(ctx context.Context, st State, name string) (State, Settings) {
	_, span := tracing.StartSpan(ctx, tracerName, "browse.SaveSettings")
	defer span.End()

	st.Theme = theme.Parse(name)
	return st, Settings{
		Theme:        st.Theme,
		Palette:      st.Theme.Palette(),
		CloseOverlay: OverlaySettings,
	}
}

// Options 作者、分类下拉选项
func (s *Service) Options() Options {
	return Options{
		Authors: s.catalog.AuthorOptions(),
		Genres:  s.catalog.GenreOptions(),
	}
}

// Preview 把图书转换为预览卡片
func (s *Service) Preview(books []catalog.Book) []PreviewItem {
	items := make([]PreviewItem, len(books))
	for i, b := range books {
		items[i] = PreviewItem{
			ID:     b.ID,
			Title:  b.Title,
			Image:  b.Image,
			Author: s.authorName(b.Author),
		}
	}
	return items
}

// render 生成视图：append=true时只包含当前页，否则包含第1页到当前页的全部条目
func (s *Service) render(st State, appendPage bool) View {
	view := s.counts(st)
	view.Append = appendPage
	if appendPage {
		view.Items = s.Preview(s.paginator.PageSlice(st.Matches, st.Page))
	} else {
		view.Items = s.Preview(s.paginator.Revealed(st.Matches, st.Page))
	}
	return view
}

// counts 每个视图都携带最新的剩余数量
func (s *Service) counts(st State) View {
	remaining := s.paginator.Remaining(st.Matches, st.Page)
	return View{
		Total:            len(st.Matches),
		Remaining:        remaining,
		ShowMoreLabel:    ShowMoreLabel(remaining),
		ShowMoreDisabled: remaining <= 0,
	}
}

func (s *Service) authorName(id string) string {
	if name, ok := s.catalog.AuthorName(id); ok {
		return name
	}
	return id
}
