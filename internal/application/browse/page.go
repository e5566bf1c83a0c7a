package browse

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// ErrInvalidPage 页码必须从1开始
var ErrInvalidPage = apperrors.ErrInvalidParams.WithDetail("page必须大于等于1")

// PageQuery 无状态分页查询（HTTP API使用）
// 客户端每次请求都带上完整的筛选条件和页码，服务端不保存浏览状态
type PageQuery struct {
	Criteria catalog.FilterCriteria
	Page     catalog.PageCursor
}

// PageResult 单页结果
type PageResult struct {
	Items            []PreviewItem
	Page             catalog.PageCursor
	PageSize         int
	Total            int
	TotalPages       int
	Remaining        int
	ShowMoreLabel    string
	ShowMoreDisabled bool
	ShowEmptyMessage bool
}

// Page 返回第q.Page页的图书
// 第1页等价于一次Search，后续页等价于在同一筛选结果上连续ShowMore；页码越界时返回空列表
func (s *Service) Page(ctx context.Context, q PageQuery) (PageResult, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "browse.Page")
	defer span.End()

	if q.Page < catalog.FirstPage {
		tracing.RecordError(span, ErrInvalidPage)
		return PageResult{}, ErrInvalidPage
	}

	var (
		st   State
		view View
		err  error
	)
	if q.Page == catalog.FirstPage {
		st, view, err = s.Search(ctx, State{}, q.Criteria)
		if err != nil {
			return PageResult{}, err
		}
	} else {
		matches, err := catalog.Filter(s.catalog, q.Criteria)
		if err != nil {
			tracing.RecordError(span, err)
			return PageResult{}, err
		}
		st = State{Criteria: q.Criteria, Matches: matches, Page: q.Page}
		view = s.render(st, true)
		view.ShowEmptyMessage = len(matches) == 0
	}

	return PageResult{
		Items:            view.Items,
		Page:             st.Page,
		PageSize:         s.paginator.PageSize(),
		Total:            view.Total,
		TotalPages:       s.paginator.TotalPages(st.Matches),
		Remaining:        view.Remaining,
		ShowMoreLabel:    view.ShowMoreLabel,
		ShowMoreDisabled: view.ShowMoreDisabled,
		ShowEmptyMessage: view.ShowEmptyMessage,
	}, nil
}
