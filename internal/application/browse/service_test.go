package browse

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/domain/theme"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// newService 5本书、每页2本：Dune, Children of Dune, The Hobbit, Emma, Foundation
func newService(t *testing.T) *Service {
	t.Helper()
	year := func(y int) time.Time { return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC) }
	books := []catalog.Book{
		{ID: "1", Title: "Dune", Author: "herbert", Genres: []string{"scifi"}, Published: year(1965), Image: "dune.jpg", Description: "Desert planet."},
		{ID: "2", Title: "Children of Dune", Author: "herbert", Genres: []string{"scifi"}, Published: year(1976)},
		{ID: "3", Title: "The Hobbit", Author: "tolkien", Genres: []string{"fantasy"}, Published: year(1937)},
		{ID: "4", Title: "Emma", Author: "austen", Genres: []string{"romance"}, Published: year(1815)},
		{ID: "5", Title: "Foundation", Author: "asimov", Genres: []string{"scifi"}, Published: year(1951)},
	}
	authors := []catalog.Entry{
		{ID: "herbert", Name: "Frank Herbert"},
		{ID: "tolkien", Name: "J.R.R. Tolkien"},
		{ID: "austen", Name: "Jane Austen"},
		{ID: "asimov", Name: "Isaac Asimov"},
	}
	genres := []catalog.Entry{
		{ID: "scifi", Name: "Science Fiction"},
		{ID: "fantasy", Name: "Fantasy"},
		{ID: "romance", Name: "Romance"},
	}

	c, err := catalog.NewCatalog(books, authors, genres, 2)
	require.NoError(t, err)
	s, err := NewService(c, logger.Nop())
	require.NoError(t, err)
	return s
}

func ids(items []PreviewItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestNewService(t *testing.T) {
	t.Run("每页数量非法", func(t *testing.T) {
		c, err := catalog.NewCatalog(nil, nil, nil, -1)
		require.NoError(t, err)
		_, err = NewService(c, logger.Nop())
		assert.ErrorIs(t, err, catalog.ErrInvalidPageSize)
	})
}

func TestStart(t *testing.T) {
	s := newService(t)
	st, view := s.Start(context.Background())

	assert.Equal(t, catalog.AllBooks(), st.Criteria)
	assert.Equal(t, catalog.FirstPage, st.Page)
	assert.Equal(t, theme.Day, st.Theme)
	assert.Len(t, st.Matches, 5)

	assert.Equal(t, []string{"1", "2"}, ids(view.Items))
	assert.False(t, view.Append)
	assert.Equal(t, 5, view.Total)
	assert.Equal(t, 3, view.Remaining)
	assert.Equal(t, "Show more (3)", view.ShowMoreLabel)
	assert.False(t, view.ShowMoreDisabled)
	assert.Equal(t, "Frank Herbert", view.Items[0].Author)
}

func TestShowMore(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	st, _ := s.Start(ctx)

	steps := []struct {
		items     []string
		page      catalog.PageCursor
		remaining int
		disabled  bool
	}{
		{[]string{"3", "4"}, 2, 1, false},
		{[]string{"5"}, 3, 0, true},
		// 没有剩余时不推进页码
		{[]string{}, 3, 0, true},
	}

	for i, step := range steps {
		t.Run(fmt.Sprintf("第%d次显示更多", i+1), func(t *testing.T) {
			var view View
			st, view = s.ShowMore(ctx, st)

			assert.Equal(t, step.items, ids(view.Items))
			assert.True(t, view.Append)
			assert.Equal(t, step.page, st.Page)
			assert.Equal(t, step.remaining, view.Remaining)
			assert.Equal(t, ShowMoreLabel(step.remaining), view.ShowMoreLabel)
			assert.Equal(t, step.disabled, view.ShowMoreDisabled)
		})
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("搜索重置页码并关闭搜索浮层", func(t *testing.T) {
		s := newService(t)
		st, _ := s.Start(ctx)
		st, _ = s.ShowMore(ctx, st)
		require.Equal(t, catalog.PageCursor(2), st.Page)

		criteria := catalog.FilterCriteria{Title: "  dune ", Author: catalog.Any, Genre: "scifi"}
		st, view, err := s.Search(ctx, st, criteria)
		require.NoError(t, err)

		assert.Equal(t, catalog.FirstPage, st.Page)
		assert.Equal(t, criteria, st.Criteria)
		assert.Equal(t, []string{"1", "2"}, st.Matches.IDs())
		assert.Equal(t, []string{"1", "2"}, ids(view.Items))
		assert.False(t, view.Append)
		assert.True(t, view.ScrollTop)
		assert.Equal(t, OverlaySearch, view.CloseOverlay)
		assert.False(t, view.ShowEmptyMessage)
		assert.Equal(t, 0, view.Remaining)
		assert.True(t, view.ShowMoreDisabled)
	})

	t.Run("没有结果时显示提示", func(t *testing.T) {
		s := newService(t)
		st, _ := s.Start(ctx)

		st, view, err := s.Search(ctx, st, catalog.FilterCriteria{Title: "", Author: "tolkien", Genre: "scifi"})
		require.NoError(t, err)
		assert.Empty(t, st.Matches)
		assert.Empty(t, view.Items)
		assert.True(t, view.ShowEmptyMessage)
		assert.Equal(t, "Show more (0)", view.ShowMoreLabel)
		assert.True(t, view.ShowMoreDisabled)
	})

	t.Run("条件不完整时状态不变", func(t *testing.T) {
		s := newService(t)
		st, _ := s.Start(ctx)
		st, _ = s.ShowMore(ctx, st)

		next, _, err := s.Search(ctx, st, catalog.FilterCriteria{Title: "dune", Author: catalog.Any})
		assert.ErrorIs(t, err, catalog.ErrInvalidCriteria)
		assert.Equal(t, st, next)
	})
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	t.Run("返回详情", func(t *testing.T) {
		detail, err := s.Select(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, Detail{
			ID:          "1",
			Image:       "dune.jpg",
			Title:       "Dune",
			Subtitle:    "Frank Herbert (1965)",
			Description: "Desert planet.",
		}, detail)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := s.Select(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, catalog.ErrBookNotFound)
	})
}

func TestSaveSettings(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	st, _ := s.Start(ctx)

	tests := []struct {
		input string
		want  theme.Name
	}{
		{"night", theme.Night},
		{"day", theme.Day},
		{"dusk", theme.Day},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			next, settings := s.SaveSettings(ctx, st, tt.input)
			assert.Equal(t, tt.want, next.Theme)
			assert.Equal(t, tt.want, settings.Theme)
			assert.Equal(t, tt.want.Palette(), settings.Palette)
			assert.Equal(t, OverlaySettings, settings.CloseOverlay)
			// 主题不影响浏览进度
			assert.Equal(t, st.Matches, next.Matches)
			assert.Equal(t, st.Page, next.Page)
		})
	}
}

func TestOptions(t *testing.T) {
	opts := newService(t).Options()

	require.Len(t, opts.Authors, 5)
	assert.Equal(t, catalog.Option{Value: catalog.Any, Label: catalog.AllAuthorsLabel}, opts.Authors[0])
	assert.Equal(t, catalog.Option{Value: "herbert", Label: "Frank Herbert"}, opts.Authors[1])

	require.Len(t, opts.Genres, 4)
	assert.Equal(t, catalog.Option{Value: catalog.Any, Label: catalog.AllGenresLabel}, opts.Genres[0])
	assert.Equal(t, "romance", opts.Genres[3].Value)
}

func TestPage(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	all := catalog.AllBooks()

	tests := []struct {
		name      string
		page      catalog.PageCursor
		items     []string
		remaining int
	}{
		{"第一页", 1, []string{"1", "2"}, 3},
		{"第二页", 2, []string{"3", "4"}, 1},
		{"最后一页", 3, []string{"5"}, 0},
		{"越界返回空列表", 9, []string{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Page(ctx, PageQuery{Criteria: all, Page: tt.page})
			require.NoError(t, err)
			assert.Equal(t, tt.items, ids(res.Items))
			assert.Equal(t, tt.remaining, res.Remaining)
			assert.Equal(t, 5, res.Total)
			assert.Equal(t, 3, res.TotalPages)
			assert.Equal(t, 2, res.PageSize)
			assert.Equal(t, tt.page, res.Page)
		})
	}

	t.Run("页码小于1", func(t *testing.T) {
		_, err := s.Page(ctx, PageQuery{Criteria: all, Page: 0})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("条件不完整", func(t *testing.T) {
		_, err := s.Page(ctx, PageQuery{Criteria: catalog.FilterCriteria{Author: catalog.Any}, Page: 2})
		assert.ErrorIs(t, err, catalog.ErrInvalidCriteria)
	})

	t.Run("空结果", func(t *testing.T) {
		res, err := s.Page(ctx, PageQuery{Criteria: catalog.FilterCriteria{Title: "zzz", Author: catalog.Any, Genre: catalog.Any}, Page: 1})
		require.NoError(t, err)
		assert.True(t, res.ShowEmptyMessage)
		assert.Equal(t, 0, res.TotalPages)
	})
}

func TestShowMoreLabel(t *testing.T) {
	assert.Equal(t, "Show more (36)", ShowMoreLabel(36))
	assert.Equal(t, "Show more (0)", ShowMoreLabel(0))
	assert.Equal(t, "Show more (0)", ShowMoreLabel(-4))
}
