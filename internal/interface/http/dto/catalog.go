package dto

import (
	"github.com/xiebiao/bookcatalog/internal/application/browse"
	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/domain/theme"
)

// ListBooksRequest HTTP图书列表请求
// title、author、genre三个参数必须同时出现（title可以为空字符串），由catalog.ParseCriteria校验
type ListBooksRequest struct {
	Title  string `form:"title" example:"dune"`
	Author string `form:"author" example:"any"`
	Genre  string `form:"genre" example:"scifi"`
	Page   int    `form:"page" binding:"omitempty,min=1" example:"1"`
}

// PreviewItem 预览卡片
type PreviewItem struct {
	ID     string `json:"id" example:"6f1c4a52-1d0b-5a34-9d6c-3b8f7f0e2a11"`
	Title  string `json:"title" example:"Dune"`
	Image  string `json:"image" example:"https://covers.openlibrary.org/b/id/8100014-L.jpg"`
	Author string `json:"author" example:"Frank Herbert"`
}

// ShowMore "显示更多"按钮状态
type ShowMore struct {
	Label    string `json:"label" example:"Show more (3)"`
	Disabled bool   `json:"disabled" example:"false"`
}

// BookListResponse HTTP图书列表响应
type BookListResponse struct {
	Items      []PreviewItem `json:"items"`
	Page       int           `json:"page" example:"1"`
	PageSize   int           `json:"page_size" example:"36"`
	Total      int           `json:"total" example:"39"`
	TotalPages int           `json:"total_pages" example:"2"`
	Remaining  int           `json:"remaining" example:"3"`
	ShowMore   ShowMore      `json:"show_more"`
	Empty      bool          `json:"empty" example:"false"` // 没有匹配结果时为true
}

// BookDetailResponse HTTP图书详情响应
type BookDetailResponse struct {
	ID          string `json:"id" example:"6f1c4a52-1d0b-5a34-9d6c-3b8f7f0e2a11"`
	Image       string `json:"image" example:"https://covers.openlibrary.org/b/id/8100014-L.jpg"`
	Title       string `json:"title" example:"Dune"`
	Subtitle    string `json:"subtitle" example:"Frank Herbert (1965)"`
	Description string `json:"description" example:"On the desert planet Arrakis..."`
}

// OptionsResponse 下拉选项
type OptionsResponse struct {
	Authors []catalog.Option `json:"authors"`
	Genres  []catalog.Option `json:"genres"`
}

// ThemeResponse 主题CSS变量
type ThemeResponse struct {
	Name      string            `json:"name" example:"night"`
	Variables map[string]string `json:"variables"`
}

// NewBookListResponse 应用层分页结果 → HTTP响应
func NewBookListResponse(res browse.PageResult) *BookListResponse {
	items := make([]PreviewItem, len(res.Items))
	for i, it := range res.Items {
		items[i] = PreviewItem(it)
	}
	return &BookListResponse{
		Items:      items,
		Page:       int(res.Page),
		PageSize:   res.PageSize,
		Total:      res.Total,
		TotalPages: res.TotalPages,
		Remaining:  res.Remaining,
		ShowMore: ShowMore{
			Label:    res.ShowMoreLabel,
			Disabled: res.ShowMoreDisabled,
		},
		Empty: res.ShowEmptyMessage,
	}
}

// NewBookDetailResponse 应用层详情 → HTTP响应
func NewBookDetailResponse(d browse.Detail) *BookDetailResponse {
	return &BookDetailResponse{
		ID:          d.ID,
		Image:       d.Image,
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Description: d.Description,
	}
}

// NewThemeResponse 主题 → HTTP响应
func NewThemeResponse(name theme.Name) *ThemeResponse {
	return &ThemeResponse{
		Name:      string(name),
		Variables: name.Palette().CSSVariables(),
	}
}
