package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/internal/application/browse"
	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/domain/theme"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// CatalogHandler 图书目录HTTP处理器
// 设计说明：
// 1. 无状态：客户端每次请求都带上筛选条件和页码
// 2. 错误统一通过response.Error返回（HTTP 200 + 业务错误码）
type CatalogHandler struct {
	service *browse.Service
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(service *browse.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListBooks 搜索图书并分页
// @Summary      搜索图书
// @Description  按书名（不区分大小写的子串）、作者、分类筛选，返回指定页的预览卡片。title、author、genre三个参数必须同时提供，author/genre为any表示不限
// @Tags         图书
// @Produce      json
// @Param        title   query string true  "书名关键词（可为空）"
// @Param        author  query string true  "作者ID或any"
// @Param        genre   query string true  "分类ID或any"
// @Param        page    query int    false "页码（从1开始）" default(1)
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Failure      200 {object} response.Response "40903 筛选条件不完整 / 40901 参数格式错误"
// @Router       /api/v1/books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	// 1. 参数绑定（页码）
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithDetail(err.Error()))
		return
	}
	if req.Page == 0 {
		req.Page = int(catalog.FirstPage)
	}

	// 2. 筛选条件必须完整，不做默认值填充
	criteria, err := catalog.ParseCriteria(c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 调用应用层
	res, err := h.service.Page(c.Request.Context(), browse.PageQuery{
		Criteria: criteria,
		Page:     catalog.PageCursor(req.Page),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookListResponse(res))
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  点击预览卡片时调用，返回详情浮层内容
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *CatalogHandler) GetBook(c *gin.Context) {
	detail, err := h.service.Select(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookDetailResponse(detail))
}

// GetOptions 作者、分类下拉选项
// @Summary      下拉选项
// @Description  第一项固定为 All Authors / All Genres（value=any），其余按数据集顺序
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.OptionsResponse}
// @Router       /api/v1/options [get]
func (h *CatalogHandler) GetOptions(c *gin.Context) {
	opts := h.service.Options()
	response.Success(c, &dto.OptionsResponse{
		Authors: opts.Authors,
		Genres:  opts.Genres,
	})
}

// GetTheme 主题CSS变量
// @Summary      主题配色
// @Description  night返回夜间配色，其他任意值返回日间配色
// @Tags         设置
// @Produce      json
// @Param        name path string true "主题名称（day/night）"
// @Success      200 {object} response.Response{data=dto.ThemeResponse}
// @Router       /api/v1/themes/{name} [get]
func (h *CatalogHandler) GetTheme(c *gin.Context) {
	response.Success(c, dto.NewThemeResponse(theme.Parse(c.Param("name"))))
}
