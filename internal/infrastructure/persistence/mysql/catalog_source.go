package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// catalogSource 从MySQL加载图书目录
// 设计说明：
// 1. 实现domain/catalog/source.go定义的Source接口
// 2. 启动时一次性读取四张表，在内存中组装目录
// 3. 引用完整性（作者、分类是否存在）交给catalog.NewCatalog校验
type catalogSource struct {
	db       *gorm.DB
	pageSize int
}

// NewCatalogSource 创建MySQL目录数据源
// pageSize<=0时使用catalog.DefaultPageSize
func NewCatalogSource(db *gorm.DB, pageSize int) catalog.Source {
	return &catalogSource{db: db, pageSize: pageSize}
}

// Load 实现catalog.Source接口
func (s *catalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	db := s.db.WithContext(ctx)

	var authors []AuthorModel
	if err := db.Order("position ASC").Find(&authors).Error; err != nil {
		return nil, dbError(err, "查询作者失败")
	}

	var genres []GenreModel
	if err := db.Order("position ASC").Find(&genres).Error; err != nil {
		return nil, dbError(err, "查询分类失败")
	}

	var books []BookModel
	if err := db.Order("position ASC").Find(&books).Error; err != nil {
		return nil, dbError(err, "查询图书失败")
	}

	var links []BookGenreModel
	if err := db.Order("book_id ASC, position ASC").Find(&links).Error; err != nil {
		return nil, dbError(err, "查询图书分类失败")
	}

	return assemble(authors, genres, books, links, s.pageSize)
}

// assemble 把数据库记录组装为领域目录
func assemble(authors []AuthorModel, genres []GenreModel, books []BookModel, links []BookGenreModel, pageSize int) (*catalog.Catalog, error) {
	genresByBook := make(map[string][]string, len(books))
	for _, l := range links {
		genresByBook[l.BookID] = append(genresByBook[l.BookID], l.GenreID)
	}

	entities := make([]catalog.Book, len(books))
	for i := range books {
		entities[i] = toBookEntity(&books[i], genresByBook[books[i].ID])
	}

	authorEntries := make([]catalog.Entry, len(authors))
	for i, a := range authors {
		authorEntries[i] = catalog.Entry{ID: a.ID, Name: a.Name}
	}
	genreEntries := make([]catalog.Entry, len(genres))
	for i, g := range genres {
		genreEntries[i] = catalog.Entry{ID: g.ID, Name: g.Name}
	}

	return catalog.NewCatalog(entities, authorEntries, genreEntries, pageSize)
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel, genres []string) catalog.Book {
	return catalog.Book{
		ID:          model.ID,
		Title:       model.Title,
		Image:       model.Image,
		Author:      model.AuthorID,
		Genres:      genres,
		Published:   model.Published,
		Description: model.Description,
	}
}

// dbError 底层错误只进日志，调用方看到的是统一的数据库错误
func dbError(err error, message string) *apperrors.AppError {
	return apperrors.ErrDatabaseError.WithCause(fmt.Errorf("%s: %w", message, err))
}
