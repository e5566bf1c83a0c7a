package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
)

// CatalogWriter 把目录整体写入MySQL（seed命令使用）
// 写入是全量替换：先清空四张表，再按目录顺序插入，全部在一个事务中完成
type CatalogWriter struct {
	db *gorm.DB
	tx *TxManager
}

// NewCatalogWriter 创建目录写入器
func NewCatalogWriter(db *gorm.DB) *CatalogWriter {
	return &CatalogWriter{db: db, tx: NewTxManager(db)}
}

// Replace 用目录c替换数据库中的全部数据
func (w *CatalogWriter) Replace(ctx context.Context, c *catalog.Catalog) error {
	authors, genres, books, links := toModels(c)

	return w.tx.Transaction(ctx, func(ctx context.Context) error {
		db := getDB(ctx, w.db)

		// 先删关联表，再删主表
		for _, model := range []any{&BookGenreModel{}, &BookModel{}, &GenreModel{}, &AuthorModel{}} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return dbError(err, "清空目录失败")
			}
		}

		if err := insert(db, authors, "写入作者失败"); err != nil {
			return err
		}
		if err := insert(db, genres, "写入分类失败"); err != nil {
			return err
		}
		if err := insert(db, books, "写入图书失败"); err != nil {
			return err
		}
		return insert(db, links, "写入图书分类失败")
	})
}

func insert[T any](db *gorm.DB, rows []T, message string) error {
	if len(rows) == 0 {
		return nil
	}
	if err := db.CreateInBatches(rows, 200).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateBookID
		}
		return dbError(err, message)
	}
	return nil
}

// toModels 领域目录 → GORM模型（Position按目录顺序从0开始）
func toModels(c *catalog.Catalog) ([]AuthorModel, []GenreModel, []BookModel, []BookGenreModel) {
	authors := make([]AuthorModel, 0, len(c.Authors()))
	for i, a := range c.Authors() {
		authors = append(authors, AuthorModel{ID: a.ID, Name: a.Name, Position: i})
	}

	genres := make([]GenreModel, 0, len(c.Genres()))
	for i, g := range c.Genres() {
		genres = append(genres, GenreModel{ID: g.ID, Name: g.Name, Position: i})
	}

	var links []BookGenreModel
	books := make([]BookModel, 0, c.Len())
	for i, b := range c.Books() {
		books = append(books, BookModel{
			ID:          b.ID,
			Title:       b.Title,
			Image:       b.Image,
			AuthorID:    b.Author,
			Published:   b.Published,
			Description: b.Description,
			Position:    i,
		})
		for j, g := range b.Genres {
			links = append(links, BookGenreModel{BookID: b.ID, GenreID: g, Position: j})
		}
	}

	return authors, genres, books, links
}

// erDupEntry MySQL唯一索引冲突错误码（Duplicate entry 'xxx' for key 'yyy'）
const erDupEntry = 1062

// isDuplicateError 主键或唯一索引冲突
// gorm只有开启TranslateError时才会返回ErrDuplicatedKey，因此还要检查驱动错误码
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erDupEntry
}
