package mysql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	books := []catalog.Book{
		{ID: "b1", Title: "Dune", Author: "herbert", Genres: []string{"scifi", "classic"}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b2", Title: "The Hobbit", Author: "tolkien", Genres: []string{"fantasy"}, Published: time.Date(1937, 9, 21, 0, 0, 0, 0, time.UTC)},
		{ID: "b3", Title: "Untagged", Author: "tolkien"},
	}
	authors := []catalog.Entry{{ID: "tolkien", Name: "J.R.R. Tolkien"}, {ID: "herbert", Name: "Frank Herbert"}}
	genres := []catalog.Entry{{ID: "fantasy", Name: "Fantasy"}, {ID: "scifi", Name: "Science Fiction"}, {ID: "classic", Name: "Classic"}}

	c, err := catalog.NewCatalog(books, authors, genres, 12)
	require.NoError(t, err)
	return c
}

func TestToModels(t *testing.T) {
	authors, genres, books, links := toModels(sampleCatalog(t))

	assert.Equal(t, []AuthorModel{
		{ID: "tolkien", Name: "J.R.R. Tolkien", Position: 0},
		{ID: "herbert", Name: "Frank Herbert", Position: 1},
	}, authors)
	assert.Len(t, genres, 3)
	assert.Equal(t, 2, genres[2].Position)

	require.Len(t, books, 3)
	assert.Equal(t, "herbert", books[0].AuthorID)
	assert.Equal(t, 2, books[2].Position)

	assert.Equal(t, []BookGenreModel{
		{BookID: "b1", GenreID: "scifi", Position: 0},
		{BookID: "b1", GenreID: "classic", Position: 1},
		{BookID: "b2", GenreID: "fantasy", Position: 0},
	}, links)
}

func TestAssemble(t *testing.T) {
	t.Run("模型往返后目录不变", func(t *testing.T) {
		original := sampleCatalog(t)
		authors, genres, books, links := toModels(original)

		restored, err := assemble(authors, genres, books, links, original.PageSize())
		require.NoError(t, err)

		assert.Equal(t, original.Books(), restored.Books())
		assert.Equal(t, original.Authors(), restored.Authors())
		assert.Equal(t, original.Genres(), restored.Genres())
		assert.Equal(t, 12, restored.PageSize())
	})

	t.Run("关联表乱序时分类仍按position归属", func(t *testing.T) {
		authors, genres, books, _ := toModels(sampleCatalog(t))
		links := []BookGenreModel{
			{BookID: "b2", GenreID: "fantasy", Position: 0},
			{BookID: "b1", GenreID: "scifi", Position: 0},
			{BookID: "b1", GenreID: "classic", Position: 1},
		}

		c, err := assemble(authors, genres, books, links, 0)
		require.NoError(t, err)
		dune, err := c.Resolve("b1")
		require.NoError(t, err)
		assert.Equal(t, []string{"scifi", "classic"}, dune.Genres)
		assert.Equal(t, catalog.DefaultPageSize, c.PageSize())
	})

	t.Run("引用不存在的分类", func(t *testing.T) {
		authors, genres, books, links := toModels(sampleCatalog(t))
		links = append(links, BookGenreModel{BookID: "b3", GenreID: "horror"})

		_, err := assemble(authors, genres, books, links, 0)
		assert.ErrorIs(t, err, catalog.ErrUnknownGenre)
	})
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm翻译后的错误", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"驱动错误码1062", &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'b1' for key 'PRIMARY'"}, true},
		{"其他驱动错误", &mysqldriver.MySQLError{Number: 1146, Message: "Table doesn't exist"}, false},
		{"普通错误", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateError(tt.err))
		})
	}
}

func TestDBError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	err := dbError(cause, "查询图书失败")
	assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "数据库错误", err.Message)
	assert.Contains(t, err.Err.Error(), "查询图书失败")
}
