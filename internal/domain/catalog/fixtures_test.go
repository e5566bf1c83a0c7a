package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// duneHobbitCatalog 两本书的最小目录
func duneHobbitCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := NewCatalog(
		[]Book{
			{ID: "A", Title: "Dune", Author: "herbert", Genres: []string{"scifi"}, Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "B", Title: "Hobbit", Author: "tolkien", Genres: []string{"fantasy"}, Published: time.Date(1937, 9, 21, 0, 0, 0, 0, time.UTC)},
		},
		[]Entry{{ID: "herbert", Name: "Frank Herbert"}, {ID: "tolkien", Name: "J.R.R. Tolkien"}},
		[]Entry{{ID: "scifi", Name: "Science Fiction"}, {ID: "fantasy", Name: "Fantasy"}},
		2,
	)
	require.NoError(t, err)
	return c
}

// generatedCatalog 生成n本书的目录,作者和分类轮流分配
func generatedCatalog(t *testing.T, n int) *Catalog {
	t.Helper()

	authors := []Entry{{ID: "a1", Name: "Ann"}, {ID: "a2", Name: "Bob"}, {ID: "a3", Name: "Cid"}}
	genres := []Entry{{ID: "g1", Name: "Drama"}, {ID: "g2", Name: "Poetry"}}

	books := make([]Book, n)
	for i := range books {
		genreIDs := []string{genres[i%len(genres)].ID}
		if i%5 == 0 {
			genreIDs = []string{"g1", "g2"}
		}
		books[i] = Book{
			ID:     fmt.Sprintf("book-%03d", i),
			Title:  fmt.Sprintf("The Volume %d", i),
			Author: authors[i%len(authors)].ID,
			Genres: genreIDs,
		}
	}

	c, err := NewCatalog(books, authors, genres, 0)
	require.NoError(t, err)
	return c
}
