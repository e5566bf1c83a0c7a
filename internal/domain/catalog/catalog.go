package catalog

import (
	"slices"
)

// DefaultPageSize 默认每页数量(数据集未指定时使用)
const DefaultPageSize = 36

// Catalog 图书目录(聚合根)
// 设计说明:
// 1. 启动时由数据源一次性构建,之后只读
// 2. 图书保持数据集中的原始顺序,筛选结果也按此顺序输出
// 3. 作者、分类同时保存有序列表(下拉选项顺序)和索引(按ID查名称)
type Catalog struct {
	books       []Book
	authors     []Entry
	genres      []Entry
	authorNames map[string]string
	genreNames  map[string]string
	pageSize    int
}

// NewCatalog 创建图书目录
// 业务规则:
// - 图书ID不能为空且不能重复
// - 图书引用的作者、分类必须存在
// - pageSize为0表示数据源未指定,使用DefaultPageSize;负数原样保留,由NewPaginator报错
func NewCatalog(books []Book, authors, genres []Entry, pageSize int) (*Catalog, error) {
	c := &Catalog{
		books:       make([]Book, 0, len(books)),
		authors:     slices.Clone(authors),
		genres:      slices.Clone(genres),
		authorNames: make(map[string]string, len(authors)),
		genreNames:  make(map[string]string, len(genres)),
		pageSize:    pageSize,
	}
	if c.pageSize == 0 {
		c.pageSize = DefaultPageSize
	}

	for _, a := range authors {
		c.authorNames[a.ID] = a.Name
	}
	for _, g := range genres {
		c.genreNames[g.ID] = g.Name
	}

	seen := make(map[string]struct{}, len(books))
	for _, b := range books {
		if b.ID == "" {
			return nil, ErrEmptyBookID
		}
		if _, ok := seen[b.ID]; ok {
			return nil, ErrDuplicateBookID.WithDetail(b.ID)
		}
		seen[b.ID] = struct{}{}

		if _, ok := c.authorNames[b.Author]; !ok {
			return nil, ErrUnknownAuthor.WithDetail(b.Author)
		}
		for _, g := range b.Genres {
			if _, ok := c.genreNames[g]; !ok {
				return nil, ErrUnknownGenre.WithDetail(g)
			}
		}

		c.books = append(c.books, b.clone())
	}

	return c, nil
}

// Books 返回全部图书(副本,调用方修改不影响目录)
func (c *Catalog) Books() []Book {
	books := make([]Book, len(c.books))
	for i, b := range c.books {
		books[i] = b.clone()
	}
	return books
}

// Len 图书总数
func (c *Catalog) Len() int {
	return len(c.books)
}

// Authors 作者列表(数据集顺序)
func (c *Catalog) Authors() []Entry {
	return slices.Clone(c.authors)
}

// Genres 分类列表(数据集顺序)
func (c *Catalog) Genres() []Entry {
	return slices.Clone(c.genres)
}

// AuthorName 查询作者展示名称
func (c *Catalog) AuthorName(id string) (string, bool) {
	name, ok := c.authorNames[id]
	return name, ok
}

// GenreName 查询分类展示名称
func (c *Catalog) GenreName(id string) (string, bool) {
	name, ok := c.genreNames[id]
	return name, ok
}

// PageSize 数据源提供的每页数量
func (c *Catalog) PageSize() int {
	return c.pageSize
}

// Resolve 根据ID查找图书(选择预览时使用)
// 精确匹配,第一个命中的记录胜出;找不到时返回ErrBookNotFound
func (c *Catalog) Resolve(id string) (Book, error) {
	for _, b := range c.books {
		if b.ID == id {
			return b.clone(), nil
		}
	}
	return Book{}, ErrBookNotFound
}
