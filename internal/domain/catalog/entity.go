package catalog

import (
	"slices"
	"time"
)

// Book 图书实体
// 设计说明:
// 1. 图书在加载完成后不可变,所有视图(列表、搜索结果、详情)都读取同一份数据
// 2. Author保存作者ID,展示名称通过Catalog.AuthorName查询
// 3. Genres是分类ID集合(一本书可以属于多个分类),筛选时按成员关系判断
type Book struct {
	ID          string
	Title       string
	Image       string // 封面图片URL
	Author      string // 作者ID
	Genres      []string
	Published   time.Time
	Description string
}

// HasGenre 判断图书是否属于指定分类
func (b Book) HasGenre(genreID string) bool {
	return slices.Contains(b.Genres, genreID)
}

// clone 复制Genres，目录内部的切片不会暴露给调用方
func (b Book) clone() Book {
	b.Genres = slices.Clone(b.Genres)
	return b
}

// PublishedYear 出版年份(详情页副标题使用)
func (b Book) PublishedYear() int {
	return b.Published.Year()
}

// Entry 作者/分类的ID与展示名称
type Entry struct {
	ID   string
	Name string
}

// MatchSet 筛选结果
// 每次搜索整体重新计算,不做增量修改
type MatchSet []Book

// Len 结果数量
func (m MatchSet) Len() int {
	return len(m)
}

// IDs 按顺序返回结果中的图书ID
func (m MatchSet) IDs() []string {
	ids := make([]string, len(m))
	for i, b := range m {
		ids[i] = b.ID
	}
	return ids
}
