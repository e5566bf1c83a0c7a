package catalog

import (
	"net/url"
)

// Any 下拉框"全部"选项的值
const Any = "any"

// 表单字段名(与搜索表单保持一致)
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldGenre  = "genre"
)

// FilterCriteria 筛选条件
// - Title: 标题子串(忽略大小写,首尾空白会被去掉),空字符串匹配全部
// - Author: 作者ID或Any
// - Genre: 分类ID或Any
type FilterCriteria struct {
	Title  string
	Author string
	Genre  string
}

// AllBooks 不做任何筛选的条件(启动时的初始视图)
func AllBooks() FilterCriteria {
	return FilterCriteria{Title: "", Author: Any, Genre: Any}
}

// Validate 校验条件是否完整
// Author、Genre为空视为调用方漏传字段,直接报错而不是默认成Any,
// 避免掩盖调用方的bug
func (c FilterCriteria) Validate() error {
	if c.Author == "" {
		return ErrInvalidCriteria.WithDetail("缺少字段 " + FieldAuthor)
	}
	if c.Genre == "" {
		return ErrInvalidCriteria.WithDetail("缺少字段 " + FieldGenre)
	}
	return nil
}

// IsDefault 是否为不做任何筛选的条件
func (c FilterCriteria) IsDefault() bool {
	return c == AllBooks()
}

// ParseCriteria 从表单数据解析筛选条件
// 三个字段都必须出现(title允许为空字符串),缺失任意一个返回ErrInvalidCriteria
func ParseCriteria(form url.Values) (FilterCriteria, error) {
	for _, field := range []string{FieldTitle, FieldAuthor, FieldGenre} {
		if _, ok := form[field]; !ok {
			return FilterCriteria{}, ErrInvalidCriteria.WithDetail("缺少字段 " + field)
		}
	}

	criteria := FilterCriteria{
		Title:  form.Get(FieldTitle),
		Author: form.Get(FieldAuthor),
		Genre:  form.Get(FieldGenre),
	}
	if err := criteria.Validate(); err != nil {
		return FilterCriteria{}, err
	}
	return criteria, nil
}
