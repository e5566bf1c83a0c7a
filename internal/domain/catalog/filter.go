package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter 按条件筛选图书
// 规则:
// 1. 标题:去掉首尾空白后为空则全部匹配,否则忽略大小写做子串匹配
// 2. 作者:Any或与图书作者ID完全相等
// 3. 分类:Any或属于图书的分类集合
// 三个条件同时满足才命中,结果保持目录原有顺序;结果中的图书是副本,修改不影响目录
func Filter(c *Catalog, criteria FilterCriteria) (MatchSet, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	// cases.Caser有内部状态,不能在goroutine之间共享,每次调用单独创建
	lower := cases.Lower(language.Und)
	title := lower.String(strings.TrimSpace(criteria.Title))

	matches := make(MatchSet, 0, len(c.books))
	for _, b := range c.books {
		if title != "" && !strings.Contains(lower.String(b.Title), title) {
			continue
		}
		if criteria.Author != Any && b.Author != criteria.Author {
			continue
		}
		if criteria.Genre != Any && !b.HasGenre(criteria.Genre) {
			continue
		}
		matches = append(matches, b.clone())
	}

	return matches, nil
}
