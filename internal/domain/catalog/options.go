package catalog

// 下拉框"全部"选项的文案
const (
	AllAuthorsLabel = "All Authors"
	AllGenresLabel  = "All Genres"
)

// Option 下拉框选项
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AuthorOptions 作者下拉选项:第一项为Any,之后按数据集顺序列出
func (c *Catalog) AuthorOptions() []Option {
	return buildOptions(c.authors, AllAuthorsLabel)
}

// GenreOptions 分类下拉选项:第一项为Any,之后按数据集顺序列出
func (c *Catalog) GenreOptions() []Option {
	return buildOptions(c.genres, AllGenresLabel)
}

func buildOptions(entries []Entry, anyLabel string) []Option {
	options := make([]Option, 0, len(entries)+1)
	options = append(options, Option{Value: Any, Label: anyLabel})
	for _, e := range entries {
		options = append(options, Option{Value: e.ID, Label: e.Name})
	}
	return options
}
