package browse

import (
	"fmt"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/domain/theme"
)

// Overlay 界面上的浮层
type Overlay string

const (
	OverlayNone     Overlay = ""
	OverlaySearch   Overlay = "search"
	OverlaySettings Overlay = "settings"
	OverlayDetail   Overlay = "detail"
)

// State 浏览状态
// 设计说明：
// 1. 状态是值类型，每个命令接收旧状态、返回新状态，Service本身不保存任何可变数据
// 2. Matches只在Search时整体替换，Page只在ShowMore时递增、在Search时重置为1
// 3. 状态只存在于内存中（TUI的Model里），不做持久化
type State struct {
	Criteria catalog.FilterCriteria
	Matches  catalog.MatchSet
	Page     catalog.PageCursor
	Theme    theme.Name
}

// PreviewItem 预览卡片
type PreviewItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Author string `json:"author"` // 作者展示名称
}

// View 渲染指令
// Append=false时用Items替换整个列表，Append=true时把Items追加到列表末尾
type View struct {
	Items            []PreviewItem
	Append           bool
	Total            int // 当前筛选结果总数
	Remaining        int // 尚未展示的数量（不小于0）
	ShowMoreLabel    string
	ShowMoreDisabled bool
	ShowEmptyMessage bool    // 搜索结果为空时显示提示
	ScrollTop        bool    // 新搜索后回到顶部
	CloseOverlay     Overlay // 命令完成后需要关闭的浮层
}

// Detail 详情浮层内容
type Detail struct {
	ID          string `json:"id"`
	Image       string `json:"image"` // 同时用作模糊背景
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"` // 作者 (出版年份)
	Description string `json:"description"`
}

// Settings 设置保存后的主题信息
type Settings struct {
	Theme        theme.Name
	Palette      theme.Palette
	CloseOverlay Overlay
}

// Options 下拉选项
type Options struct {
	Authors []catalog.Option `json:"authors"`
	Genres  []catalog.Option `json:"genres"`
}

// ShowMoreLabel "显示更多"按钮文案，n小于0时按0显示
func ShowMoreLabel(n int) string {
	return fmt.Sprintf("Show more (%d)", max(n, 0))
}
