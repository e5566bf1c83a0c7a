// Package tui 终端图书浏览界面（bubbletea）
//
// 设计说明：
// 1. Model持有browse.State，每个按键把旧状态交给browse.Service，拿回新状态和渲染指令
// 2. 列表、搜索、设置、详情四种界面用overlay区分，同一时刻只有一个浮层
// 3. 主题切换后重新生成lipgloss样式
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiebiao/bookcatalog/internal/application/browse"
	"github.com/xiebiao/bookcatalog/internal/domain/theme"
)

// searchField 搜索浮层中的输入项
type searchField int

const (
	fieldTitle searchField = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

// themes 设置浮层可选的主题
var themes = []theme.Name{theme.Day, theme.Night}

// Model 终端界面模型
type Model struct {
	ctx     context.Context
	service *browse.Service

	// 浏览状态与当前列表
	state     browse.State
	items     []browse.PreviewItem
	remaining int
	showMore  string
	moreOff   bool
	empty     bool
	cursor    int
	offset    int

	// 浮层
	overlay browse.Overlay
	detail  browse.Detail

	// 搜索表单
	options    browse.Options
	titleInput textinput.Model
	field      searchField
	authorIdx  int
	genreIdx   int

	// 设置表单
	themeIdx int

	keys   keyMap
	help   help.Model
	styles styles

	width  int
	height int
}

// NewModel 创建界面模型，初始展示全部图书的第一页
func NewModel(ctx context.Context, service *browse.Service) Model {
	input := textinput.New()
	input.Placeholder = "Title"
	input.CharLimit = 100
	input.Width = 40

	m := Model{
		ctx:        ctx,
		service:    service,
		options:    service.Options(),
		titleInput: input,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}

	st, view := service.Start(ctx)
	m.state = st
	m.apply(view)
	m.styles = newStyles(st.Theme.Palette())
	m.themeIdx = themeIndex(st.Theme)
	return m
}

// Init 实现tea.Model接口
func (m Model) Init() tea.Cmd {
	return nil
}

// State 当前浏览状态
func (m Model) State() browse.State {
	return m.state
}

// apply 执行渲染指令
func (m *Model) apply(view browse.View) {
	if view.Append {
		m.items = append(m.items, view.Items...)
	} else {
		m.items = view.Items
	}
	m.remaining = view.Remaining
	m.showMore = view.ShowMoreLabel
	m.moreOff = view.ShowMoreDisabled
	m.empty = view.ShowEmptyMessage

	if view.ScrollTop {
		m.cursor = 0
		m.offset = 0
	}
	if view.CloseOverlay != browse.OverlayNone && m.overlay == view.CloseOverlay {
		m.overlay = browse.OverlayNone
	}
}

// listHeight 列表可见行数（每本书占一行）
func (m Model) listHeight() int {
	// 标题、按钮、帮助栏和边距
	const chrome = 8
	return max(m.height-chrome, 1)
}

// ensureVisible 让光标保持在可见区域
func (m *Model) ensureVisible() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func themeIndex(name theme.Name) int {
	for i, t := range themes {
		if t == name {
			return i
		}
	}
	return 0
}
