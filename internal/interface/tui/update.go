package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiebiao/bookcatalog/internal/application/browse"
	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
)

// Update 实现tea.Model接口
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.overlay {
		case browse.OverlaySearch:
			return m.handleSearchKeys(msg)
		case browse.OverlaySettings:
			return m.handleSettingsKeys(msg)
		case browse.OverlayDetail:
			return m.handleDetailKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}

	return m, nil
}

// handleListKeys 列表界面
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.More):
		var view browse.View
		m.state, view = m.service.ShowMore(m.ctx, m.state)
		m.apply(view)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if len(m.items) == 0 {
			return m, nil
		}
		detail, err := m.service.Select(m.ctx, m.items[m.cursor].ID)
		if err != nil {
			// 找不到图书时保持详情浮层关闭
			return m, nil
		}
		m.detail = detail
		m.overlay = browse.OverlayDetail
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.overlay = browse.OverlaySearch
		m.field = fieldTitle
		m.titleInput.SetValue(m.state.Criteria.Title)
		m.authorIdx = optionIndex(m.options.Authors, m.state.Criteria.Author)
		m.genreIdx = optionIndex(m.options.Genres, m.state.Criteria.Genre)
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Settings):
		m.overlay = browse.OverlaySettings
		m.themeIdx = themeIndex(m.state.Theme)
		return m, nil
	}

	return m, nil
}

// handleSearchKeys 搜索浮层
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.titleInput.Blur()
		m.overlay = browse.OverlayNone
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		criteria := catalog.FilterCriteria{
			Title:  m.titleInput.Value(),
			Author: m.options.Authors[m.authorIdx].Value,
			Genre:  m.options.Genres[m.genreIdx].Value,
		}
		st, view, err := m.service.Search(m.ctx, m.state, criteria)
		if err != nil {
			return m, nil
		}
		m.state = st
		m.apply(view)
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.focusField((m.field + 1) % fieldCount)

	case key.Matches(msg, m.keys.Prev):
		return m.focusField((m.field + fieldCount - 1) % fieldCount)

	case m.field != fieldTitle && key.Matches(msg, m.keys.Left):
		m.cycleOption(-1)
		return m, nil

	case m.field != fieldTitle && key.Matches(msg, m.keys.Right):
		m.cycleOption(1)
		return m, nil
	}

	if m.field == fieldTitle {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) focusField(f searchField) (tea.Model, tea.Cmd) {
	m.field = f
	if f == fieldTitle {
		return m, m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m, textinput.Blink
}

func (m *Model) cycleOption(delta int) {
	switch m.field {
	case fieldAuthor:
		m.authorIdx = wrap(m.authorIdx+delta, len(m.options.Authors))
	case fieldGenre:
		m.genreIdx = wrap(m.genreIdx+delta, len(m.options.Genres))
	}
}

// handleSettingsKeys 设置浮层
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.overlay = browse.OverlayNone
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.themeIdx = wrap(m.themeIdx-1, len(themes))
		return m, nil

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Next):
		m.themeIdx = wrap(m.themeIdx+1, len(themes))
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		var settings browse.Settings
		m.state, settings = m.service.SaveSettings(m.ctx, m.state, string(themes[m.themeIdx]))
		m.styles = newStyles(settings.Palette)
		if m.overlay == settings.CloseOverlay {
			m.overlay = browse.OverlayNone
		}
		return m, nil
	}
	return m, nil
}

// handleDetailKeys 详情浮层
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Open):
		m.overlay = browse.OverlayNone
		m.detail = browse.Detail{}
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func optionIndex(options []catalog.Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
