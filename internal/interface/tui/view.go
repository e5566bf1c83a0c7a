package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xiebiao/bookcatalog/internal/application/browse"
)

// emptyMessage 搜索没有结果时的提示
const emptyMessage = "No results found. Your filters might be too narrow."

// View 实现tea.Model接口
func (m Model) View() string {
	var body string
	switch m.overlay {
	case browse.OverlaySearch:
		body = m.renderSearch()
	case browse.OverlaySettings:
		body = m.renderSettings()
	case browse.OverlayDetail:
		body = m.renderDetail()
	default:
		body = m.renderList()
	}
	return m.styles.app.Render(body)
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("Book Catalog · %d books", len(m.state.Matches))))
	b.WriteString("\n")

	if m.empty {
		b.WriteString(m.styles.message.Render(emptyMessage))
		b.WriteString("\n")
	}

	end := min(m.offset+m.listHeight(), len(m.items))
	for i := m.offset; i < end; i++ {
		it := m.items[i]
		line := it.Title + "  " + m.styles.author.Render(it.Author)
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString(m.styles.item.Render(line))
		}
		b.WriteString("\n")
	}

	if m.moreOff {
		b.WriteString(m.styles.buttonOff.Render(m.showMore))
	} else {
		b.WriteString(m.styles.button.Render(m.showMore))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(listHelp{m.keys}))
	return b.String()
}

func (m Model) renderSearch() string {
	label := func(f searchField, text string) string {
		if m.field == f {
			return m.styles.activeLabel.Render(text)
		}
		return m.styles.label.Render(text)
	}

	rows := []string{
		m.styles.title.Render("Search"),
		lipgloss.JoinHorizontal(lipgloss.Top, label(fieldTitle, "Title"), m.titleInput.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, label(fieldAuthor, "Author"), "‹ "+m.options.Authors[m.authorIdx].Label+" ›"),
		lipgloss.JoinHorizontal(lipgloss.Top, label(fieldGenre, "Genre"), "‹ "+m.options.Genres[m.genreIdx].Label+" ›"),
	}
	return m.styles.overlay.Render(strings.Join(rows, "\n")) + "\n" + m.help.View(formHelp{m.keys})
}

func (m Model) renderSettings() string {
	choices := make([]string, len(themes))
	for i, t := range themes {
		name := strings.ToUpper(string(t[:1])) + string(t[1:])
		if i == m.themeIdx {
			choices[i] = m.styles.activeLabel.Render("● " + name)
		} else {
			choices[i] = m.styles.label.Render("○ " + name)
		}
	}

	rows := []string{
		m.styles.title.Render("Settings"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.styles.label.Render("Theme"), strings.Join(choices, " ")),
	}
	return m.styles.overlay.Render(strings.Join(rows, "\n")) + "\n" + m.help.View(formHelp{m.keys})
}

func (m Model) renderDetail() string {
	d := m.detail
	width := max(m.width-8, 20)

	rows := []string{
		m.styles.title.Render(d.Title),
		m.styles.author.Render(d.Subtitle),
		"",
		lipgloss.NewStyle().Width(width).Render(d.Description),
	}
	if d.Image != "" {
		rows = append(rows, "", m.styles.author.Render(d.Image))
	}
	return m.styles.overlay.Render(strings.Join(rows, "\n"))
}
