package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xiebiao/bookcatalog/internal/domain/theme"
)

var mutedColor = lipgloss.Color("245") // Gray

// styles 根据主题配色生成的样式
// 前景色使用--color-dark，背景色使用--color-light，和网页版的CSS变量一致
type styles struct {
	app         lipgloss.Style
	title       lipgloss.Style
	item        lipgloss.Style
	selected    lipgloss.Style
	author      lipgloss.Style
	button      lipgloss.Style
	buttonOff   lipgloss.Style
	message     lipgloss.Style
	overlay     lipgloss.Style
	label       lipgloss.Style
	activeLabel lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	dark := lipgloss.Color(p.Dark.Hex())
	light := lipgloss.Color(p.Light.Hex())

	return styles{
		app: lipgloss.NewStyle().
			Foreground(dark).
			Background(light).
			Padding(0, 1),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(dark).
			MarginBottom(1),
		item: lipgloss.NewStyle().
			PaddingLeft(2),
		selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(dark),
		author: lipgloss.NewStyle().
			Foreground(mutedColor),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(light).
			Background(dark).
			Padding(0, 1).
			MarginTop(1),
		buttonOff: lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1).
			MarginTop(1),
		message: lipgloss.NewStyle().
			Italic(true).
			Foreground(mutedColor).
			MarginTop(1),
		overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(dark).
			Padding(1, 2),
		label: lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(8),
		activeLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(dark).
			Width(8),
	}
}
