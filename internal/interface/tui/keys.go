package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap 快捷键定义
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	More     key.Binding
	Search   key.Binding
	Settings key.Binding
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Submit   key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		More: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "show more"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHelp 列表界面的帮助
type listHelp struct{ k keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Open, h.k.More, h.k.Search, h.k.Settings, h.k.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// formHelp 搜索、设置浮层的帮助
type formHelp struct{ k keyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Next, h.k.Left, h.k.Right, h.k.Submit, h.k.Close}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
