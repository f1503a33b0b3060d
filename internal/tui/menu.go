package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title, desc string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// MenuModel is the slash-command popup shown in the chat screen.
type MenuModel struct {
	list   list.Model
	active bool
}

func NewMenuModel() MenuModel {
	items := []list.Item{
		menuItem{title: "/help", desc: "Show chat commands"},
		menuItem{title: "/save", desc: "Save the transcript as JSON"},
		menuItem{title: "/export", desc: "Export the transcript as Markdown"},
		menuItem{title: "/compact", desc: "Summarize history to save tokens"},
		menuItem{title: "/tokens", desc: "Show estimated token usage"},
		menuItem{title: "/clear", desc: "Clear this conversation"},
		menuItem{title: "/back", desc: "Return to the proposal"},
		menuItem{title: "/quit", desc: "Exit mlmuse"},
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Violet).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Violet).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(DimViolet)

	l := list.New(items, d, 30, 14)
	l.Title = "Commands"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(Violet).Bold(true).MarginLeft(2)

	return MenuModel{list: l}
}

func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.active = false
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MenuModel) View() string {
	if !m.active {
		return ""
	}
	return MenuBoxStyle.Render(m.list.View())
}
