package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/session"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/ui/components"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RecordSelectorModel struct {
	list     list.Model
	selector *session.Selector
	dir      string
	err      string
}

type recordItem struct {
	index       int
	name        string
	description string
}

func (i recordItem) Title() string       { return fmt.Sprintf("%d. %s", i.index+1, i.name) }
func (i recordItem) Description() string { return i.description }
func (i recordItem) FilterValue() string { return i.name }

// describeRecord reports the size and age of a record file.
func describeRecord(store *record.Store, name string) string {
	info, err := os.Stat(store.Path(name))
	if err != nil {
		return "unreadable"
	}
	return fmt.Sprintf("%s · modified %s", humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
}

func NewRecordSelectorModel(store *record.Store, files []string) RecordSelectorModel {
	items := make([]list.Item, len(files))
	for i, name := range files {
		items[i] = recordItem{
			index:       i,
			name:        name,
			description: describeRecord(store, name),
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Record files"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)

	return RecordSelectorModel{
		list:     l,
		selector: session.NewSelector(store, files),
		dir:      store.Dir(),
	}
}

func (m RecordSelectorModel) Init() tea.Cmd {
	return nil
}

func (m RecordSelectorModel) resume(pick session.Pick) (RecordSelectorModel, tea.Cmd) {
	start, err := m.selector.Resume(pick)
	if err != nil {
		if !session.IsInputError(err) {
			return m, fatal(err)
		}
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	return m, func() tea.Msg {
		return sessionStartedMsg{start: start}
	}
}

func (m RecordSelectorModel) Update(msg tea.Msg) (RecordSelectorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "q", "Q", "esc":
			return m, navigate(ViewMainMenu, "Back to the main menu")
		case "enter":
			return m.resume(session.Pick{Index: m.list.Index()})
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			choice, err := session.ParseChoice(s, len(m.selector.Files()))
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			if pick, ok := choice.(session.Pick); ok {
				m.list.Select(pick.Index)
				return m.resume(pick)
			}
			return m, nil
		default:
			m.err = ""
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m RecordSelectorModel) View() string {
	var b strings.Builder
	b.WriteString(components.RenderHeader("Score Logger", m.dir))
	b.WriteString("\n")
	b.WriteString(m.list.View())

	if m.err != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			MarginLeft(2).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("⚠ " + m.err))
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		MarginTop(1).
		MarginLeft(2)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter or 1-9: open • q/esc: back"))
	return b.String()
}
