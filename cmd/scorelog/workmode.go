package main

import (
	"fmt"
	"strings"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/session"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/ui/components"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyLimit caps how many appended rows the work view shows.
const historyLimit = 10

type appended struct {
	row   record.Row
	delta session.Delta
}

// WorkModel reads score changes and appends one row per accepted change.
type WorkModel struct {
	sess      *session.Session
	dir       string
	created   bool
	textInput textinput.Model
	history   []appended
	err       string
}

func NewWorkModel(store *record.Store, start session.Start, created bool) WorkModel {
	ti := textinput.New()
	ti.Placeholder = "+20"
	ti.CharLimit = 8
	ti.Width = 20
	ti.Focus()

	return WorkModel{
		sess:      session.New(store, start),
		dir:       store.Dir(),
		created:   created,
		textInput: ti,
	}
}

func (m WorkModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m WorkModel) Update(msg tea.Msg) (WorkModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, quit
		case "enter":
			in, err := session.ParseInput(m.textInput.Value())
			m.textInput.Reset()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""

			switch in := in.(type) {
			case session.Quit:
				return m, quit
			case session.Change:
				row, err := m.sess.Apply(in.Delta)
				if err != nil {
					return m, fatal(err)
				}
				m.history = append(m.history, appended{row: row, delta: in.Delta})
			}
			return m, nil
		default:
			m.err = ""
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// Summary is printed once the program exits from work mode.
func (m WorkModel) Summary() string {
	return fmt.Sprintf("Leaving work mode. %s: score %d, %d rows added.\n",
		m.sess.Name(), m.sess.Score(), len(m.history))
}

func (m WorkModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
		Bold(true).
		Padding(0, 1, 0, 2)

	scoreStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		MarginLeft(2).
		MarginTop(1)

	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginLeft(4)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		MarginLeft(2).
		MarginTop(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		MarginTop(1).
		MarginLeft(2)

	var b strings.Builder
	b.WriteString(components.RenderHeader("Score Logger", m.dir))
	b.WriteString("\n")

	title := "Work mode · " + m.sess.Name()
	if m.created {
		title += " (new)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Current score: %d", m.sess.Score())))
	b.WriteString("\n")

	shown := m.history
	if len(shown) > historyLimit {
		shown = shown[len(shown)-historyLimit:]
	}
	for _, a := range shown {
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(fmt.Sprintf("%s  %4s  -> %d",
			record.FormatTime(a.row.Time), a.delta, a.row.Score)))
	}
	if len(shown) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n  Score change: ")
	b.WriteString(m.textInput.View())

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("⚠ " + m.err))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("allowed: %s • q: quit", session.DeltaList())))
	return b.String()
}
