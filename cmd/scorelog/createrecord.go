package main

import (
	"strings"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/session"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/ui/components"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CreateRecordModel asks for a file name, then a starting score, and creates
// the record.
type CreateRecordModel struct {
	creator   *session.Creator
	dir       string
	textInput textinput.Model
	lg        *lipgloss.Renderer
	err       string
}

func NewCreateRecordModel(store *record.Store) CreateRecordModel {
	ti := textinput.New()
	ti.Placeholder = "session1"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return CreateRecordModel{
		creator:   session.NewCreator(store),
		dir:       store.Dir(),
		textInput: ti,
		lg:        lipgloss.DefaultRenderer(),
	}
}

func (m CreateRecordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CreateRecordModel) Update(msg tea.Msg) (CreateRecordModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(ViewMainMenu, "")
		case "enter":
			err := m.creator.Submit(m.textInput.Value())
			m.textInput.Reset()
			if err != nil {
				if !session.IsInputError(err) {
					return m, fatal(err)
				}
				m.err = err.Error()
				return m, nil
			}
			m.err = ""

			if m.creator.State() == session.Created {
				start := m.creator.Start()
				return m, func() tea.Msg {
					return sessionStartedMsg{start: start, created: true}
				}
			}
			m.textInput.Placeholder = "100"
			m.textInput.CharLimit = 18
			return m, nil
		default:
			// Clear error on new input
			m.err = ""
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m CreateRecordModel) View() string {
	headerStyle := m.lg.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
		Bold(true).
		Padding(0, 1, 0, 2)

	titleStyle := m.lg.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		MarginTop(1).
		MarginLeft(2)

	inputStyle := m.lg.NewStyle().
		MarginLeft(2).
		MarginTop(1)

	helpStyle := m.lg.NewStyle().
		Foreground(lipgloss.Color("240")).
		MarginTop(2).
		MarginLeft(2)

	errorStyle := m.lg.NewStyle().
		Foreground(lipgloss.Color("196")).
		MarginLeft(2).
		MarginTop(1)

	var body strings.Builder
	if name := m.creator.Name(); name != "" {
		body.WriteString(m.lg.NewStyle().MarginLeft(2).Render("File: " + name))
		body.WriteString("\n")
	}
	body.WriteString(titleStyle.Render(strings.TrimSuffix(m.creator.Prompt(), ": ")))
	body.WriteString("\n")
	body.WriteString(inputStyle.Render(m.textInput.View()))

	if m.err != "" {
		body.WriteString("\n")
		body.WriteString(errorStyle.Render("⚠ " + m.err))
	}

	body.WriteString("\n")
	body.WriteString(helpStyle.Render("enter: confirm • esc: back • ctrl+c: quit"))

	return components.RenderHeader("Score Logger", m.dir) + "\n" + headerStyle.Render("New Record") + "\n" + body.String()
}
