// Package main provides the main menu view for scorelog.
//
// This file implements the MainMenuModel which offers creating a new record,
// continuing a previous one, or quitting.
package main

import (
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/ui/components"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	menuCreate = "Create a new record"
	menuResume = "Continue a previous record"
	menuQuit   = "Quit"
)

type MainMenuModel struct {
	choices list.Model
	dir     string
	notice  string
}

type menuItem struct {
	title       string
	description string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.description }
func (i menuItem) FilterValue() string { return i.title }

func NewMainMenuModel(dir string) MainMenuModel {
	items := []list.Item{
		menuItem{title: menuCreate, description: "1 · Start a record file with a starting score"},
		menuItem{title: menuResume, description: "2 · Pick an existing record file and keep logging"},
		menuItem{title: menuQuit, description: "q · Exit"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 14)
	l.Title = "Main Menu"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return MainMenuModel{
		choices: l,
		dir:     dir,
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) choose(title string) tea.Cmd {
	switch title {
	case menuCreate:
		return navigate(ViewCreate, "")
	case menuResume:
		return navigate(ViewSelect, "")
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m MainMenuModel) Update(msg tea.Msg) (MainMenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.choices.SetSize(msg.Width, 14)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("1"))):
			m.notice = ""
			return m, m.choose(menuCreate)
		case key.Matches(msg, key.NewBinding(key.WithKeys("2"))):
			m.notice = ""
			return m, m.choose(menuResume)
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			m.notice = ""
			if item, ok := m.choices.SelectedItem().(menuItem); ok {
				return m, m.choose(item.title)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.choices, cmd = m.choices.Update(msg)
	return m, cmd
}

func (m MainMenuModel) View() string {
	header := components.RenderHeader("Score Logger", m.dir) + "\n"

	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			MarginLeft(2).
			MarginBottom(1)
		header += noticeStyle.Render("⚠  "+m.notice) + "\n"
	}

	return header + m.choices.View()
}
