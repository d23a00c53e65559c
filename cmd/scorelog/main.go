// Package main provides the scorelog command.
//
// scorelog records a score history in a CSV file: it creates a record with a
// starting score or resumes an existing one, then appends a timestamped row for
// every score change entered. On a terminal it runs a Bubble Tea UI with one
// view per step; with --plain, or when stdin is not a terminal, it falls back
// to a line-by-line console.
package main

import (
	"fmt"
	"os"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/config"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/session"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/ui/components"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/utils"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type ViewState int

const (
	ViewMainMenu ViewState = iota
	ViewCreate
	ViewSelect
	ViewWork
)

// NavigateMsg switches the current view. notice is shown on the main menu.
type NavigateMsg struct {
	view   ViewState
	notice string
}

type sessionStartedMsg struct {
	start   session.Start
	created bool
}

// fatalMsg stops the program; main reports err and exits non-zero.
type fatalMsg struct {
	err error
}

// quitMsg ends the program normally; the view leaves a summary behind.
type quitMsg struct{}

func quit() tea.Msg {
	return quitMsg{}
}

func fatal(err error) tea.Cmd {
	return func() tea.Msg {
		return fatalMsg{err: err}
	}
}

func navigate(view ViewState, notice string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{view: view, notice: notice}
	}
}

type Model struct {
	store       *record.Store
	currentView ViewState
	mainMenu    MainMenuModel
	create      CreateRecordModel
	selector    RecordSelectorModel
	work        WorkModel
	err         error
	quitting    bool
}

func newModel(store *record.Store) Model {
	return Model{
		store:       store,
		currentView: ViewMainMenu,
		mainMenu:    NewMainMenuModel(store.Dir()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.mainMenu.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fatalMsg:
		utils.LogDebug("fatal: %v", msg.err)
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case quitMsg:
		m.quitting = true
		return m, tea.Quit

	case sessionStartedMsg:
		m.work = NewWorkModel(m.store, msg.start, msg.created)
		m.currentView = ViewWork
		return m, m.work.Init()

	case NavigateMsg:
		return m.navigate(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	// Route updates to current view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewMainMenu:
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case ViewCreate:
		m.create, cmd = m.create.Update(msg)
	case ViewSelect:
		m.selector, cmd = m.selector.Update(msg)
	case ViewWork:
		m.work, cmd = m.work.Update(msg)
	}
	return m, cmd
}

func (m Model) navigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.view {
	case ViewMainMenu:
		m.mainMenu.notice = msg.notice
		m.currentView = ViewMainMenu
		return m, m.mainMenu.Init()

	case ViewCreate:
		m.create = NewCreateRecordModel(m.store)
		m.currentView = ViewCreate
		return m, m.create.Init()

	case ViewSelect:
		files, err := m.store.List()
		if err != nil {
			return m, fatal(err)
		}
		if len(files) == 0 {
			m.mainMenu.notice = "No record files found in " + m.store.Dir()
			m.currentView = ViewMainMenu
			return m, nil
		}
		m.selector = NewRecordSelectorModel(m.store, files)
		m.currentView = ViewSelect
		return m, m.selector.Init()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		if m.currentView == ViewWork {
			return m.work.Summary()
		}
		return ""
	}

	// Route view to current view
	switch m.currentView {
	case ViewMainMenu:
		return m.mainMenu.View()
	case ViewCreate:
		return m.create.View()
	case ViewSelect:
		return m.selector.View()
	case ViewWork:
		return m.work.View()
	default:
		return "Unknown view\n"
	}
}

func runTUI(store *record.Store) error {
	p := tea.NewProgram(newModel(store))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("could not run program: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func printUsage() {
	fmt.Printf("scorelog - record a score history in a CSV file\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  scorelog [options]\n\n")
	fmt.Printf("Options:\n")
	fmt.Printf("  --plain            Use the line-by-line console instead of the terminal UI\n")
	fmt.Printf("  --init-config      Write the default configuration file and exit\n")
	fmt.Printf("  --version, -v      Show version information\n")
	fmt.Printf("  --help, -h         Show this help message\n\n")
	fmt.Printf("Score changes must be one of %s. Enter q to quit.\n", session.DeltaList())
	fmt.Printf("Records are read from and written to data_dir (see %s).\n", config.Path())
}

func initConfig() error {
	path := config.Path()
	cfg, created, err := config.Init(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Wrote default configuration to %s\n", path)
	} else {
		fmt.Printf("Configuration already exists at %s\n", path)
	}
	fmt.Printf("  data_dir:   %s\n", cfg.DataDir)
	fmt.Printf("  output_dir: %s\n", cfg.OutputDir)
	fmt.Printf("  log_file:   %s\n", cfg.LogFile)
	return nil
}

// exitWithError reports err, pointing at the debug log when there is one.
func exitWithError(err error) {
	utils.LogDebug("exiting with error: %v", err)
	hint := utils.ErrorHint()
	utils.CloseLogger()
	fmt.Printf("Error: %v\n", err)
	if hint != "" {
		fmt.Printf("(%s)\n", hint)
	}
	os.Exit(1)
}

func main() {
	plain := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--help", "-h", "help":
			printUsage()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("scorelog version %s\n", components.Version)
			fmt.Printf("Git commit: %s\n", components.GitCommit)
			fmt.Printf("Built: %s\n", components.BuildTime)
			os.Exit(0)
		case "--plain":
			plain = true
		case "--init-config":
			if err := initConfig(); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		default:
			fmt.Printf("Unknown argument: %s\n\n", arg)
			printUsage()
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := utils.InitLogger(cfg.LogFile); err != nil {
		fmt.Printf("Warning: failed to initialize logger: %v\n", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		exitWithError(err)
	}
	store := record.NewStore(cfg.DataDir)

	if plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		err = session.NewConsole(store, os.Stdin, os.Stdout).Run()
	} else {
		err = runTUI(store)
	}
	if err != nil {
		exitWithError(err)
	}
	utils.CloseLogger()
}
