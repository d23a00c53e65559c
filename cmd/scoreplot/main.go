// Package main provides the scoreplot command.
//
// scoreplot reads a record file written by scorelog and saves a PNG chart of
// the score, either per session or over wall-clock time, then opens it in the
// system image viewer.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/chart"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/config"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/ui/components"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/utils"

	"github.com/charmbracelet/huh"
	"gonum.org/v1/plot/vg"
	"golang.org/x/term"
)

// chartOptions builds render options from the configured plot settings.
func chartOptions(cfg *config.Config, sel selection) chart.Options {
	opts := chart.DefaultOptions()
	opts.Axis = sel.Axis
	opts.Curve = sel.Curve
	opts.Width = vg.Length(cfg.Plot.WidthIn) * vg.Inch
	opts.Height = vg.Length(cfg.Plot.HeightIn) * vg.Inch
	opts.DPI = cfg.Plot.DPI
	opts.Samples = cfg.Plot.Samples
	return opts
}

// resolveFile maps a command-line argument to a record in the data directory.
// The ".csv" extension may be omitted.
func resolveFile(arg string, files []string) (string, error) {
	name := filepath.Base(arg)
	if !strings.HasSuffix(name, record.Extension) {
		name += record.Extension
	}
	if !slices.Contains(files, name) {
		return "", fmt.Errorf("file %q not found", name)
	}
	return name, nil
}

// plotRecord renders sel into cfg.OutputDir and returns the saved path.
func plotRecord(cfg *config.Config, store *record.Store, sel selection) (string, error) {
	rows, err := store.Load(sel.File)
	if err != nil {
		return "", err
	}

	opts := chartOptions(cfg, sel)
	title := strings.TrimSuffix(sel.File, record.Extension)
	p, err := chart.Render(title, rows, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", sel.File, err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(cfg.OutputDir, chart.OutputName(sel.File, sel.Axis, sel.Curve))
	if err := chart.Save(p, path, opts); err != nil {
		return "", err
	}
	return path, nil
}

func printUsage() {
	fmt.Printf("scoreplot - chart a score record\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  scoreplot [options] [file.csv]\n\n")
	fmt.Printf("Options:\n")
	fmt.Printf("  --version, -v      Show version information\n")
	fmt.Printf("  --help, -h         Show this help message\n\n")
	fmt.Printf("Records are read from data_dir and charts saved to output_dir (see %s).\n", config.Path())
}

func main() {
	var fileArg string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--help", "-h", "help":
			printUsage()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("scoreplot version %s\n", components.Version)
			fmt.Printf("Git commit: %s\n", components.GitCommit)
			fmt.Printf("Built: %s\n", components.BuildTime)
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") || fileArg != "" {
				fmt.Printf("Unknown argument: %s\n\n", arg)
				printUsage()
				os.Exit(1)
			}
			fileArg = arg
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
	defer utils.CloseLogger()

	if err := run(cfg, fileArg); err != nil {
		utils.LogDebug("exiting with error: %v", err)
		hint := utils.ErrorHint()
		utils.CloseLogger()
		fmt.Printf("Error: %v\n", err)
		if hint != "" {
			fmt.Printf("(%s)\n", hint)
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, fileArg string) error {
	store := record.NewStore(cfg.DataDir)
	files, err := store.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no CSV files found in %s", cfg.DataDir)
	}

	sel := selection{Axis: chart.AxisSequence, Curve: chart.CurveSpline}
	if fileArg != "" {
		if sel.File, err = resolveFile(fileArg, files); err != nil {
			return err
		}
	}

	accessible := !term.IsTerminal(int(os.Stdin.Fd()))
	if err := newForm(files, &sel, accessible).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Cancelled.")
			return nil
		}
		return err
	}
	utils.LogDebug("plotting %s by %s (%s)", sel.File, sel.Axis, sel.Curve)

	path, err := plotRecord(cfg, store, sel)
	if err != nil {
		return err
	}
	fmt.Printf("Chart saved to %s\n", path)

	if cfg.OpenViewer {
		if err := chart.Open(path); err != nil {
			fmt.Printf("Warning: could not open viewer: %v\n", err)
		}
	}
	return nil
}
