// Package config provides configuration for the score tools.
//
// Settings come from, in increasing priority: built-in defaults, a YAML file
// (~/.scorelog/config.yml or $SCORELOG_CONFIG), and environment variables,
// which may themselves be set in a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFilename = "config.yml"

// Config holds settings shared by scorelog and scoreplot.
type Config struct {
	// DataDir is where record files are listed, created and read.
	DataDir string `yaml:"data_dir"`
	// OutputDir receives rendered charts.
	OutputDir string `yaml:"output_dir"`
	// OpenViewer opens a saved chart in the system image viewer.
	OpenViewer bool `yaml:"open_viewer"`
	// LogFile is the debug log.
	LogFile string `yaml:"log_file"`
	Plot    Plot   `yaml:"plot"`
}

// Plot holds chart output settings.
type Plot struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	DPI      int     `yaml:"dpi"`
	Samples  int     `yaml:"samples"`
}

// HomeDir returns the per-user settings directory, ~/.scorelog.
func HomeDir() string {
	return filepath.Join(userHome(), ".scorelog")
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv("HOME")
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:    ".",
		OutputDir:  filepath.Join(userHome(), "Desktop"),
		OpenViewer: true,
		LogFile:    filepath.Join(HomeDir(), "debug.log"),
		Plot: Plot{
			WidthIn:  12,
			HeightIn: 6,
			DPI:      300,
			Samples:  300,
		},
	}
}

// Path returns the config file to read: $SCORELOG_CONFIG when set, else
// ~/.scorelog/config.yml.
func Path() string {
	if p := os.Getenv("SCORELOG_CONFIG"); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(HomeDir(), configFilename)
}

// Load reads .env, the config file if it exists, and environment overrides.
func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	cfg := Default()
	if err := cfg.mergeFile(Path()); err != nil {
		return nil, err
	}
	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}
	cfg.expand()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads settings from a YAML file on top of the defaults. Missing
// keys keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	cfg.expand()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv("SCORELOG_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SCORELOG_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("SCORELOG_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("SCORELOG_NO_OPEN"); v != "" {
		noOpen, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SCORELOG_NO_OPEN %q: %w", v, err)
		}
		c.OpenViewer = !noOpen
	}
	return nil
}

func (c *Config) expand() {
	c.DataDir = ExpandHome(c.DataDir)
	c.OutputDir = ExpandHome(c.OutputDir)
	c.LogFile = ExpandHome(c.LogFile)
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.Plot.WidthIn <= 0 || c.Plot.HeightIn <= 0 {
		return fmt.Errorf("plot size must be positive, got %gx%g", c.Plot.WidthIn, c.Plot.HeightIn)
	}
	if c.Plot.DPI <= 0 {
		return fmt.Errorf("plot dpi must be positive, got %d", c.Plot.DPI)
	}
	if c.Plot.Samples < 2 {
		return fmt.Errorf("plot samples must be at least 2, got %d", c.Plot.Samples)
	}
	return nil
}

// Init writes the default settings to path unless a file is already there,
// then reads the file back. created reports whether the file was written.
func Init(path string) (cfg *Config, created bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		def := Default()
		if err := def.Save(path); err != nil {
			return nil, false, err
		}
		created = true
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err = LoadFile(path)
	if err != nil {
		return nil, created, err
	}
	return cfg, created, nil
}

// Save writes the settings to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		return userHome()
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(userHome(), path[2:])
	}
	return path
}
