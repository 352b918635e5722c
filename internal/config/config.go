// internal/config/config.go
//
// This package handles configuration and the .todo directory structure.
// Every directory todo runs in gets a .todo/ folder holding config.yaml and
// the log files. Tasks and their history are never written here.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	// TodoDir is the name of the directory we create in each working directory
	TodoDir = ".todo"

	UIModeMenu = "menu"
	UIModeTUI  = "tui"

	defaultOwner   = "User"
	defaultLogTail = 8
)

const defaultProjectConfigYAML = `# todo configuration
version: 1

# Name shown above the task list.
owner: User

ui:
  # menu: numbered prompt loop. tui: full-screen interface.
  mode: menu

history:
  # Maximum snapshots kept for undo. 0 keeps every snapshot for the session.
  limit: 0

log:
  # Number of journey log lines shown in the TUI side panel. 0 hides the panel.
  tail: 8
`

// UIConfig selects the front end.
type UIConfig struct {
	Mode string `yaml:"mode"`
}

// HistoryConfig tunes the undo history.
type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

// LogConfig tunes log display.
type LogConfig struct {
	Tail int `yaml:"tail"`
}

// ProjectConfig models .todo/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Owner   string        `yaml:"owner"`
	UI      UIConfig      `yaml:"ui"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// envOverrides are read with cleanenv. Empty values leave the file setting alone.
type envOverrides struct {
	Owner        string `env:"TODO_OWNER"`
	UIMode       string `env:"TODO_UI_MODE"`
	HistoryLimit string `env:"TODO_HISTORY_LIMIT"`
	LogTail      string `env:"TODO_LOG_TAIL"`
}

// Config holds the runtime configuration for todo.
type Config struct {
	// ProjectDir is the directory where the user ran `todo` from
	ProjectDir string

	// TodoProjectDir is ProjectDir/.todo
	TodoProjectDir string

	Project ProjectConfig
}

// InitDir creates the .todo directory structure in the given directory.
//
// Structure created:
// .todo/
// ├── config.yaml
// └── logs/        <- todo.log and journey.log
func InitDir(projectDir string) error {
	todoDir := filepath.Join(projectDir, TodoDir)
	if err := os.MkdirAll(filepath.Join(todoDir, "logs"), 0755); err != nil {
		return err
	}
	return ensureProjectConfig(filepath.Join(todoDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings and
// any TODO_* environment overrides.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:     projectDir,
		TodoProjectDir: filepath.Join(projectDir, TodoDir),
		Project:        defaultProjectConfig(),
	}

	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateFile parses and validates a standalone config file.
func ValidateFile(path string) (ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	parsed, err := parseProjectConfig(data)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return parsed, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.TodoProjectDir, "logs")
}

// LogPath returns the diagnostic log file path
func (c *Config) LogPath() string {
	return filepath.Join(c.LogsDir(), "todo.log")
}

// JourneyPath returns the journey logbook path
func (c *Config) JourneyPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.TodoProjectDir, "config.yaml")
}

// Owner returns the configured list owner.
func (c *Config) Owner() string {
	return c.Project.Owner
}

// UIMode returns "menu" or "tui".
func (c *Config) UIMode() string {
	return c.Project.UI.Mode
}

// HistoryLimit returns the snapshot retention cap, 0 for unlimited.
func (c *Config) HistoryLimit() int {
	return c.Project.History.Limit
}

// LogTail returns how many journey lines the TUI shows.
func (c *Config) LogTail() int {
	return c.Project.Log.Tail
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed, err := parseProjectConfig(data)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	c.Project = parsed
	return nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	pc := c.Project
	if v := strings.TrimSpace(env.Owner); v != "" {
		pc.Owner = v
	}
	if v := strings.TrimSpace(env.UIMode); v != "" {
		pc.UI.Mode = v
	}
	if v := strings.TrimSpace(env.HistoryLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: TODO_HISTORY_LIMIT: %w", err)
		}
		pc.History.Limit = n
	}
	if v := strings.TrimSpace(env.LogTail); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: TODO_LOG_TAIL: %w", err)
		}
		pc.Log.Tail = n
	}
	pc.normalize()
	if err := pc.validate(); err != nil {
		return fmt.Errorf("config: env: %w", err)
	}
	c.Project = pc
	return nil
}

func parseProjectConfig(data []byte) (ProjectConfig, error) {
	// Keys missing from the file keep their defaults; explicit zeros stay zero.
	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return ProjectConfig{}, fmt.Errorf("parse: %w", err)
	}
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return ProjectConfig{}, err
	}
	return parsed, nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Owner:   defaultOwner,
		UI:      UIConfig{Mode: UIModeMenu},
		Log:     LogConfig{Tail: defaultLogTail},
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Owner = strings.TrimSpace(pc.Owner)
	if pc.Owner == "" {
		pc.Owner = defaultOwner
	}
	pc.UI.Mode = strings.ToLower(strings.TrimSpace(pc.UI.Mode))
	if pc.UI.Mode == "" {
		pc.UI.Mode = UIModeMenu
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	switch pc.UI.Mode {
	case UIModeMenu, UIModeTUI:
	default:
		return fmt.Errorf("ui.mode must be 'menu' or 'tui'")
	}
	if pc.History.Limit < 0 {
		return fmt.Errorf("history.limit must be >= 0")
	}
	if pc.Log.Tail < 0 {
		return fmt.Errorf("log.tail must be >= 0")
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}
