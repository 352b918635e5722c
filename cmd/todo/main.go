// cmd/todo/main.go
//
// This is the entry point for the todo CLI.
//
// Flow:
// 1. Handle one-shot subcommands (check-config)
// 2. Prepare the .todo folder, config and logs in the working directory
// 3. Build a Session and hand it to the menu or the TUI
//
// Nothing is saved when the program exits; the task list and its history
// live only as long as the process.

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/todo-history/internal/config"
	"github.com/kingrea/todo-history/internal/history"
	"github.com/kingrea/todo-history/internal/logbook"
	"github.com/kingrea/todo-history/internal/logging"
	"github.com/kingrea/todo-history/internal/menu"
	"github.com/kingrea/todo-history/internal/session"
	"github.com/kingrea/todo-history/internal/tui"
)

const usage = `Usage:
  todo                    start with the front end from .todo/config.yaml
  todo menu               numbered prompt menu
  todo tui                full-screen interface
  todo check-config FILE  validate a config file`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	mode := ""
	if len(args) > 0 {
		switch args[0] {
		case "check-config":
			return runCheckConfig(args[1:], stdout, stderr)
		case config.UIModeMenu, config.UIModeTUI:
			mode = args[0]
		case "-h", "--help", "help":
			fmt.Fprintln(stdout, usage)
			return 0
		default:
			fmt.Fprintf(stderr, "Unknown command %q\n%s\n", args[0], usage)
			return 2
		}
	}

	// Get the current working directory - the .todo folder lives here
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "Error getting working directory: %v\n", err)
		return 1
	}
	if err := config.InitDir(cwd); err != nil {
		fmt.Fprintf(stderr, "Error initializing %s directory: %v\n", config.TodoDir, err)
		return 1
	}
	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if mode == "" {
		mode = cfg.UIMode()
	}

	logger, err := logging.New(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(stderr, "Error opening log: %v\n", err)
		return 1
	}
	defer logger.Close()

	lb, err := logbook.New(cfg.JourneyPath())
	if err != nil {
		logger.Errorf("open journey log", err)
	}

	s := newSession(cfg, lb)
	lb.SetTag(shortID(s.ID()))
	lb.Info("Session opened · owner %s · %s mode · history %s", s.Owner(), mode, describeLimit(s.History().Limit()))
	logger.Printf("session %s started in %s mode", s.ID(), mode)

	switch mode {
	case config.UIModeTUI:
		p := tea.NewProgram(
			tui.NewApp(cfg, s, tui.WithLogbook(lb)),
			tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
			tea.WithInput(stdin),
			tea.WithOutput(stdout),
		)
		// Run blocks until the user quits
		if _, err := p.Run(); err != nil {
			logger.Errorf("run tui", err)
			fmt.Fprintf(stderr, "Error running TUI: %v\n", err)
			return 1
		}
	default:
		if err := menu.New(s, stdin, stdout, menu.WithLogger(logger)).Run(); err != nil {
			logger.Errorf("read input", err)
			fmt.Fprintf(stderr, "Error reading input: %v\n", err)
			return 1
		}
	}

	lb.Info("Session closed · %d task(s) discarded", s.Len())
	logger.Printf("session %s ended", s.ID())
	return 0
}

func newSession(cfg *config.Config, lb *logbook.Logbook) *session.Session {
	opts := []session.Option{
		session.WithHistory(history.New(history.WithLimit(cfg.HistoryLimit()))),
	}
	if lb != nil {
		opts = append(opts, session.WithJournal(lb))
	}
	return session.New(cfg.Owner(), opts...)
}

// describeLimit renders a history limit, 0 meaning unlimited.
func describeLimit(n int) string {
	if n > 0 {
		return fmt.Sprintf("limit %d", n)
	}
	return "unlimited"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
