package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recipe-book/internal/adapters/driven/config/file"
	"github.com/custodia-labs/recipe-book/internal/adapters/driving/tui"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

// LogFile is the name of the log written while the TUI owns the terminal.
const LogFile = "recipes.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for the recipe book.

The screen shows a form for adding or editing a recipe above a table of
all recipes.

Controls:
  Tab/Shift+Tab - Move between name, ingredients and table
  Ctrl+S        - Save the form
  e             - Edit the selected recipe
  d             - Delete the selected recipe
  Esc           - Cancel edit / leave the form
  ?             - Help
  q, Ctrl+C     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// logPath returns where TUI logs go: next to the config file.
func logPath() (string, error) {
	if settingsService != nil {
		if p := settingsService.Path(); filepath.IsAbs(p) {
			return filepath.Join(filepath.Dir(p), LogFile), nil
		}
	}
	dir, err := file.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFile), nil
}

// redirectLogs sends log output to the TUI log file and returns a restore func.
func redirectLogs() (func(), error) {
	path, err := logPath()
	if err != nil {
		return nil, fmt.Errorf("resolving log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	prev := logger.SetOutput(f)
	return func() {
		logger.SetOutput(prev)
		f.Close() //nolint:errcheck
	}, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	book, err := openBook()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(book))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
