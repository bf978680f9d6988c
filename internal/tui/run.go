package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/analysis-viz/internal/common"
)

// DebugLogEnv names a file that receives log output while the TUI owns the
// terminal.
const DebugLogEnv = "VIZ_DEBUG_LOG"

// Run starts the TUI on the index, or on routeID when it is not empty, and
// blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, routeID string, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := newModel(cfg, routeID)
	if err != nil {
		return err
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	// Set up terminal cleanup on any exit
	cleanupTerminal := func() {
		// Ignore errors as this is best-effort cleanup
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
		_, _ = os.Stdout.Write([]byte("\033[?1000l")) // Disable mouse
	}
	defer cleanupTerminal()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.MouseSupport {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs keeps slog off the alternate screen. Output goes to the file
// named by VIZ_DEBUG_LOG, or nowhere.
func redirectLogs() (func(), error) {
	previous := slog.Default()
	restore := func() { slog.SetDefault(previous) }

	path := os.Getenv(DebugLogEnv)
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return restore, nil
	}

	f, err := tea.LogToFile(path, "viz")
	if err != nil {
		return nil, common.NewUserError("could not open debug log", err)
	}
	handler, err := common.NewHandler(f, slog.LevelDebug, "console")
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	slog.SetDefault(slog.New(handler))
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
