// Package tui is the embedding surface for the viewer: host applications
// can open any frame.Frame in the interactive grid, or render a one-shot
// snapshot, without going through the CLI.
package tui

import (
	"io"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/tabx/internal/config"
	"github.com/oakwood-commons/tabx/internal/ui"
	"github.com/oakwood-commons/tabx/pkg/frame"
)

// defaultFallbackTermWidth is used when terminal size cannot be detected.
const defaultFallbackTermWidth = 120

// Config controls how an embedded viewer is launched. The zero value
// auto-detects the window size and uses the built-in theme.
type Config struct {
	// Width and Height fix the window size; zero means detect.
	Width  int
	Height int
	// NoColor degrades all styling to reverse/underline attributes.
	NoColor bool
	// ConfigPath points at a YAML config file. Empty means the default
	// location; a missing file falls back to built-in defaults.
	ConfigPath string
}

// DetectTerminalSize returns the best-effort terminal width and height by
// probing stdout, stderr, and stdin, then falling back to the COLUMNS
// environment variable. If detection fails completely it returns generous
// defaults to avoid overly narrow output in CI or non-TTY environments.
func DetectTerminalSize() (width int, height int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 0
		}
	}
	return defaultFallbackTermWidth, 24
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// Run opens fr in the interactive viewer and blocks until the user quits.
// Optional tea.ProgramOption values control IO, which tests use to drive the
// program headlessly.
func Run(fr frame.Frame, cfg Config, opts ...tea.ProgramOption) error {
	fileCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}
	m, err := ui.NewModel(fr, fileCfg, cfg.NoColor)
	if err != nil {
		return err
	}
	return ui.RunModel(m, cfg.Width, cfg.Height, opts...)
}

// RenderSnapshot renders one frame of the viewer as a plain string without
// entering the event loop.
func RenderSnapshot(fr frame.Frame, cfg Config) (string, error) {
	fileCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return "", err
	}
	m, err := ui.NewModel(fr, fileCfg, cfg.NoColor)
	if err != nil {
		return "", err
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		w, h := DetectTerminalSize()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}
	return m.Snapshot(width, height), nil
}

// WithIO returns tea.ProgramOptions to set custom input/output.
func WithIO(in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	return opts
}
