package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"
)

// RunModel starts the Bubble Tea program. Width/height of 0 auto-detect the
// terminal size and fall back to 80×24. Extra ProgramOptions (e.g. custom IO
// for tests) are passed through to tea.NewProgram.
func RunModel(m *Model, width, height int, opts ...tea.ProgramOption) error {
	runW, runH := width, height
	if runW <= 0 || runH <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if runW <= 0 {
				runW = w
			}
			if runH <= 0 {
				runH = h
			}
		}
	}
	if runW <= 0 {
		runW = 80
	}
	if runH <= 0 {
		runH = 24
	}
	m.winW = runW
	m.winH = runH
	m.input.SetWidth(maxInt(1, runW-2))
	m.ensureCursorVisible()
	opts = append(opts, tea.WithWindowSize(runW, runH))

	prog := tea.NewProgram(m, opts...)
	_, err := prog.Run()
	return err
}

// Snapshot renders one frame at the given size without entering the event
// loop. Used by the non-interactive --snapshot flag and by tests.
func (m *Model) Snapshot(width, height int) string {
	if width > 0 {
		m.winW = width
	}
	if height > 0 {
		m.winH = height
	}
	m.ensureCursorVisible()
	return m.render()
}
