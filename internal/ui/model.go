package ui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/tabx/internal/config"
	"github.com/oakwood-commons/tabx/internal/eval"
	"github.com/oakwood-commons/tabx/internal/search"
	"github.com/oakwood-commons/tabx/pkg/frame"
	"github.com/oakwood-commons/tabx/pkg/logger"
)

// Mode is the input mode of the UI. Exactly one mode is active at a time;
// entry modes own the bottom bar and swallow every key until committed or
// cancelled.
type Mode int

const (
	// NormalMode is vi-style navigation over the grid.
	NormalMode Mode = iota
	// SearchEntryMode is typing after '/'.
	SearchEntryMode
	// CommandEntryMode is typing after ':'.
	CommandEntryMode
)

// searchResultMsg delivers a finished (or failed) table scan back to the
// Update loop. Stale results are dropped by sequence number and by the view
// they were started from, so a scan outlived by a push or pop never lands
// in a different view's state.
type searchResultMsg struct {
	seq     int
	view    *ViewState
	query   string
	matches []search.Match
	err     error
}

// Model is the single bubbletea model of the viewer. All mutation happens in
// Update on the program goroutine; the only concurrent work is the search
// scan command, which reports back via searchResultMsg.
type Model struct {
	stack []*ViewState
	mode  Mode

	input     textinput.Model
	evaluator *eval.Evaluator
	theme     Theme
	display   config.Display
	log       *logr.Logger

	winW int
	winH int

	// normal-mode key state
	count      string
	pendingKey string

	// bottom bar content
	errMsg    string
	statusMsg string

	// in-flight search scan
	searchSeq    int
	searchCancel context.CancelFunc

	noColor  bool
	quitting bool
}

// NewModel builds the model for a loaded frame.
func NewModel(fr frame.Frame, cfg *config.Config, noColor bool) (*Model, error) {
	evaluator, err := eval.NewEvaluator()
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.CharLimit = 500
	ti.SetWidth(80)
	ti.Prompt = ""

	if cfg == nil {
		cfg = config.Default()
	}

	return &Model{
		stack:     []*ViewState{NewViewState(fr, cfg.Display)},
		input:     ti,
		evaluator: evaluator,
		theme:     NewTheme(cfg.Theme, noColor),
		display:   cfg.Display,
		log:       logger.GetGlobalLogger(),
		winW:      80,
		winH:      24,
		noColor:   noColor,
	}, nil
}

// current returns the top of the view stack, which always has at least the
// base view.
func (m *Model) current() *ViewState {
	return m.stack[len(m.stack)-1]
}

// Depth returns the view stack depth.
func (m *Model) Depth() int {
	return len(m.stack)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winW = msg.Width
		m.winH = msg.Height
		m.input.SetWidth(maxInt(1, m.winW-2))
		m.ensureCursorVisible()
		return m, nil

	case searchResultMsg:
		return m.applySearchResult(msg)

	case tea.KeyMsg:
		keyStr := msg.String()
		if keyStr == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case SearchEntryMode, CommandEntryMode:
			return m.updateEntry(msg, keyStr)
		default:
			return m.updateNormal(keyStr)
		}
	}
	return m, nil
}

// updateEntry handles keys while the bottom bar owns input.
func (m *Model) updateEntry(msg tea.Msg, keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "enter":
		value := m.input.Value()
		entered := m.mode
		m.mode = NormalMode
		m.input.Blur()
		if entered == SearchEntryMode {
			return m, m.commitSearch(value)
		}
		m.runCommand(value)
		return m, nil
	case "esc":
		m.mode = NormalMode
		m.input.Blur()
		m.statusMsg = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateNormal dispatches a normal-mode key.
func (m *Model) updateNormal(keyStr string) (tea.Model, tea.Cmd) {
	vs := m.current()
	m.errMsg = ""

	// esc first cancels a scan still in flight.
	if keyStr == "esc" && m.searchCancel != nil {
		m.cancelScan()
		m.statusMsg = "search cancelled"
	}

	action := m.resolveKey(keyStr)
	switch action {
	case ActionNone:
		return m, nil

	case ActionLeft, ActionRight, ActionUp, ActionDown:
		n := m.takeCount()
		dr, dc := 0, 0
		switch action {
		case ActionLeft:
			dc = -n
		case ActionRight:
			dc = n
		case ActionUp:
			dr = -n
		case ActionDown:
			dr = n
		}
		vs.MoveCursor(dr, dc)

	case ActionTop:
		m.count = "" // counts do not apply to absolute jumps
		vs.JumpCursor(0, vs.Cursor.Col)
	case ActionBottom:
		m.count = ""
		rows, _ := vs.Frame.Shape()
		vs.JumpCursor(rows-1, vs.Cursor.Col)
	case ActionRowStart:
		m.count = ""
		vs.JumpCursor(vs.Cursor.Row, 0)
	case ActionRowEnd:
		m.count = ""
		_, cols := vs.Frame.Shape()
		vs.JumpCursor(vs.Cursor.Row, cols-1)

	case ActionToggleSelect:
		vs.ToggleSelection()
	case ActionCollapse:
		vs.CollapseSelection()
		vs.Search.Clear()
	case ActionNarrowSelect:
		vs.AdjustSelectionWidth(-m.takeCount())
	case ActionWidenSelect:
		vs.AdjustSelectionWidth(m.takeCount())

	case ActionShrinkCols:
		vs.Sizing.AdjustAll(-1)
	case ActionGrowCols:
		vs.Sizing.AdjustAll(1)
	case ActionShrinkIndex:
		vs.Sizing.AdjustIndex(-1)
	case ActionGrowIndex:
		vs.Sizing.AdjustIndex(1)

	case ActionToggleHeader:
		vs.HeaderVisible = !vs.HeaderVisible
	case ActionToggleIndex:
		vs.IndexVisible = !vs.IndexVisible

	case ActionSearch:
		m.mode = SearchEntryMode
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case ActionNextMatch, ActionPrevMatch:
		if len(vs.Search.Matches) == 0 && vs.Search.Query != "" {
			// Highlighting was dismissed; rerun the kept query.
			return m, m.commitSearch(vs.Search.Query)
		}
		m.jumpMatch(action == ActionNextMatch)

	case ActionCommand:
		m.mode = CommandEntryMode
		m.input.SetValue("_")
		m.input.SetCursor(len(m.input.Value()))
		m.input.Focus()
		return m, textinput.Blink

	case ActionQuit:
		if len(m.stack) > 1 {
			// Pop restores the previous view exactly as it was left:
			// cursor, selection, sizing, and search all live on the
			// ViewState.
			m.cancelScan()
			m.stack = m.stack[:len(m.stack)-1]
			m.statusMsg = fmt.Sprintf("view %d", len(m.stack))
			m.ensureCursorVisible()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case ActionDebug:
		// Escape hatch: yield the terminal to whoever launched us.
		return m, tea.Suspend
	}

	m.ensureCursorVisible()
	return m, nil
}

// commitSearch starts the asynchronous table scan for query. An empty query
// clears the match set without touching query history semantics.
func (m *Model) commitSearch(query string) tea.Cmd {
	m.cancelScan()
	vs := m.current()
	if query == "" {
		vs.Search.Set("", nil)
		return nil
	}

	m.searchSeq++
	seq := m.searchSeq
	ctx, cancel := context.WithCancel(context.Background())
	m.searchCancel = cancel
	fr := vs.Frame
	m.statusMsg = "searching…"

	return func() tea.Msg {
		matches, err := search.Run(ctx, fr, query)
		return searchResultMsg{seq: seq, view: vs, query: query, matches: matches, err: err}
	}
}

// cancelScan abandons any scan still in flight.
func (m *Model) cancelScan() {
	if m.searchCancel != nil {
		m.searchCancel()
		m.searchCancel = nil
	}
}

// applySearchResult installs a finished scan and jumps to its first match.
func (m *Model) applySearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		return m, nil // stale scan, a newer query superseded it
	}
	if msg.view != m.current() {
		return m, nil // the view the scan was started from is gone
	}
	m.searchCancel = nil
	if msg.err != nil {
		if msg.err == context.Canceled {
			return m, nil
		}
		m.errMsg = msg.err.Error()
		return m, nil
	}

	vs := m.current()
	vs.Search.Set(msg.query, msg.matches)
	if len(msg.matches) == 0 {
		m.statusMsg = fmt.Sprintf("no match: %s", msg.query)
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("%d matches", len(msg.matches))
	m.jumpMatch(true)
	return m, nil
}

// jumpMatch cycles to the next or previous search match and moves the
// cursor there. With no matches it is a defined no-op.
func (m *Model) jumpMatch(forward bool) {
	vs := m.current()
	var match search.Match
	var ok bool
	if forward {
		match, ok = vs.Search.Next()
	} else {
		match, ok = vs.Search.Prev()
	}
	if !ok {
		if vs.Search.Query != "" {
			m.statusMsg = fmt.Sprintf("no match: %s", vs.Search.Query)
		}
		return
	}
	vs.JumpCursor(match.Row, match.Col)
	m.ensureCursorVisible()
}

// runCommand evaluates a command-mode expression against the current
// selection. Success pushes a new view; failure reports inline and leaves
// every piece of state untouched.
func (m *Model) runCommand(expr string) {
	if strings.TrimSpace(expr) == "" {
		return
	}
	vs := m.current()
	result, err := m.evaluator.Evaluate(expr, vs.SelectionFrame())
	if err != nil {
		m.errMsg = err.Error()
		m.log.V(1).Info("command failed", "expr", expr, "error", err.Error())
		return
	}

	m.cancelScan()
	next := NewViewState(result, m.display)
	m.stack = append(m.stack, next)
	rows, cols := result.Shape()
	m.statusMsg = fmt.Sprintf("view %d: %d×%d", len(m.stack), rows, cols)
	m.log.V(1).Info("command pushed view", "expr", expr, "rows", rows, "cols", cols)
	m.ensureCursorVisible()
}

// dataRows returns how many table rows fit under the header and above the
// bottom bar.
func (m *Model) dataRows() int {
	vs := m.current()
	rows := m.winH - 1 // bottom bar
	if vs.HeaderVisible {
		rows--
	}
	return maxInt(0, rows)
}

// dataBudget returns the display cells available for data columns.
func (m *Model) dataBudget() int {
	vs := m.current()
	budget := m.winW
	if vs.IndexVisible {
		budget -= vs.Sizing.IndexWidth()
	}
	return maxInt(0, budget)
}

// ensureCursorVisible recomputes the minimal scroll for the current view.
func (m *Model) ensureCursorVisible() {
	vs := m.current()
	rows, cols := vs.Frame.Shape()
	vs.Viewport.EnsureRowVisible(vs.Cursor.Row, m.dataRows(), rows)
	vs.Viewport.EnsureColVisible(vs.Cursor.Col, m.dataBudget(), vs.Sizing, cols)
}

func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
