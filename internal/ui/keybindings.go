package ui

// Action is a normal-mode command resolved from a key press.
type Action string

const (
	ActionNone          Action = ""
	ActionLeft          Action = "left"
	ActionRight         Action = "right"
	ActionUp            Action = "up"
	ActionDown          Action = "down"
	ActionTop           Action = "top"
	ActionBottom        Action = "bottom"
	ActionRowStart      Action = "row_start"
	ActionRowEnd        Action = "row_end"
	ActionToggleSelect  Action = "toggle_select"
	ActionCollapse      Action = "collapse"
	ActionNarrowSelect  Action = "narrow_select"
	ActionWidenSelect   Action = "widen_select"
	ActionShrinkCols    Action = "shrink_cols"
	ActionGrowCols      Action = "grow_cols"
	ActionShrinkIndex   Action = "shrink_index"
	ActionGrowIndex     Action = "grow_index"
	ActionToggleHeader  Action = "toggle_header"
	ActionToggleIndex   Action = "toggle_index"
	ActionSearch        Action = "search"
	ActionNextMatch     Action = "next_match"
	ActionPrevMatch     Action = "prev_match"
	ActionCommand       Action = "command"
	ActionQuit          Action = "quit"
	ActionDebug         Action = "debug"
	ActionPendingLowerG Action = "pending_g"
	ActionPendingUpperG Action = "pending_G"
)

// NormalKeyBindings maps normal-mode keys to actions. Motion keys accept a
// numeric count prefix; absolute jumps (gg/GG/^/$) discard any pending
// count.
var NormalKeyBindings = map[string]Action{
	"h":     ActionLeft,
	"left":  ActionLeft,
	"l":     ActionRight,
	"right": ActionRight,
	"k":     ActionUp,
	"up":    ActionUp,
	"j":     ActionDown,
	"down":  ActionDown,
	"g":     ActionPendingLowerG,
	"G":     ActionPendingUpperG,
	"^":     ActionRowStart,
	"$":     ActionRowEnd,
	"v":     ActionToggleSelect,
	"esc":   ActionCollapse,
	",":     ActionNarrowSelect,
	".":     ActionWidenSelect,
	"<":     ActionShrinkCols,
	">":     ActionGrowCols,
	"[":     ActionShrinkIndex,
	"]":     ActionGrowIndex,
	"t":     ActionToggleHeader,
	"y":     ActionToggleIndex,
	"/":     ActionSearch,
	"n":     ActionNextMatch,
	"p":     ActionPrevMatch,
	":":     ActionCommand,
	"q":     ActionQuit,
	"d":     ActionDebug,
}

// countedActions are the actions a repeat count multiplies.
var countedActions = map[Action]bool{
	ActionLeft:         true,
	ActionRight:        true,
	ActionUp:           true,
	ActionDown:         true,
	ActionNarrowSelect: true,
	ActionWidenSelect:  true,
}

// resolveKey turns a normal-mode key string into an action, tracking the
// two-key gg/GG sequences and the digit accumulator on the model. It returns
// ActionNone for keys that only update pending state.
func (m *Model) resolveKey(keyStr string) Action {
	// Digits accumulate a repeat count and abandon any pending g/G.
	if len(keyStr) == 1 && keyStr[0] >= '0' && keyStr[0] <= '9' {
		// A leading zero with no count in progress is not a count.
		if m.count == "" && keyStr == "0" {
			m.pendingKey = ""
			return ActionNone
		}
		m.count += keyStr
		m.pendingKey = ""
		return ActionNone
	}

	if m.pendingKey != "" {
		pending := m.pendingKey
		m.pendingKey = ""
		if pending == keyStr {
			if pending == "g" {
				return ActionTop
			}
			return ActionBottom
		}
		// The pending key is consumed without an action; the new key is
		// resolved on its own below.
	}

	action, ok := NormalKeyBindings[keyStr]
	if !ok {
		m.count = ""
		return ActionNone
	}
	switch action {
	case ActionPendingLowerG:
		m.pendingKey = "g"
		return ActionNone
	case ActionPendingUpperG:
		m.pendingKey = "G"
		return ActionNone
	}
	if !countedActions[action] {
		m.count = ""
	}
	return action
}

// takeCount consumes the accumulated repeat count, defaulting to one.
func (m *Model) takeCount() int {
	if m.count == "" {
		return 1
	}
	n := 0
	for _, ch := range m.count {
		n = n*10 + int(ch-'0')
		if n > 1_000_000 {
			n = 1_000_000
			break
		}
	}
	m.count = ""
	if n < 1 {
		return 1
	}
	return n
}
