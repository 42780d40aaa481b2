package pathfind

// EditIntent is an abstract editing action, decoupled from any input device.
// The view maps mouse/keyboard gestures onto these; tests and the headless
// CLI apply them directly.
type EditIntent uint8

const (
	EditToggleObstacle EditIntent = iota
	EditClearObstacle
	EditSetSource
	EditSetDestination
)

func (i EditIntent) String() string {
	switch i {
	case EditToggleObstacle:
		return "toggle-obstacle"
	case EditClearObstacle:
		return "clear-obstacle"
	case EditSetSource:
		return "set-source"
	case EditSetDestination:
		return "set-destination"
	default:
		return "unknown"
	}
}

// Editor applies edit intents to the grid and resets the engine whenever an
// edit actually changes the board, so a stale partial search is never
// rendered as valid. Failed edits — out of bounds, guarded cells, no-op
// toggles — leave the engine alone.
type Editor struct {
	grid   *Grid
	engine *Engine
	trace  *TraceLog
}

// NewEditor creates an editor over the grid and engine.
func NewEditor(g *Grid, e *Engine) *Editor {
	return &Editor{grid: g, engine: e}
}

// SetTrace attaches a trace log for edit events. Pass nil to detach.
func (ed *Editor) SetTrace(t *TraceLog) { ed.trace = t }

// Apply performs the intent at pos. Returns true if the grid changed (and the
// engine was reset).
func (ed *Editor) Apply(intent EditIntent, pos Pos) bool {
	changed := false
	switch intent {
	case EditToggleObstacle:
		c := ed.grid.At(pos)
		if c == nil {
			return false
		}
		changed = ed.grid.SetObstacle(pos, c.Role != RoleObstacle)
	case EditClearObstacle:
		changed = ed.grid.SetObstacle(pos, false)
	case EditSetSource:
		changed = ed.grid.SetSource(pos)
	case EditSetDestination:
		changed = ed.grid.SetDestination(pos)
	}
	if changed {
		ed.engine.Reset()
		if ed.trace != nil {
			ed.trace.Add(0, "edit", intent.String(), pos, "", 0)
		}
	}
	return changed
}
