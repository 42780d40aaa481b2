package pathfind

import "math"

// EngineState is the run state of a search.
type EngineState uint8

const (
	Idle EngineState = iota
	Running
	Success
	Failure
)

func (s EngineState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Engine drives one A* search over a grid, one expansion per Step call. The
// caller owns pacing: an external driver invokes Step once per tick, so
// animation speed — including pausing indefinitely — lives entirely outside
// the engine. The engine performs no internal concurrency; Step and grid
// mutation must not overlap within a tick.
type Engine struct {
	grid     *Grid
	frontier *Frontier
	state    EngineState
	path     []*Cell
	steps    int // expansions performed since Start
	trace    *TraceLog
}

// NewEngine creates an idle engine over the grid.
func NewEngine(g *Grid) *Engine {
	return &Engine{grid: g, frontier: NewFrontier()}
}

// SetTrace attaches a trace log for structured search events. Pass nil to
// detach.
func (e *Engine) SetTrace(t *TraceLog) { e.trace = t }

// State returns the current engine state.
func (e *Engine) State() EngineState { return e.state }

// Steps returns the number of expansions performed since the last Start.
func (e *Engine) Steps() int { return e.steps }

// Path returns a copy of the discovered path, source to destination
// inclusive. Empty unless the engine is in Success.
func (e *Engine) Path() []*Cell {
	if e.state != Success {
		return nil
	}
	out := make([]*Cell, len(e.path))
	copy(out, e.path)
	return out
}

// Reset discards all in-flight search state and returns to Idle. Always safe
// to call, from any state.
func (e *Engine) Reset() {
	e.grid.resetSearch()
	e.frontier.Clear()
	e.path = nil
	e.steps = 0
	e.state = Idle
	e.record("engine", "reset", Pos{}, "", 0)
}

// Start seeds the frontier with the source cell and transitions to Running.
// Valid only from Idle with distinct source and destination; otherwise a
// silent no-op. Returns the resulting state.
func (e *Engine) Start() EngineState {
	if e.state != Idle {
		return e.state
	}
	src := e.grid.Source()
	dst := e.grid.Destination()
	if src == nil || dst == nil || src == dst {
		return e.state
	}
	src.G = 0
	src.H = e.heuristic(src.Pos, dst.Pos)
	src.F = src.H
	src.Parent = noParent
	e.grid.setState(src, StateFrontier)
	e.frontier.Push(src)
	e.state = Running
	e.record("engine", "start", src.Pos, "→ "+dst.Pos.String(), src.H)
	return e.state
}

// Step performs one A* expansion: pop the cheapest frontier cell, close it,
// finish on the destination, otherwise relax its neighbours. Terminal states
// and Idle are left unchanged. Returns the resulting state.
func (e *Engine) Step() EngineState {
	if e.state != Running {
		return e.state
	}
	if e.frontier.IsEmpty() {
		e.state = Failure
		e.record("engine", "failure", Pos{}, "frontier exhausted", float64(e.steps))
		return e.state
	}

	current := e.frontier.PopMin()
	e.grid.setState(current, StateClosed)
	e.steps++

	dst := e.grid.Destination()
	if current == dst {
		e.buildPath(dst)
		e.state = Success
		e.record("engine", "success", dst.Pos, "", dst.G)
		return e.state
	}
	e.record("engine", "expand", current.Pos, "", current.F)

	for _, n := range e.grid.Neighbors(current) {
		if n.State == StateClosed {
			continue
		}
		tentative := current.G + edgeCost(current.Pos, n.Pos)
		if n.State == StateUnvisited || tentative < n.G {
			n.Parent = e.grid.index(current.Pos)
			n.G = tentative
			n.H = e.heuristic(n.Pos, dst.Pos)
			n.F = n.G + n.H
			e.grid.setState(n, StateFrontier)
			e.frontier.Push(n)
			e.record("engine", "relax", n.Pos, "via "+current.Pos.String(), n.G)
		}
	}
	return e.state
}

// heuristic estimates the remaining cost from a to b. Euclidean distance with
// diagonal movement, Manhattan otherwise — both admissible and consistent for
// the matching edge-cost model, so the first popped destination is optimal.
func (e *Engine) heuristic(a, b Pos) float64 {
	dx := math.Abs(float64(a.Col - b.Col))
	dy := math.Abs(float64(a.Row - b.Row))
	if e.grid.cfg.Diagonal {
		return math.Sqrt(dx*dx + dy*dy)
	}
	return dx + dy
}

// edgeCost is 1 for cardinal moves and √2 for diagonal ones.
func edgeCost(a, b Pos) float64 {
	if a.Col != b.Col && a.Row != b.Row {
		return math.Sqrt2
	}
	return 1
}

// buildPath walks parent indices back from the destination, reverses the
// sequence, and marks every cell on it StatePath.
func (e *Engine) buildPath(dst *Cell) {
	var cells []*Cell
	for c := dst; c != nil; {
		cells = append(cells, c)
		if c.Parent == noParent {
			break
		}
		c = &e.grid.cells[c.Parent]
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	for _, c := range cells {
		e.grid.setState(c, StatePath)
	}
	e.path = cells
}

func (e *Engine) record(category, key string, pos Pos, value string, numVal float64) {
	if e.trace != nil {
		e.trace.Add(e.steps, category, key, pos, value, numVal)
	}
}
