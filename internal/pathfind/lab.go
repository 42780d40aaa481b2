package pathfind

// Lab is a headless assembly of grid, engine, editor, and animator. It
// mirrors the interactive app's wiring without any rendering dependency and
// is used by tests and the headless CLI. Construction is deterministic: infra
// options (grid shape, movement model, tracing) apply first, then cell edits.
type Lab struct {
	Grid     *Grid
	Engine   *Engine
	Editor   *Editor
	Animator *Animator
	Trace    *TraceLog
}

type labConfig struct {
	cols  int
	rows  int
	cfg   Config
	trace bool
}

// labOptionKind controls the pass in which an option is applied.
type labOptionKind int

const (
	labOptInfra labOptionKind = iota // grid shape, movement model, tracing
	labOptEdit                       // endpoint moves and obstacles
)

// LabOption is a builder function applied to a Lab during construction.
type LabOption struct {
	kind  labOptionKind
	infra func(*labConfig)
	edit  func(*Lab)
}

// WithGridSize sets the lattice dimensions.
func WithGridSize(cols, rows int) LabOption {
	return LabOption{kind: labOptInfra, infra: func(c *labConfig) {
		c.cols = cols
		c.rows = rows
	}}
}

// WithDiagonal enables or disables 8-connected movement.
func WithDiagonal(on bool) LabOption {
	return LabOption{kind: labOptInfra, infra: func(c *labConfig) {
		c.cfg.Diagonal = on
	}}
}

// WithCornerCutting allows diagonal steps to squeeze past flanking obstacles.
func WithCornerCutting(on bool) LabOption {
	return LabOption{kind: labOptInfra, infra: func(c *labConfig) {
		c.cfg.CutCorners = on
	}}
}

// WithTrace attaches a TraceLog to the engine and editor.
func WithTrace() LabOption {
	return LabOption{kind: labOptInfra, infra: func(c *labConfig) {
		c.trace = true
	}}
}

// WithSource moves the source designation.
func WithSource(col, row int) LabOption {
	return LabOption{kind: labOptEdit, edit: func(l *Lab) {
		l.Editor.Apply(EditSetSource, Pos{Col: col, Row: row})
	}}
}

// WithDestination moves the destination designation.
func WithDestination(col, row int) LabOption {
	return LabOption{kind: labOptEdit, edit: func(l *Lab) {
		l.Editor.Apply(EditSetDestination, Pos{Col: col, Row: row})
	}}
}

// WithObstacle marks a single cell as an obstacle.
func WithObstacle(col, row int) LabOption {
	return LabOption{kind: labOptEdit, edit: func(l *Lab) {
		l.Grid.SetObstacle(Pos{Col: col, Row: row}, true)
	}}
}

// WithObstacleRect marks the inclusive span (col0,row0)-(col1,row1) as
// obstacles. Cells holding an endpoint are skipped, as in manual editing.
func WithObstacleRect(col0, row0, col1, row1 int) LabOption {
	return LabOption{kind: labOptEdit, edit: func(l *Lab) {
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				l.Grid.SetObstacle(Pos{Col: col, Row: row}, true)
			}
		}
	}}
}

// NewLab builds a lab from options. Defaults: 32×32, diagonals on,
// corner-cutting off, no trace.
func NewLab(opts ...LabOption) *Lab {
	c := labConfig{cols: 32, rows: 32, cfg: Config{Diagonal: true}}
	for _, o := range opts {
		if o.kind == labOptInfra {
			o.infra(&c)
		}
	}

	grid := NewGrid(c.cols, c.rows, c.cfg)
	engine := NewEngine(grid)
	editor := NewEditor(grid, engine)
	lab := &Lab{
		Grid:     grid,
		Engine:   engine,
		Editor:   editor,
		Animator: NewAnimator(engine),
	}
	if c.trace {
		lab.Trace = NewTraceLog()
		engine.SetTrace(lab.Trace)
		editor.SetTrace(lab.Trace)
	}

	for _, o := range opts {
		if o.kind == labOptEdit {
			o.edit(lab)
		}
	}
	return lab
}

// RunToTerminal starts the engine and steps until Success, Failure, or
// maxSteps expansions. Returns the final state. maxSteps <= 0 means one step
// per grid cell, which bounds any search.
func (l *Lab) RunToTerminal(maxSteps int) EngineState {
	if maxSteps <= 0 {
		maxSteps = l.Grid.Cols() * l.Grid.Rows()
	}
	l.Engine.Start()
	for i := 0; i < maxSteps; i++ {
		if s := l.Engine.Step(); s == Success || s == Failure {
			return s
		}
	}
	return l.Engine.State()
}

// PathCost returns the destination's g value, the total cost of the
// discovered path. Zero unless the engine is in Success.
func (l *Lab) PathCost() float64 {
	if l.Engine.State() != Success {
		return 0
	}
	return l.Grid.Destination().G
}
