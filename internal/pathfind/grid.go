package pathfind

// Config fixes the movement model at grid construction.
type Config struct {
	Diagonal   bool // 8-connected when true, 4-connected otherwise
	CutCorners bool // allow diagonal steps to squeeze past flanking obstacles
}

// dirs enumerates neighbour offsets as (dcol, drow): cardinals first, then
// diagonals. Neighbour iteration order is deterministic because of it.
var dirs = [8][2]int{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {-1, -1}, {1, 1}, {-1, 1},
}

// Grid owns the cell lattice. Dimensions are fixed at construction; cell
// roles and search fields mutate in place. Invariant: exactly one Source and
// one Destination exist at all times, and neither is ever an Obstacle.
type Grid struct {
	cols  int
	rows  int
	cells []Cell // row-major: index = row*cols + col
	cfg   Config
	src   int // index of the Source cell
	dst   int // index of the Destination cell

	// onChange, when set, fires after any role or search-state change so a
	// renderer can recolour the cell. Never fires for no-op mutations.
	onChange func(Pos)
}

// NewGrid creates a cols×rows grid with the source and destination placed on
// the middle row, a few cells in from either edge. Dimensions below 2×1 are
// raised to the minimum.
func NewGrid(cols, rows int, cfg Config) *Grid {
	if cols < 2 {
		cols = 2
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
		cfg:   cfg,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[row*cols+col] = Cell{Pos: Pos{Col: col, Row: row}, Parent: noParent}
		}
	}
	mid := rows / 2
	srcCol, dstCol := 5, cols-5
	if cols <= 10 {
		srcCol, dstCol = 0, cols-1
	}
	g.src = mid*cols + srcCol
	g.dst = mid*cols + dstCol
	g.cells[g.src].Role = RoleSource
	g.cells[g.dst].Role = RoleDestination
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Config returns the movement model the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// SetListener installs the change notification callback. Pass nil to detach.
func (g *Grid) SetListener(fn func(Pos)) { g.onChange = fn }

func (g *Grid) notify(p Pos) {
	if g.onChange != nil {
		g.onChange(p)
	}
}

// InBounds returns true if p is within the lattice.
func (g *Grid) InBounds(p Pos) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

func (g *Grid) index(p Pos) int { return p.Row*g.cols + p.Col }

// At returns a pointer to the cell at p, or nil if out of bounds.
func (g *Grid) At(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.index(p)]
}

// Source returns the cell currently designated as the source.
func (g *Grid) Source() *Cell { return &g.cells[g.src] }

// Destination returns the cell currently designated as the destination.
func (g *Grid) Destination() *Cell { return &g.cells[g.dst] }

// SetObstacle toggles the Obstacle role at p. The source and destination are
// protected: obstructing them is a silent no-op, as is any out-of-bounds
// position. Returns true if the grid changed.
func (g *Grid) SetObstacle(p Pos, on bool) bool {
	c := g.At(p)
	if c == nil {
		return false
	}
	if c.Role == RoleSource || c.Role == RoleDestination {
		return false
	}
	want := RoleOpen
	if on {
		want = RoleObstacle
	}
	if c.Role == want {
		return false
	}
	c.Role = want
	g.notify(p)
	return true
}

// SetSource moves the source designation to p, clearing any obstacle there.
// Refuses the destination cell and out-of-bounds positions. Returns true if
// the grid changed.
func (g *Grid) SetSource(p Pos) bool {
	return g.moveEndpoint(p, RoleSource, &g.src)
}

// SetDestination moves the destination designation to p, clearing any
// obstacle there. Refuses the source cell and out-of-bounds positions.
// Returns true if the grid changed.
func (g *Grid) SetDestination(p Pos) bool {
	return g.moveEndpoint(p, RoleDestination, &g.dst)
}

func (g *Grid) moveEndpoint(p Pos, role Role, slot *int) bool {
	c := g.At(p)
	if c == nil {
		return false
	}
	if c.Role == role {
		return false
	}
	// The other endpoint may not be overwritten.
	if c.Role == RoleSource || c.Role == RoleDestination {
		return false
	}
	old := &g.cells[*slot]
	old.Role = RoleOpen
	g.notify(old.Pos)
	c.Role = role
	*slot = g.index(p)
	g.notify(p)
	return true
}

// Neighbors returns the up-to-8 adjacent, in-bounds, non-obstacle cells of c
// in the fixed dirs order. With diagonals enabled and corner-cutting off, a
// diagonal step additionally requires both flanking cardinal cells to be
// passable, so paths never clip through wall corners.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	limit := 4
	if g.cfg.Diagonal {
		limit = 8
	}
	out := make([]*Cell, 0, limit)
	for _, d := range dirs[:limit] {
		p := Pos{Col: c.Pos.Col + d[0], Row: c.Pos.Row + d[1]}
		n := g.At(p)
		if n == nil || n.Role == RoleObstacle {
			continue
		}
		if d[0] != 0 && d[1] != 0 && !g.cfg.CutCorners {
			flankA := g.At(Pos{Col: c.Pos.Col + d[0], Row: c.Pos.Row})
			flankB := g.At(Pos{Col: c.Pos.Col, Row: c.Pos.Row + d[1]})
			if (flankA != nil && flankA.Role == RoleObstacle) ||
				(flankB != nil && flankB.Role == RoleObstacle) {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// setState records a search-state transition and notifies the listener.
func (g *Grid) setState(c *Cell, s SearchState) {
	if c.State == s {
		return
	}
	c.State = s
	g.notify(c.Pos)
}

// resetSearch clears every cell's search fields back to defaults. Roles are
// untouched.
func (g *Grid) resetSearch() {
	for i := range g.cells {
		c := &g.cells[i]
		touched := c.State != StateUnvisited
		c.resetSearch()
		if touched {
			g.notify(c.Pos)
		}
	}
}
