package pathfind

import "fmt"

// Pos identifies a cell by column and row.
type Pos struct {
	Col int
	Row int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Role is the editable designation of a cell. Roles are mutually exclusive;
// the grid guarantees exactly one Source and one Destination at all times.
type Role uint8

const (
	RoleOpen Role = iota
	RoleObstacle
	RoleSource
	RoleDestination
)

func (r Role) String() string {
	switch r {
	case RoleOpen:
		return "open"
	case RoleObstacle:
		return "obstacle"
	case RoleSource:
		return "source"
	case RoleDestination:
		return "destination"
	default:
		return "unknown"
	}
}

// SearchState tracks where a cell is in the A* lifecycle. It is an explicit
// tag (not inferred from cost fields) so the renderer's colour mapping and the
// engine's state machine stay unambiguous.
type SearchState uint8

const (
	StateUnvisited SearchState = iota // never touched by the current search
	StateFrontier                     // discovered, waiting on the open list
	StateClosed                       // expanded, never re-examined
	StatePath                         // on the reconstructed path
)

func (s SearchState) String() string {
	switch s {
	case StateUnvisited:
		return "unvisited"
	case StateFrontier:
		return "frontier"
	case StateClosed:
		return "closed"
	case StatePath:
		return "path"
	default:
		return "unknown"
	}
}

// noParent marks a cell with no predecessor.
const noParent = -1

// Cell is one lattice position plus its search bookkeeping. G is the best
// known cost from the source, H the heuristic estimate to the destination,
// and F their sum. Parent is a weak back-reference: the index of the
// predecessor cell in the grid's storage, noParent when unset. G/H/F are only
// meaningful once State leaves StateUnvisited.
type Cell struct {
	Pos    Pos
	Role   Role
	G      float64
	H      float64
	F      float64
	Parent int
	State  SearchState
}

// resetSearch clears the search fields back to defaults, leaving Role intact.
func (c *Cell) resetSearch() {
	c.G = 0
	c.H = 0
	c.F = 0
	c.Parent = noParent
	c.State = StateUnvisited
}
