package pathfind

import (
	"fmt"
	"strings"
)

// Snapshot glyphs, one per cell. Roles win over search state so an obstacle
// painted mid-search still reads as '#'.
//
//	S source   D destination   # obstacle
//	* path     x closed        o frontier   . unvisited
func cellGlyph(c *Cell) byte {
	switch c.Role {
	case RoleSource:
		return 'S'
	case RoleDestination:
		return 'D'
	case RoleObstacle:
		return '#'
	}
	switch c.State {
	case StatePath:
		return '*'
	case StateClosed:
		return 'x'
	case StateFrontier:
		return 'o'
	default:
		return '.'
	}
}

// Snapshot renders the grid as ASCII, one row per line. Used for clipboard
// export, headless output, and board fixtures in tests.
func Snapshot(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteByte(cellGlyph(&g.cells[row*g.cols+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseSnapshot builds a fresh grid from the ASCII form produced by Snapshot.
// Search-state glyphs ('*', 'x', 'o') parse as open cells: a snapshot records
// board topology, not a resumable search. At most one 'S' and one 'D' are
// accepted; if either is absent the constructor's default placement stands,
// moving aside when the other glyph lands on it.
func ParseSnapshot(text string, cfg Config) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse snapshot: empty input")
	}
	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("parse snapshot: row %d has %d cells, want %d", i, len(line), cols)
		}
	}

	g := NewGrid(cols, len(lines), cfg)

	var srcAt, dstAt *Pos
	for row, line := range lines {
		for col := 0; col < cols; col++ {
			p := Pos{Col: col, Row: row}
			switch line[col] {
			case 'S':
				if srcAt != nil {
					return nil, fmt.Errorf("parse snapshot: multiple sources")
				}
				srcAt = &p
			case 'D':
				if dstAt != nil {
					return nil, fmt.Errorf("parse snapshot: multiple destinations")
				}
				dstAt = &p
			case '#', '.', '*', 'x', 'o':
			default:
				return nil, fmt.Errorf("parse snapshot: unknown glyph %q at %s", line[col], p)
			}
		}
	}
	if err := placeEndpoints(g, srcAt, dstAt); err != nil {
		return nil, err
	}
	for row, line := range lines {
		for col := 0; col < cols; col++ {
			if line[col] != '#' {
				continue
			}
			p := Pos{Col: col, Row: row}
			if !g.SetObstacle(p, true) {
				return nil, fmt.Errorf("parse snapshot: obstacle at %s collides with an endpoint", p)
			}
		}
	}
	return g, nil
}

// placeEndpoints moves the constructor's default endpoints to the glyph
// positions, if any. A glyph may sit exactly on the opposite default, which
// the grid setters refuse, so ordering matters: free the contested cell
// before claiming it, parking an endpoint on a spare cell when the glyphs
// swap the defaults outright.
func placeEndpoints(g *Grid, srcAt, dstAt *Pos) error {
	wantSrc := g.Source().Pos
	if srcAt != nil {
		wantSrc = *srcAt
	}
	wantDst := g.Destination().Pos
	if dstAt != nil {
		wantDst = *dstAt
	}
	if wantSrc == wantDst {
		// A lone glyph on the opposite default. The glyph wins; the
		// glyph-less endpoint moves to a spare cell.
		if srcAt != nil {
			spare, ok := spareCell(g, wantSrc, g.Source().Pos)
			if !ok {
				return fmt.Errorf("parse snapshot: no cell left for the destination")
			}
			wantDst = spare
		} else {
			spare, ok := spareCell(g, wantDst, g.Destination().Pos)
			if !ok {
				return fmt.Errorf("parse snapshot: no cell left for the source")
			}
			wantSrc = spare
		}
	}
	if wantDst != g.Source().Pos {
		g.SetDestination(wantDst)
		g.SetSource(wantSrc)
		return nil
	}
	// The destination glyph sits on the current source, so the source has to
	// move first.
	if wantSrc == g.Destination().Pos {
		spare, ok := spareCell(g, wantSrc, wantDst)
		if !ok {
			return fmt.Errorf("parse snapshot: grid too small to swap endpoints")
		}
		g.SetDestination(spare)
	}
	g.SetSource(wantSrc)
	g.SetDestination(wantDst)
	return nil
}

// spareCell returns the first cell outside the reserved positions, in row
// scan order.
func spareCell(g *Grid, reserved ...Pos) (Pos, bool) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := Pos{Col: col, Row: row}
			free := true
			for _, r := range reserved {
				if p == r {
					free = false
					break
				}
			}
			if free {
				return p, true
			}
		}
	}
	return Pos{}, false
}
