package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/mkempster/astar-studio/internal/pathfind"
)

// Scenario describes a board and movement rules loaded from an HCL file.
type Scenario struct {
	Name        string
	Cols        int
	Rows        int
	Diagonal    bool
	CutCorners  bool
	Source      *pathfind.Pos // nil keeps the grid's default placement
	Destination *pathfind.Pos
	Obstacles   []pathfind.Pos
}

// gridFile is the first decoding pass: the grid block plus everything else
// left as a raw body. The grid block must use literal values because it is
// decoded before the eval context exists.
type gridFile struct {
	Name   *string    `hcl:"name,optional"`
	Grid   *gridBlock `hcl:"grid,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type gridBlock struct {
	Cols       int   `hcl:"cols"`
	Rows       int   `hcl:"rows"`
	Diagonal   *bool `hcl:"diagonal,optional"`
	CutCorners *bool `hcl:"cut_corners,optional"`
}

// boardFile is the second pass, decoded with cols/rows/max_col/max_row
// available as expression variables.
type boardFile struct {
	Source      *endpointBlock   `hcl:"source,block"`
	Destination *endpointBlock   `hcl:"destination,block"`
	Obstacles   []*obstacleBlock `hcl:"obstacle,block"`
}

type endpointBlock struct {
	Col int `hcl:"col"`
	Row int `hcl:"row"`
}

// obstacleBlock is either a single cell (col/row) or an inclusive rectangular
// span (from_col/from_row/to_col/to_row).
type obstacleBlock struct {
	Col     *int `hcl:"col,optional"`
	Row     *int `hcl:"row,optional"`
	FromCol *int `hcl:"from_col,optional"`
	FromRow *int `hcl:"from_row,optional"`
	ToCol   *int `hcl:"to_col,optional"`
	ToRow   *int `hcl:"to_row,optional"`
}

// Load reads and decodes a scenario file from disk.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes scenario HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var root gridFile
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}
	if root.Grid == nil {
		return nil, fmt.Errorf("decode %s: missing required grid block", filename)
	}
	if root.Grid.Cols < 2 || root.Grid.Rows < 1 {
		return nil, fmt.Errorf("decode %s: grid must be at least 2x1, got %dx%d",
			filename, root.Grid.Cols, root.Grid.Rows)
	}

	s := &Scenario{
		Cols:     root.Grid.Cols,
		Rows:     root.Grid.Rows,
		Diagonal: true,
	}
	if root.Name != nil {
		s.Name = *root.Name
	}
	if root.Grid.Diagonal != nil {
		s.Diagonal = *root.Grid.Diagonal
	}
	if root.Grid.CutCorners != nil {
		s.CutCorners = *root.Grid.CutCorners
	}

	// Board blocks may use the grid dimensions in expressions, e.g.
	// `row = max_row / 2` or `to_col = cols - 1`.
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cols":    cty.NumberIntVal(int64(s.Cols)),
			"rows":    cty.NumberIntVal(int64(s.Rows)),
			"max_col": cty.NumberIntVal(int64(s.Cols - 1)),
			"max_row": cty.NumberIntVal(int64(s.Rows - 1)),
		},
	}
	var board boardFile
	diags = gohcl.DecodeBody(root.Remain, ctx, &board)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}

	if board.Source != nil {
		p, err := s.checkPos(board.Source.Col, board.Source.Row, "source")
		if err != nil {
			return nil, err
		}
		s.Source = &p
	}
	if board.Destination != nil {
		p, err := s.checkPos(board.Destination.Col, board.Destination.Row, "destination")
		if err != nil {
			return nil, err
		}
		s.Destination = &p
	}
	for i, ob := range board.Obstacles {
		cells, err := s.obstacleCells(ob, i)
		if err != nil {
			return nil, err
		}
		s.Obstacles = append(s.Obstacles, cells...)
	}
	return s, nil
}

func (s *Scenario) checkPos(col, row int, what string) (pathfind.Pos, error) {
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		return pathfind.Pos{}, fmt.Errorf("%s (%d,%d) outside %dx%d grid",
			what, col, row, s.Cols, s.Rows)
	}
	return pathfind.Pos{Col: col, Row: row}, nil
}

func (s *Scenario) obstacleCells(ob *obstacleBlock, i int) ([]pathfind.Pos, error) {
	single := ob.Col != nil || ob.Row != nil
	span := ob.FromCol != nil || ob.FromRow != nil || ob.ToCol != nil || ob.ToRow != nil
	switch {
	case single && span:
		return nil, fmt.Errorf("obstacle #%d: use col/row or from/to, not both", i+1)
	case single:
		if ob.Col == nil || ob.Row == nil {
			return nil, fmt.Errorf("obstacle #%d: both col and row are required", i+1)
		}
		p, err := s.checkPos(*ob.Col, *ob.Row, fmt.Sprintf("obstacle #%d", i+1))
		if err != nil {
			return nil, err
		}
		return []pathfind.Pos{p}, nil
	case span:
		if ob.FromCol == nil || ob.FromRow == nil || ob.ToCol == nil || ob.ToRow == nil {
			return nil, fmt.Errorf("obstacle #%d: from_col, from_row, to_col, to_row are all required", i+1)
		}
		from, err := s.checkPos(*ob.FromCol, *ob.FromRow, fmt.Sprintf("obstacle #%d", i+1))
		if err != nil {
			return nil, err
		}
		to, err := s.checkPos(*ob.ToCol, *ob.ToRow, fmt.Sprintf("obstacle #%d", i+1))
		if err != nil {
			return nil, err
		}
		if to.Col < from.Col || to.Row < from.Row {
			return nil, fmt.Errorf("obstacle #%d: to corner precedes from corner", i+1)
		}
		var cells []pathfind.Pos
		for row := from.Row; row <= to.Row; row++ {
			for col := from.Col; col <= to.Col; col++ {
				cells = append(cells, pathfind.Pos{Col: col, Row: row})
			}
		}
		return cells, nil
	default:
		return nil, fmt.Errorf("obstacle #%d: empty block", i+1)
	}
}

// LabOptions converts the scenario into pathfind.Lab options, preserving the
// infra-then-edit ordering the lab expects.
func (s *Scenario) LabOptions() []pathfind.LabOption {
	opts := []pathfind.LabOption{
		pathfind.WithGridSize(s.Cols, s.Rows),
		pathfind.WithDiagonal(s.Diagonal),
		pathfind.WithCornerCutting(s.CutCorners),
	}
	if s.Source != nil {
		opts = append(opts, pathfind.WithSource(s.Source.Col, s.Source.Row))
	}
	if s.Destination != nil {
		opts = append(opts, pathfind.WithDestination(s.Destination.Col, s.Destination.Row))
	}
	for _, ob := range s.Obstacles {
		opts = append(opts, pathfind.WithObstacle(ob.Col, ob.Row))
	}
	return opts
}
