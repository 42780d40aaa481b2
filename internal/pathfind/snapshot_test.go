package pathfind

import (
	"strings"
	"testing"
)

const fixtureBoard = `S....
.###.
...#.
.#.#.
.#..D
`

func TestParseSnapshot_Board(t *testing.T) {
	g, err := ParseSnapshot(fixtureBoard, Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Cols() != 5 || g.Rows() != 5 {
		t.Fatalf("parsed %dx%d, want 5x5", g.Cols(), g.Rows())
	}
	if g.Source().Pos != (Pos{Col: 0, Row: 0}) {
		t.Fatalf("source at %s", g.Source().Pos)
	}
	if g.Destination().Pos != (Pos{Col: 4, Row: 4}) {
		t.Fatalf("destination at %s", g.Destination().Pos)
	}
	if g.At(Pos{Col: 1, Row: 1}).Role != RoleObstacle {
		t.Fatal("obstacle glyph did not parse")
	}
	if g.At(Pos{Col: 0, Row: 2}).Role != RoleOpen {
		t.Fatal("open glyph did not parse")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	g, err := ParseSnapshot(fixtureBoard, Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := Snapshot(g); got != fixtureBoard {
		t.Fatalf("round trip mismatch:\n%s\nwant:\n%s", got, fixtureBoard)
	}
}

func TestParseSnapshot_BoardIsSolvable(t *testing.T) {
	g, err := ParseSnapshot(fixtureBoard, Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	engine := NewEngine(g)
	engine.Start()
	for engine.State() == Running {
		engine.Step()
	}
	if engine.State() != Success {
		t.Fatalf("fixture board ended in %s, want success", engine.State())
	}
}

func TestSnapshot_ShowsSearchState(t *testing.T) {
	lab := NewLab(WithGridSize(5, 5), WithSource(0, 0), WithDestination(4, 4))
	if s := lab.RunToTerminal(0); s != Success {
		t.Fatalf("terminal state %s, want success", s)
	}
	snap := Snapshot(lab.Grid)
	if !strings.Contains(snap, "*") {
		t.Fatalf("snapshot after success has no path glyphs:\n%s", snap)
	}
	if strings.Count(snap, "S") != 1 || strings.Count(snap, "D") != 1 {
		t.Fatalf("snapshot endpoints wrong:\n%s", snap)
	}
}

func TestParseSnapshot_GlyphOnDefaultEndpointCell(t *testing.T) {
	// A fresh 5x5 grid places the source at (0,2) and the destination at
	// (4,2). An explicit glyph on one of those cells must still win, with the
	// displaced default moving out of the way.
	board := ".....\n.....\n....S\n.....\nD....\n"
	g, err := ParseSnapshot(board, Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Source().Pos != (Pos{Col: 4, Row: 2}) {
		t.Fatalf("source at %s, want (4,2)", g.Source().Pos)
	}
	if g.Destination().Pos != (Pos{Col: 0, Row: 4}) {
		t.Fatalf("destination at %s, want (0,4)", g.Destination().Pos)
	}
	if got := Snapshot(g); got != board {
		t.Fatalf("round trip mismatch:\n%s\nwant:\n%s", got, board)
	}
}

func TestParseSnapshot_GlyphsSwapDefaultEndpoints(t *testing.T) {
	board := ".....\n.....\nD...S\n.....\n.....\n"
	g, err := ParseSnapshot(board, Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Source().Pos != (Pos{Col: 4, Row: 2}) {
		t.Fatalf("source at %s, want (4,2)", g.Source().Pos)
	}
	if g.Destination().Pos != (Pos{Col: 0, Row: 2}) {
		t.Fatalf("destination at %s, want (0,2)", g.Destination().Pos)
	}
	if got := Snapshot(g); got != board {
		t.Fatalf("round trip mismatch:\n%s\nwant:\n%s", got, board)
	}
}

func TestParseSnapshot_LoneGlyphOnOppositeDefault(t *testing.T) {
	// Only a source glyph, sitting on the default destination cell. The glyph
	// wins and the destination lands on some other cell.
	board := ".....\n.....\n....S\n.....\n.....\n"
	g, err := ParseSnapshot(board, Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Source().Pos != (Pos{Col: 4, Row: 2}) {
		t.Fatalf("source at %s, want (4,2)", g.Source().Pos)
	}
	if g.Destination().Pos == g.Source().Pos {
		t.Fatal("endpoints collapsed onto one cell")
	}
	snap := Snapshot(g)
	if strings.Count(snap, "S") != 1 || strings.Count(snap, "D") != 1 {
		t.Fatalf("reparsed board endpoints wrong:\n%s", snap)
	}
}

func TestParseSnapshot_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", "\n\n"},
		{"ragged", "S..\n..\n..D\n"},
		{"unknown glyph", "S.?\n...\n..D\n"},
		{"two sources", "SS.\n...\n..D\n"},
		{"two destinations", "S..\n...\n.DD\n"},
	}
	for _, tc := range cases {
		if _, err := ParseSnapshot(tc.text, Config{}); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestParseSnapshot_SearchGlyphsAreOpen(t *testing.T) {
	g, err := ParseSnapshot("S*x.o\n....D\n", Config{Diagonal: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, p := range []Pos{{1, 0}, {2, 0}, {4, 0}} {
		c := g.At(p)
		if c.Role != RoleOpen || c.State != StateUnvisited {
			t.Fatalf("cell %s parsed as %s/%s, want open/unvisited", p, c.Role, c.State)
		}
	}
}
