package pathfind

import "testing"

func TestEditor_ToggleObstacle(t *testing.T) {
	lab := NewLab(WithGridSize(8, 8))
	p := Pos{Col: 3, Row: 3}
	if !lab.Editor.Apply(EditToggleObstacle, p) {
		t.Fatal("toggle on open cell should change the grid")
	}
	if lab.Grid.At(p).Role != RoleObstacle {
		t.Fatal("cell should be an obstacle")
	}
	if !lab.Editor.Apply(EditToggleObstacle, p) {
		t.Fatal("second toggle should change the grid back")
	}
	if lab.Grid.At(p).Role != RoleOpen {
		t.Fatal("cell should be open again")
	}
}

func TestEditor_ClearObstacle(t *testing.T) {
	lab := NewLab(WithGridSize(8, 8))
	p := Pos{Col: 2, Row: 2}
	lab.Grid.SetObstacle(p, true)
	if !lab.Editor.Apply(EditClearObstacle, p) {
		t.Fatal("clear on obstacle should change the grid")
	}
	if lab.Editor.Apply(EditClearObstacle, p) {
		t.Fatal("clear on open cell should be a no-op")
	}
}

func TestEditor_ResetsEngineOnChange(t *testing.T) {
	lab := NewLab(WithGridSize(8, 8), WithSource(0, 0), WithDestination(7, 7))
	lab.Engine.Start()
	lab.Engine.Step()

	lab.Editor.Apply(EditToggleObstacle, Pos{Col: 4, Row: 4})
	if lab.Engine.State() != Idle {
		t.Fatalf("engine is %s after an effective edit, want idle", lab.Engine.State())
	}
}

func TestEditor_NoResetOnNoOpEdit(t *testing.T) {
	lab := NewLab(WithGridSize(8, 8), WithSource(0, 0), WithDestination(7, 7))
	lab.Engine.Start()
	lab.Engine.Step()

	// Guarded and out-of-bounds edits fail silently and must not reset.
	if lab.Editor.Apply(EditToggleObstacle, lab.Grid.Source().Pos) {
		t.Fatal("obstructing the source should fail")
	}
	if lab.Editor.Apply(EditSetSource, lab.Grid.Destination().Pos) {
		t.Fatal("source onto destination should fail")
	}
	if lab.Editor.Apply(EditToggleObstacle, Pos{Col: -1, Row: 0}) {
		t.Fatal("out-of-bounds edit should fail")
	}
	if lab.Editor.Apply(EditClearObstacle, Pos{Col: 5, Row: 5}) {
		t.Fatal("clearing an open cell should be a no-op")
	}
	if lab.Engine.State() != Running {
		t.Fatalf("engine is %s after no-op edits, want running", lab.Engine.State())
	}
}

func TestEditor_MovesEndpoints(t *testing.T) {
	lab := NewLab(WithGridSize(8, 8))
	if !lab.Editor.Apply(EditSetSource, Pos{Col: 1, Row: 1}) {
		t.Fatal("set-source should change the grid")
	}
	if !lab.Editor.Apply(EditSetDestination, Pos{Col: 6, Row: 6}) {
		t.Fatal("set-destination should change the grid")
	}
	if lab.Grid.Source().Pos != (Pos{Col: 1, Row: 1}) {
		t.Fatalf("source at %s", lab.Grid.Source().Pos)
	}
	if lab.Grid.Destination().Pos != (Pos{Col: 6, Row: 6}) {
		t.Fatalf("destination at %s", lab.Grid.Destination().Pos)
	}
}

func TestEditor_TraceRecordsEffectiveEdits(t *testing.T) {
	lab := NewLab(WithGridSize(8, 8), WithTrace())
	lab.Editor.Apply(EditToggleObstacle, Pos{Col: 3, Row: 3})
	lab.Editor.Apply(EditToggleObstacle, lab.Grid.Source().Pos) // no-op
	if got := lab.Trace.Count("edit", "toggle-obstacle"); got != 1 {
		t.Fatalf("trace has %d toggle events, want 1\n%s", got, lab.Trace.Format())
	}
}
