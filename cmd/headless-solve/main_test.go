package main

import (
	"strings"
	"testing"

	"github.com/mkempster/astar-studio/internal/pathfind"
)

func TestFormatRun_RandomMapIncludesSeed(t *testing.T) {
	line := formatRun(runStats{
		runIndex:    3,
		seeded:      true,
		seed:        44,
		outcome:     pathfind.Success,
		expansions:  120,
		relaxations: 310,
		pathCells:   18,
		pathCost:    21.314,
	})
	if !strings.Contains(line, "run 3 seed=44") {
		t.Fatalf("expected seed in the run line, got: %s", line)
	}
	if !strings.Contains(line, "success") || !strings.Contains(line, "cost=21.314") {
		t.Fatalf("success line missing fields: %s", line)
	}
}

func TestFormatRun_ScenarioRunOmitsSeed(t *testing.T) {
	line := formatRun(runStats{
		runIndex:    1,
		outcome:     pathfind.Success,
		expansions:  64,
		relaxations: 150,
		pathCells:   20,
		pathCost:    19.071,
	})
	if strings.Contains(line, "seed") {
		t.Fatalf("scenario run line should carry no seed, got: %s", line)
	}
	if !strings.HasPrefix(line, "run 1  success") {
		t.Fatalf("unexpected run line: %s", line)
	}
}

func TestFormatRun_FailureReportsNoPath(t *testing.T) {
	line := formatRun(runStats{
		runIndex:    2,
		seeded:      true,
		seed:        43,
		outcome:     pathfind.Failure,
		expansions:  40,
		relaxations: 88,
	})
	if !strings.Contains(line, "failure") || !strings.Contains(line, "(no path)") {
		t.Fatalf("failure line missing fields: %s", line)
	}
}
