package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/mkempster/astar-studio/internal/pathfind"
	"github.com/mkempster/astar-studio/internal/scenario"
)

type runStats struct {
	runIndex    int
	seeded      bool
	seed        int64
	outcome     pathfind.EngineState
	expansions  int
	relaxations int
	pathCells   int
	pathCost    float64
}

func main() {
	var (
		scenarioPath string
		runs         int
		cols         int
		rows         int
		density      float64
		seedBase     int64
		seedStep     int64
		diagonal     bool
		cutCorners   bool
		showBoard    bool
	)
	flag.StringVar(&scenarioPath, "scenario", "", "HCL scenario file (overrides the random-map flags)")
	flag.IntVar(&runs, "runs", 5, "number of random-map runs (a scenario runs once)")
	flag.IntVar(&cols, "cols", 40, "random map columns")
	flag.IntVar(&rows, "rows", 24, "random map rows")
	flag.Float64Var(&density, "density", 0.3, "random obstacle density in [0,1)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&diagonal, "diagonal", true, "allow 8-connected movement")
	flag.BoolVar(&cutCorners, "cut-corners", false, "allow diagonal corner cutting")
	flag.BoolVar(&showBoard, "board", false, "print the final board of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if density < 0 || density >= 1 {
		fmt.Println("error: -density must be in [0,1)")
		return
	}

	var sc *scenario.Scenario
	if scenarioPath != "" {
		var err error
		sc, err = scenario.Load(scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		// A scenario board is fixed, so repeated runs would be identical.
		runs = 1
	}

	fmt.Printf("=== Headless Solve Report ===\n")
	if sc != nil {
		name := sc.Name
		if name == "" {
			name = scenarioPath
		}
		fmt.Printf("scenario=%s grid=%dx%d diagonal=%v cut_corners=%v\n\n",
			name, sc.Cols, sc.Rows, sc.Diagonal, sc.CutCorners)
	} else {
		fmt.Printf("random maps grid=%dx%d density=%.2f diagonal=%v cut_corners=%v runs=%d seed_base=%d seed_step=%d\n\n",
			cols, rows, density, diagonal, cutCorners, runs, seedBase, seedStep)
	}

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		stats := runStats{runIndex: i + 1}
		var lab *pathfind.Lab
		if sc != nil {
			lab = pathfind.NewLab(append(sc.LabOptions(), pathfind.WithTrace())...)
		} else {
			stats.seeded = true
			stats.seed = seedBase + int64(i)*seedStep
			lab = randomLab(cols, rows, density, stats.seed, diagonal, cutCorners)
		}

		stats.outcome = lab.RunToTerminal(0)
		stats.expansions = lab.Engine.Steps()
		stats.relaxations = lab.Trace.Count("engine", "relax")
		stats.pathCells = len(lab.Engine.Path())
		stats.pathCost = lab.PathCost()
		all = append(all, stats)
		fmt.Println(formatRun(stats))
		if showBoard {
			fmt.Println(pathfind.Snapshot(lab.Grid))
		}
	}

	printAggregate(all)
}

// randomLab builds a lab with obstacles scattered at the given density.
// Endpoint cells are protected by the grid itself, so the board always keeps
// its source and destination.
func randomLab(cols, rows int, density float64, seed int64, diagonal, cutCorners bool) *pathfind.Lab {
	lab := pathfind.NewLab(
		pathfind.WithGridSize(cols, rows),
		pathfind.WithDiagonal(diagonal),
		pathfind.WithCornerCutting(cutCorners),
		pathfind.WithTrace(),
	)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible map generation
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if rng.Float64() < density {
				lab.Grid.SetObstacle(pathfind.Pos{Col: col, Row: row}, true)
			}
		}
	}
	return lab
}

// formatRun renders one result line. Seeds only exist for random maps;
// scenario runs have none to report.
func formatRun(s runStats) string {
	label := fmt.Sprintf("run %d", s.runIndex)
	if s.seeded {
		label += fmt.Sprintf(" seed=%d", s.seed)
	}
	switch s.outcome {
	case pathfind.Success:
		return fmt.Sprintf("%s  success  expansions=%d relaxations=%d path_cells=%d cost=%.3f",
			label, s.expansions, s.relaxations, s.pathCells, s.pathCost)
	case pathfind.Failure:
		return fmt.Sprintf("%s  failure  expansions=%d relaxations=%d (no path)",
			label, s.expansions, s.relaxations)
	default:
		return fmt.Sprintf("%s  %s  expansions=%d", label, s.outcome, s.expansions)
	}
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	successes := 0
	totalExp := 0
	totalCost := 0.0
	totalCells := 0
	for _, s := range all {
		totalExp += s.expansions
		if s.outcome == pathfind.Success {
			successes++
			totalCost += s.pathCost
			totalCells += s.pathCells
		}
	}
	fmt.Printf("\n=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("success_rate=%d/%d  avg_expansions=%.1f\n",
		successes, len(all), float64(totalExp)/float64(len(all)))
	if successes > 0 {
		fmt.Printf("avg_cost=%.3f  avg_path_cells=%.1f\n",
			totalCost/float64(successes), float64(totalCells)/float64(successes))
	}
}
