package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mkempster/astar-studio/internal/pathfind"
)

// cellPx is the on-screen size of one grid cell.
const cellPx = 24

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 24

// hudHeight is the strip below the board reserved for the key legend.
const hudHeight = 44

// statusFrames is how long transient status text (e.g. "copied") stays up.
const statusFrames = 90

// Cell colours by role and search state. Roles win over search state, same
// precedence as the snapshot glyphs.
var (
	colWindow    = color.RGBA{R: 10, G: 12, B: 14, A: 255}
	colUnvisited = color.RGBA{R: 20, G: 36, B: 62, A: 255}
	colFrontier  = color.RGBA{R: 45, G: 105, B: 170, A: 255}
	colClosed    = color.RGBA{R: 25, G: 115, B: 185, A: 255}
	colPath      = color.RGBA{R: 255, G: 215, B: 25, A: 255}
	colObstacle  = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	colSource    = color.RGBA{R: 85, G: 185, B: 65, A: 255}
	colDest      = color.RGBA{R: 225, G: 95, B: 85, A: 255}
	colBorder    = color.RGBA{R: 60, G: 70, B: 80, A: 255}
	colHUDText   = color.RGBA{R: 180, G: 190, B: 200, A: 255}
)

// hudKeys is the legend rendered at the bottom of the window.
const hudKeys = "LMB obstacle  RMB erase  Shift+LMB source  Ctrl+LMB destination  " +
	"Space run/pause  N step  R reset  ,/. speed  C copy  H hud"

// App is the interactive visualiser. It owns the core quartet and maps input
// to editor intents; all search progress happens through the animator, one
// tick per frame.
type App struct {
	grid     *pathfind.Grid
	engine   *pathfind.Engine
	editor   *pathfind.Editor
	animator *pathfind.Animator

	width  int
	height int

	prevKeys  map[ebiten.Key]bool
	lastPaint pathfind.Pos // last cell edited during the current drag
	havePaint bool

	pausedSpeed float64 // speed to restore when unpausing
	showHUD     bool
	status      string
	statusTTL   int
	face        font.Face
}

// New creates the app over a fresh cols×rows grid with 8-connected movement
// and corner-cutting disabled.
func New(cols, rows int) *App {
	grid := pathfind.NewGrid(cols, rows, pathfind.Config{Diagonal: true})
	engine := pathfind.NewEngine(grid)
	a := &App{
		grid:     grid,
		engine:   engine,
		editor:   pathfind.NewEditor(grid, engine),
		animator: pathfind.NewAnimator(engine),
		width:    borderWidth + cols*cellPx + borderWidth,
		height:   borderWidth + rows*cellPx + borderWidth + hudHeight,
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
		face:     basicfont.Face7x13,
	}
	return a
}

// Size returns the window dimensions in pixels.
func (a *App) Size() (int, int) { return a.width, a.height }

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func (a *App) Update() error {
	a.handleKeys()
	a.handleMouse()
	a.animator.Tick()
	if a.statusTTL > 0 {
		a.statusTTL--
		if a.statusTTL == 0 {
			a.status = ""
		}
	}
	return nil
}

// pressed reports an edge-triggered key press: true only on the frame the
// key goes down.
func (a *App) pressed(current map[ebiten.Key]bool, k ebiten.Key) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !a.prevKeys[k]
}

func (a *App) handleKeys() {
	current := make(map[ebiten.Key]bool)

	// Space: start from Idle, pause/resume while Running, reset a finished run.
	if a.pressed(current, ebiten.KeySpace) {
		switch a.engine.State() {
		case pathfind.Idle:
			a.engine.Start()
		case pathfind.Running:
			if a.animator.Speed() > 0 {
				a.pausedSpeed = a.animator.Speed()
				a.animator.SetSpeed(0)
			} else {
				if a.pausedSpeed == 0 {
					a.pausedSpeed = 1
				}
				a.animator.SetSpeed(a.pausedSpeed)
			}
		default:
			a.engine.Reset()
		}
	}

	// N: single expansion, starting a paused run from Idle if needed.
	if a.pressed(current, ebiten.KeyN) {
		if a.engine.State() == pathfind.Idle {
			a.pausedSpeed = a.animator.Speed()
			a.animator.SetSpeed(0)
			a.engine.Start()
		}
		a.engine.Step()
	}

	if a.pressed(current, ebiten.KeyR) {
		a.engine.Reset()
	}

	// Speed ladder, slower/faster.
	speeds := []float64{0.5, 1, 2, 4}
	if a.pressed(current, ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= a.animator.Speed() && i > 0 {
				a.animator.SetSpeed(speeds[i-1])
				break
			}
		}
	}
	if a.pressed(current, ebiten.KeyPeriod) {
		for i := len(speeds) - 1; i >= 0; i-- {
			if speeds[i] <= a.animator.Speed() && i < len(speeds)-1 {
				a.animator.SetSpeed(speeds[i+1])
				break
			}
		}
	}

	if a.pressed(current, ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}

	// C: copy an ASCII snapshot of the board.
	if a.pressed(current, ebiten.KeyC) {
		if err := clipboard.WriteAll(pathfind.Snapshot(a.grid)); err != nil {
			log.Printf("clipboard: %v", err)
			a.setStatus("copy failed")
		} else {
			a.setStatus("board copied")
		}
	}

	a.prevKeys = current
}

func (a *App) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		a.havePaint = false
		return
	}

	mx, my := ebiten.CursorPosition()
	pos := pathfind.Pos{
		Col: (mx - borderWidth) / cellPx,
		Row: (my - borderWidth) / cellPx,
	}
	if mx < borderWidth || my < borderWidth || !a.grid.InBounds(pos) {
		return
	}
	// One edit per cell per stroke, so a drag paints without flicker.
	if a.havePaint && pos == a.lastPaint {
		return
	}
	a.lastPaint = pos
	a.havePaint = true

	switch {
	case left && shiftHeld():
		a.editor.Apply(pathfind.EditSetSource, pos)
	case left && ctrlHeld():
		a.editor.Apply(pathfind.EditSetDestination, pos)
	case left:
		if c := a.grid.At(pos); c != nil && c.Role == pathfind.RoleOpen {
			a.editor.Apply(pathfind.EditToggleObstacle, pos)
		}
	case right:
		a.editor.Apply(pathfind.EditClearObstacle, pos)
	}
}

func shiftHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) ||
		ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight)
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusTTL = statusFrames
}

func cellColor(c *pathfind.Cell) color.RGBA {
	switch c.Role {
	case pathfind.RoleObstacle:
		return colObstacle
	case pathfind.RoleSource:
		return colSource
	case pathfind.RoleDestination:
		return colDest
	}
	switch c.State {
	case pathfind.StatePath:
		return colPath
	case pathfind.StateClosed:
		return colClosed
	case pathfind.StateFrontier:
		return colFrontier
	default:
		return colUnvisited
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colWindow)

	ox, oy := float32(borderWidth), float32(borderWidth)
	bw := float32(a.grid.Cols() * cellPx)
	bh := float32(a.grid.Rows() * cellPx)
	vector.StrokeRect(screen, ox-2, oy-2, bw+4, bh+4, 1.0, colBorder, false)

	// Cells, inset 1px so the window colour reads as grid lines.
	for row := 0; row < a.grid.Rows(); row++ {
		for col := 0; col < a.grid.Cols(); col++ {
			c := a.grid.At(pathfind.Pos{Col: col, Row: row})
			x := ox + float32(col*cellPx)
			y := oy + float32(row*cellPx)
			vector.FillRect(screen, x+1, y+1, cellPx-2, cellPx-2, cellColor(c), false)
		}
	}

	// Path polyline over the cells, centre to centre, as in the sketch that
	// inspired the board layout.
	if path := a.engine.Path(); len(path) > 1 {
		for i := 0; i < len(path)-1; i++ {
			x0 := ox + float32(path[i].Pos.Col*cellPx) + cellPx/2
			y0 := oy + float32(path[i].Pos.Row*cellPx) + cellPx/2
			x1 := ox + float32(path[i+1].Pos.Col*cellPx) + cellPx/2
			y1 := oy + float32(path[i+1].Pos.Row*cellPx) + cellPx/2
			vector.StrokeLine(screen, x0, y0, x1, y1, 3.0, colPath, false)
		}
	}

	a.drawHUD(screen)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	state := a.engine.State()
	line := fmt.Sprintf("state: %s  speed: %.1fx  steps: %d", state, a.animator.Speed(), a.engine.Steps())
	if state == pathfind.Success {
		line += fmt.Sprintf("  cost: %.2f  cells: %d", a.grid.Destination().G, len(a.engine.Path()))
	}
	if a.status != "" {
		line += "  [" + a.status + "]"
	}
	ebitenutil.DebugPrintAt(screen, line, borderWidth, 4)

	if a.showHUD {
		y := a.height - hudHeight + 16
		text.Draw(screen, hudKeys, a.face, borderWidth, y, colHUDText)
	}
}
