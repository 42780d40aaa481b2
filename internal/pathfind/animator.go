package pathfind

// Animator paces the engine from an external tick source. Each Tick performs
// at most speed expansions via a fractional accumulator, so 0.5 steps every
// other tick, 2 steps twice per tick, and 0 pauses indefinitely. Once the
// engine reaches a terminal state the animator stops stepping until the next
// Start or Reset.
type Animator struct {
	engine *Engine
	speed  float64
	accum  float64
}

// NewAnimator creates an animator at speed 1 (one expansion per tick).
func NewAnimator(e *Engine) *Animator {
	return &Animator{engine: e, speed: 1}
}

// SetSpeed sets the expansions-per-tick multiplier. Negative values clamp to 0.
func (a *Animator) SetSpeed(s float64) {
	if s < 0 {
		s = 0
	}
	a.speed = s
}

// Speed returns the current expansions-per-tick multiplier.
func (a *Animator) Speed() float64 { return a.speed }

// Tick advances the search while the engine is Running. Outside Running the
// accumulator is drained so a later Start begins cleanly.
func (a *Animator) Tick() {
	if a.engine.State() != Running {
		a.accum = 0
		return
	}
	a.accum += a.speed
	for a.accum >= 1 && a.engine.State() == Running {
		a.engine.Step()
		a.accum--
	}
}
