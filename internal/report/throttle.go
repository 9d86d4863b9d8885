package report

import "math"

const completeEpsilon = 1e-9

// Throttle forwards a progress value only when it has moved more than Step
// past the last forwarded value, or when the run is complete. It implements
// riddle.Progress and keeps the last forwarded value as its only state.
type Throttle struct {
	Step float64
	Emit func(progress float64)

	last float64
	done bool
}

func NewThrottle(step float64, emit func(progress float64)) *Throttle {
	return &Throttle{Step: step, Emit: emit}
}

func (t *Throttle) Report(progress float64) {
	complete := math.Abs(progress-1) < completeEpsilon
	if complete {
		if t.done {
			return
		}
		t.done = true
	} else if progress-t.last <= t.Step {
		return
	}
	t.last = progress
	if t.Emit != nil {
		t.Emit(progress)
	}
}

// Last returns the most recently forwarded value.
func (t *Throttle) Last() float64 { return t.last }
