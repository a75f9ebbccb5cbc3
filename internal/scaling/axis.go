package scaling

import "math"

// AxisState remembers the last plotted max-Y for a view so it can ease
// between renders. The zero value means nothing has been plotted yet.
type AxisState struct {
	MaxY    float64 `json:"maxY"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Plotted bool    `json:"plotted"`
}

// Valid reports whether the state holds a previous max-Y.
func (s AxisState) Valid() bool { return s.Plotted }

// SmoothMaxY pads rawMax and eases it against the previous state. With
// track false the padded value is returned and the state is left unchanged.
func SmoothMaxY(rawMax, start, end float64, state AxisState, track, snapUp bool) (float64, AxisState) {
	padded := math.Max(10, rawMax*1.08+5)
	if !track {
		return padded, state
	}

	prev, hasPrev := state.MaxY, state.Plotted
	if hasPrev && end < state.End {
		hasPrev = false
	}

	smoothed := padded
	if hasPrev {
		delta := padded - prev
		switch {
		case delta > 0 && snapUp:
			smoothed = padded
		default:
			smoothed = prev + delta*0.35
		}
		if floor := math.Max(rawMax*1.01, padded*0.98); smoothed < floor {
			smoothed = floor
		}
	}
	return smoothed, AxisState{MaxY: smoothed, Start: start, End: end, Plotted: true}
}

// pinnedAxis records a user-fixed max-Y.
func pinnedAxis(maxY, start, end float64) AxisState {
	return AxisState{MaxY: maxY, Start: start, End: end, Plotted: true}
}
