package orbit

import (
	"errors"
	"fmt"

	"github.com/chainrecurrent/locator/mapping"
)

// ErrInvalidConfig indicates iterations < 1.
var ErrInvalidConfig = errors.New("orbit: iterations must be >= 1")

// UpdateOrder selects how (x, y) are advanced at each step.
type UpdateOrder int

const (
	// Simultaneous computes x' = f(x,y), y' = g(x,y) from the same (x,y)
	// pair — the standard, fixed-point-consistent reading of the model,
	// and the default.
	Simultaneous UpdateOrder = iota

	// Staggered reproduces the original tool's update order: x' = f(x,y),
	// then y' = g(x', y) using the already-updated x. Kept only so the
	// original tool's output can be reproduced exactly when needed; see
	// package doc.
	Staggered
)

// Trace iterates (f, g) forward from (x0, y0) for `iterations` steps and
// returns two length-(iterations+1) arrays with xs[0], ys[0] = x0, y0.
func Trace(f, g mapping.Func, x0, y0 float64, iterations int, order UpdateOrder) ([]float32, []float32, error) {
	if iterations < 1 {
		return nil, nil, fmt.Errorf("orbit: Trace(iterations=%d): %w", iterations, ErrInvalidConfig)
	}

	xs := make([]float32, iterations+1)
	ys := make([]float32, iterations+1)
	x, y := x0, y0
	xs[0], ys[0] = float32(x), float32(y)

	for i := 0; i < iterations; i++ {
		var nx, ny float64
		switch order {
		case Staggered:
			nx = f(x, y)
			ny = g(nx, y)
		default:
			nx, ny = f(x, y), g(x, y)
		}
		x, y = nx, ny
		xs[i+1], ys[i+1] = float32(x), float32(y)
	}

	return xs, ys, nil
}
