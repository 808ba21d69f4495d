package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrecurrent/locator/orbit"
)

// TestTrace_Length verifies property 9: iterations=N yields length N+1
// arrays with element 0 equal to the start.
func TestTrace_Length(t *testing.T) {
	f := func(x, y float64) float64 { return x }
	g := func(x, y float64) float64 { return y }

	xs, ys, err := orbit.Trace(f, g, 3.0, -2.0, 7, orbit.Simultaneous)
	require.NoError(t, err)
	assert.Len(t, xs, 8)
	assert.Len(t, ys, 8)
	assert.Equal(t, float32(3.0), xs[0])
	assert.Equal(t, float32(-2.0), ys[0])
}

// TestTrace_InvalidIterations rejects iterations < 1.
func TestTrace_InvalidIterations(t *testing.T) {
	f := func(x, y float64) float64 { return x }
	_, _, err := orbit.Trace(f, f, 0, 0, 0, orbit.Simultaneous)
	assert.ErrorIs(t, err, orbit.ErrInvalidConfig)
}

// TestTrace_HenonSimultaneous mirrors scenario S3.
func TestTrace_HenonSimultaneous(t *testing.T) {
	f := func(x, y float64) float64 { return 1 - 1.4*x*x + 0.3*y }
	g := func(x, y float64) float64 { return x }

	xs, ys, err := orbit.Trace(f, g, 1.1, 0.5, 10, orbit.Simultaneous)
	require.NoError(t, err)
	require.Len(t, xs, 11)

	x, y := 1.1, 0.5
	for i := 0; i < 10; i++ {
		nx, ny := f(x, y), g(x, y)
		x, y = nx, ny
		assert.InDelta(t, x, xs[i+1], 1e-5)
		assert.InDelta(t, y, ys[i+1], 1e-5)
	}
}

// TestTrace_StaggeredDiffersFromSimultaneous confirms the two update orders
// diverge on a map where g depends on x (when g ignores x they coincide).
func TestTrace_StaggeredDiffersFromSimultaneous(t *testing.T) {
	f := func(x, y float64) float64 { return 1 - 1.4*x*x + 0.3*y }
	g := func(x, y float64) float64 { return x }

	_, ysSim, err := orbit.Trace(f, g, 1.1, 0.5, 5, orbit.Simultaneous)
	require.NoError(t, err)
	_, ysStag, err := orbit.Trace(f, g, 1.1, 0.5, 5, orbit.Staggered)
	require.NoError(t, err)

	// g(x,y) = x, so the staggered variant's y already reflects the
	// updated x at step 1, while the simultaneous variant's y still
	// reflects the pre-update x: they must diverge immediately.
	assert.NotEqual(t, ysSim[1], ysStag[1])
}
