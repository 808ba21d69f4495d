package plot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrecurrent/locator/plot"
)

func TestScatterPNG_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	xs := []float32{0.1, 0.2, 0.3, 0.9}
	ys := []float32{0.4, -0.5, 0.3, 0.1}

	require.NoError(t, plot.ScatterPNG(xs, ys, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScatterPNG_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, plot.ScatterPNG(nil, nil, path))
}

func TestScatterPNG_MismatchedLengths(t *testing.T) {
	err := plot.ScatterPNG([]float32{1, 2}, []float32{1}, filepath.Join(t.TempDir(), "bad.png"))
	assert.Error(t, err)
}
