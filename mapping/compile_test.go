package mapping_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrecurrent/locator/mapping"
)

func TestCompile_Arithmetic(t *testing.T) {
	f, err := mapping.Compile("1 - 1.4*x*x + 0.3*y")
	require.NoError(t, err)
	got := f(1.1, 0.5)
	want := 1 - 1.4*1.1*1.1 + 0.3*0.5
	assert.InDelta(t, want, got, 1e-12)
}

func TestCompile_Identity(t *testing.T) {
	fx, err := mapping.Compile("x")
	require.NoError(t, err)
	assert.Equal(t, 2.0, fx(2.0, 9.0))
}

func TestCompile_DivisionByZeroIsNonFinite(t *testing.T) {
	f, err := mapping.Compile("x / y")
	require.NoError(t, err)
	got := f(1.0, 0.0)
	assert.True(t, math.IsNaN(got) || math.IsInf(got, 0))
}

func TestCompile_SyntaxError(t *testing.T) {
	_, err := mapping.Compile("x +* y")
	assert.Error(t, err)
}
