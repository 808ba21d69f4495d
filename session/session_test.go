package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrecurrent/locator/session"
)

// TestRoundTrip verifies the invariant in spec.md §6: saving then loading
// reproduces identical parameters modulo integer/float normalisation.
func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", ".recent_session")

	s := session.Session{
		"CR_SET_LOCALIZING": session.ModeEntry{
			ID: 2,
			Params: map[string]any{
				"f":            "1 - 1.4*x*x + 0.3*y",
				"g":            "x",
				"cell_density": 100.0,
				"bounds":       []any{0.0, 0.0, 1.0, 1.0},
			},
		},
	}

	require.NoError(t, s.Save(path))

	loaded, err := session.Load(path)
	require.NoError(t, err)

	entry := loaded["CR_SET_LOCALIZING"]
	assert.Equal(t, 2, entry.ID)
	assert.Equal(t, "1 - 1.4*x*x + 0.3*y", entry.Params["f"])
	assert.Equal(t, "x", entry.Params["g"])
	assert.Equal(t, 100.0, entry.Params["cell_density"])
	assert.Equal(t, []any{0.0, 0.0, 1.0, 1.0}, entry.Params["bounds"])
}

// TestLoad_MissingFileIsEmpty checks that a first-launch (no prior
// session) is not an error.
func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s, err := session.Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, s)
}
