package cell_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainrecurrent/locator/cell"
)

func mustTree(t *testing.T, b cell.Bounds) *cell.Tree {
	t.Helper()
	tr, err := cell.New(b)
	require.NoError(t, err)
	return tr
}

// TestNew_InvalidBounds verifies ne <= sw on either axis is rejected.
func TestNew_InvalidBounds(t *testing.T) {
	cases := []cell.Bounds{
		{SwX: 1, SwY: 0, NeX: 1, NeY: 1},
		{SwX: 0, SwY: 1, NeX: 1, NeY: 1},
		{SwX: 2, SwY: 0, NeX: 1, NeY: 1},
	}
	for _, b := range cases {
		_, err := cell.New(b)
		assert.ErrorIs(t, err, cell.ErrInvalidBounds)
	}
}

// TestFragment_RowOrdering checks that child id (j*nx+i) puts row 0 at the
// north edge, per the cell_number = (ny-1-j_from_south)*nx+i convention.
func TestFragment_RowOrdering(t *testing.T) {
	tr := mustTree(t, cell.Bounds{SwX: 0, SwY: 0, NeX: 2, NeY: 2})
	require.NoError(t, tr.Fragment(2, 2))

	var leaves []*cell.Cell
	for c := range tr.LeavesActive() {
		leaves = append(leaves, c)
	}
	require.Len(t, leaves, 4)

	byIdx := map[int32]*cell.Cell{}
	for _, c := range leaves {
		byIdx[c.ID.At(0)] = c
	}

	// index 0 is row 0 (north): sw_y should be 1 (the upper half).
	assert.Equal(t, 1.0, byIdx[0].Bounds.SwY)
	assert.Equal(t, 2.0, byIdx[0].Bounds.NeY)
	assert.Equal(t, 0.0, byIdx[0].Bounds.SwX)
	assert.Equal(t, 1.0, byIdx[0].Bounds.NeX)

	// index 2 is row 1 (south): sw_y should be 0.
	assert.Equal(t, 0.0, byIdx[2].Bounds.SwY)
	assert.Equal(t, 1.0, byIdx[2].Bounds.NeY)
}

// TestFragment_RequiresLeaf ensures a second Fragment call on the same root fails.
func TestFragment_RequiresLeaf(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(4, 4))
	assert.ErrorIs(t, tr.Fragment(2, 2), cell.ErrNotALeaf)
}

// TestTiling verifies union-of-leaves == root area and no two leaves overlap
// (property 1 in spec §8), approximated via area summation.
func TestTiling(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(5, 3))
	tr.Refine()

	var total float64
	for c := range tr.AllLeaves() {
		total += c.Bounds.Width() * c.Bounds.Height()
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

// TestMonotonePruning checks that a Discarded leaf never regains children
// across subsequent Refine calls (property 2).
func TestMonotonePruning(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(2, 2))

	var first *cell.Cell
	for c := range tr.LeavesActive() {
		first = c
		break
	}
	tr.MarkDiscarded([]cell.ID{first.ID})

	for i := 0; i < 3; i++ {
		tr.Refine()
		c, err := tr.CellByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, cell.Discarded, c.Status)
		assert.True(t, c.IsLeaf())
	}
}

// TestContainment checks cell_by_point returns a leaf whose open rectangle
// contains the queried point (property 3), across many refinement depths.
func TestContainment(t *testing.T) {
	tr := mustTree(t, cell.Bounds{SwX: -2, SwY: -2, NeX: 2, NeY: 2})
	require.NoError(t, tr.Fragment(7, 5))
	tr.Refine()
	tr.Refine()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := -2 + rng.Float64()*4
		y := -2 + rng.Float64()*4
		c, err := tr.CellByPoint(x, y)
		require.NoError(t, err)
		assert.True(t, c.Bounds.Contains(x, y))
		assert.True(t, c.IsLeaf())
	}
}

// TestRoundTripID verifies cell_by_id(L.id) == L for every leaf (property 4).
func TestRoundTripID(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(3, 3))
	tr.Refine()

	for want := range tr.AllLeaves() {
		got, err := tr.CellByID(want.ID)
		require.NoError(t, err)
		assert.Same(t, want, got)
	}
}

// TestCellByID_TooDeep verifies the non-fatal ErrIdTooDeep contract.
func TestCellByID_TooDeep(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(2, 2))

	leafID := cell.RootID().Child(0)
	deeper := leafID.Child(3).Child(1)

	c, err := tr.CellByID(deeper)
	assert.ErrorIs(t, err, cell.ErrIdTooDeep)
	assert.Equal(t, leafID, c.ID)
}

// TestCellByPoint_BoundaryIsOutside checks the strict-inequality convention:
// points exactly on an edge, or outside the root, are out of bounds.
func TestCellByPoint_BoundaryIsOutside(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(2, 2))

	_, err := tr.CellByPoint(0.5, 1) // on the north edge
	assert.ErrorIs(t, err, cell.ErrOutOfBounds)

	_, err = tr.CellByPoint(1.5, 0.5) // outside the root entirely
	assert.ErrorIs(t, err, cell.ErrOutOfBounds)
}

// TestSampleUniform checks that samples stay within the cell's rectangle.
func TestSampleUniform(t *testing.T) {
	tr := mustTree(t, cell.Bounds{NeX: 1, NeY: 1})
	require.NoError(t, tr.Fragment(4, 4))

	var leaf *cell.Cell
	for c := range tr.LeavesActive() {
		leaf = c
		break
	}

	rng := rand.New(rand.NewSource(7))
	pts := cell.SampleUniform(leaf, 50, rng)
	require.Len(t, pts, 50)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p[0], leaf.Bounds.SwX)
		assert.Less(t, p[0], leaf.Bounds.NeX)
		assert.GreaterOrEqual(t, p[1], leaf.Bounds.SwY)
		assert.Less(t, p[1], leaf.Bounds.NeY)
	}
}
