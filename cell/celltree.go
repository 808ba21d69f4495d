package cell

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
)

// Tree owns the root Cell of an adaptive subdivision. A Tree is created
// fresh for each localiser run, mutated only by its owner, and discarded at
// run completion — it carries no process-wide state.
type Tree struct {
	root *Cell
}

// New creates a Tree whose root is a single Active leaf spanning bounds.
// Returns ErrInvalidBounds if bounds.NeX <= bounds.SwX or bounds.NeY <= bounds.SwY.
func New(bounds Bounds) (*Tree, error) {
	if !bounds.valid() {
		return nil, fmt.Errorf("cell: New(%+v): %w", bounds, ErrInvalidBounds)
	}
	return &Tree{root: &Cell{
		Bounds:   bounds,
		ID:       RootID(),
		Status:   Active,
		CellsByX: 1,
		CellsByY: 1,
	}}, nil
}

// Root returns the tree's root cell.
func (t *Tree) Root() *Cell { return t.root }

// Fragment subdivides the root once into nx*ny equal children. The root
// must still be a leaf (no prior fragmentation). Child IDs are
// single-element sequences (j*nx + i), with i the column (left to right,
// 0-based) and j the row counted top to bottom (row 0 is the northernmost
// row) — equivalently cell_number = (ny-1-j_from_south)*nx + i using the
// coordinate system's natural southward origin.
func (t *Tree) Fragment(nx, ny int) error {
	if !t.root.IsLeaf() {
		return fmt.Errorf("cell: Fragment: %w", ErrNotALeaf)
	}
	if nx < 1 || ny < 1 {
		return fmt.Errorf("cell: Fragment(%d,%d): %w", nx, ny, ErrInvalidFactor)
	}
	subdivide(t.root, int32(nx), int32(ny))
	return nil
}

// Refine replaces every Active leaf's (1,1) factor with (2,2), spawning four
// children each. Discarded leaves are untouched and remain terminal, per
// the monotone-pruning invariant.
func (t *Tree) Refine() {
	stack := []*Cell{t.root}
	for len(stack) > 0 {
		n := len(stack) - 1
		c := stack[n]
		stack = stack[:n]
		if !c.IsLeaf() {
			stack = append(stack, c.Children...)
			continue
		}
		if c.Status == Active {
			subdivide(c, 2, 2)
		}
	}
}

// subdivide turns leaf c into an nx*ny grid of Active leaf children,
// tiling c's bounds exactly (up to floating-point rounding). c must
// currently be a leaf with factor (1,1); callers enforce that.
func subdivide(c *Cell, nx, ny int32) {
	c.CellsByX, c.CellsByY = nx, ny
	cellW := c.Bounds.Width() / float64(nx)
	cellH := c.Bounds.Height() / float64(ny)
	c.Children = make([]*Cell, 0, int(nx*ny))

	for jTop := int32(0); jTop < ny; jTop++ {
		rowsFromTop := ny - jTop - 1 // rows still below this one, south side first
		swY := c.Bounds.SwY + float64(rowsFromTop)*cellH
		neY := c.Bounds.SwY + float64(rowsFromTop+1)*cellH
		for i := int32(0); i < nx; i++ {
			swX := c.Bounds.SwX + float64(i)*cellW
			neX := c.Bounds.SwX + float64(i+1)*cellW
			idx := jTop*nx + i
			c.Children = append(c.Children, &Cell{
				Bounds:   Bounds{SwX: swX, SwY: swY, NeX: neX, NeY: neY},
				ID:       c.ID.Child(idx),
				Status:   Active,
				CellsByX: 1,
				CellsByY: 1,
			})
		}
	}
}

// LeavesActive enumerates all Active leaves in depth-first order.
func (t *Tree) LeavesActive() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		stack := []*Cell{t.root}
		for len(stack) > 0 {
			n := len(stack) - 1
			c := stack[n]
			stack = stack[:n]
			if c.IsLeaf() {
				if c.Status == Active {
					if !yield(c) {
						return
					}
				}
				continue
			}
			// push children in reverse so traversal order is left-to-right
			for i := len(c.Children) - 1; i >= 0; i-- {
				stack = append(stack, c.Children[i])
			}
		}
	}
}

// AllLeaves enumerates every leaf (Active or Discarded) in depth-first
// order. Used by tiling/containment property tests.
func (t *Tree) AllLeaves() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		stack := []*Cell{t.root}
		for len(stack) > 0 {
			n := len(stack) - 1
			c := stack[n]
			stack = stack[:n]
			if c.IsLeaf() {
				if !yield(c) {
					return
				}
				continue
			}
			for i := len(c.Children) - 1; i >= 0; i-- {
				stack = append(stack, c.Children[i])
			}
		}
	}
}

// CellByID descends the tree following id's child indices. If id runs past
// the deepest reachable leaf, the deepest reachable ancestor is returned
// together with ErrIdTooDeep (non-fatal; callers may treat the ancestor as
// the leaf).
func (t *Tree) CellByID(id ID) (*Cell, error) {
	cur := t.root
	for depth := 0; depth < id.Depth(); depth++ {
		if cur.IsLeaf() {
			return cur, fmt.Errorf("cell: CellByID(%v): %w", id, ErrIdTooDeep)
		}
		idx := int(id.At(depth))
		if idx < 0 || idx >= len(cur.Children) {
			return cur, fmt.Errorf("cell: CellByID(%v): %w", id, ErrIdTooDeep)
		}
		cur = cur.Children[idx]
	}
	return cur, nil
}

// CellByPoint returns the deepest leaf containing (x, y). Points exactly on
// a cell boundary, or outside the root, are out of bounds (strict
// inequality on all four sides).
func (t *Tree) CellByPoint(x, y float64) (*Cell, error) {
	if math.IsNaN(x) || math.IsNaN(y) || !t.root.Bounds.Contains(x, y) {
		return nil, fmt.Errorf("cell: CellByPoint(%g,%g): %w", x, y, ErrOutOfBounds)
	}

	cur := t.root
	for !cur.IsLeaf() {
		idx, ok := cellNumberForPoint(x, y, cur.Bounds, cur.CellsByX, cur.CellsByY)
		if !ok {
			return nil, fmt.Errorf("cell: CellByPoint(%g,%g): %w", x, y, ErrOutOfBounds)
		}
		cur = cur.Children[idx]
	}
	if !cur.Bounds.Contains(x, y) {
		return nil, fmt.Errorf("cell: CellByPoint(%g,%g): %w", x, y, ErrOutOfBounds)
	}
	return cur, nil
}

// cellNumberForPoint maps (x,y) inside bounds to the child index under the
// cell_number = (ny-1-j)*nx + i formula, j counted from the south.
func cellNumberForPoint(x, y float64, b Bounds, nx, ny int32) (int, bool) {
	if !b.Contains(x, y) {
		return 0, false
	}
	cellW := b.Width() / float64(nx)
	cellH := b.Height() / float64(ny)

	i := int32(math.Floor((x - b.SwX) / cellW))
	j := int32(math.Floor((y - b.SwY) / cellH))
	if i < 0 {
		i = 0
	} else if i >= nx {
		i = nx - 1
	}
	if j < 0 {
		j = 0
	} else if j >= ny {
		j = ny - 1
	}

	return int((ny - 1 - j) * nx + i), true
}

// SampleUniform draws n independent uniform points from c's open rectangle.
func SampleUniform(c *Cell, n int, rng *rand.Rand) [][2]float64 {
	pts := make([][2]float64, n)
	w, h := c.Bounds.Width(), c.Bounds.Height()
	for i := range pts {
		pts[i] = [2]float64{
			c.Bounds.SwX + rng.Float64()*w,
			c.Bounds.SwY + rng.Float64()*h,
		}
	}
	return pts
}

// MarkDiscarded sets Status = Discarded on every leaf named by ids.
// IDs that resolve past the deepest fragmentation (ErrIdTooDeep) are
// applied to the deepest reachable ancestor, consistent with CellByID.
func (t *Tree) MarkDiscarded(ids []ID) {
	for _, id := range ids {
		c, _ := t.CellByID(id)
		c.Status = Discarded
	}
}

// SetCluster assigns cluster label k to the leaf named by id.
func (t *Tree) SetCluster(id ID, k int) {
	c, _ := t.CellByID(id)
	c.Cluster = k
}
