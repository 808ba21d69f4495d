package cell

import "errors"

// Sentinel errors for cell tree operations.
var (
	// ErrInvalidBounds indicates a bounding box with ne <= sw on some axis.
	ErrInvalidBounds = errors.New("cell: bounds have ne <= sw on at least one axis")

	// ErrInvalidFactor indicates a non-positive subdivision factor.
	ErrInvalidFactor = errors.New("cell: cells_by_x and cells_by_y must be positive")

	// ErrNotALeaf indicates an operation that requires a leaf was given an
	// already-subdivided cell.
	ErrNotALeaf = errors.New("cell: cell is not a leaf")

	// ErrOutOfBounds indicates a point lies outside the root rectangle, or
	// exactly on a cell boundary (boundaries belong to neither side; see
	// Tree.CellByPoint).
	ErrOutOfBounds = errors.New("cell: point is out of bounds")

	// ErrIdTooDeep is a non-fatal signal from CellByID: the requested ID
	// runs past the deepest fragmented level. The deepest reachable
	// ancestor is returned alongside this error.
	ErrIdTooDeep = errors.New("cell: id is deeper than the current fragmentation")
)
