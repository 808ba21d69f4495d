package localiser

import "errors"

// ErrInvalidConfig indicates cell_density < 1, depth < 1, samples_per_cell
// < 1, a non-positive initial fragmentation factor, or a nil mapping.
var ErrInvalidConfig = errors.New("localiser: invalid configuration")
