package symbolicimage

import "errors"

// ErrInvalidConfig indicates samples_per_cell < 1.
var ErrInvalidConfig = errors.New("symbolicimage: samples_per_cell must be >= 1")
