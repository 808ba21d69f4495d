package scc

import "errors"

// ErrNodeOutOfRange indicates an edge endpoint outside [0, N) was passed to
// a Graph built for N nodes.
var ErrNodeOutOfRange = errors.New("scc: node index out of range")
