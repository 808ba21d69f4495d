// Package orbit implements forward iteration of a planar map (f, g) from a
// starting point — the "arbitrary mapping" mode of the original tool.
//
// The original source computed x_new, y_new = f(x, y), g(x_new, y): the
// new x first, then the new y from the already-updated x paired with the
// old y. That staggered order is not a fixed point of the stated model
// (x_{n+1}, y_{n+1}) = (f(x_n, y_n), g(x_n, y_n)); Trace defaults to the
// simultaneous update and exposes the staggered one only for parity
// testing against the original tool's output.
package orbit
