// Package symbolicimage builds the directed graph of cell-to-cell
// reachability under a planar map (f, g), sampled by Monte-Carlo probing of
// the currently active leaves of a cell.Tree.
//
// For each active leaf u, samples_per_cell points are drawn uniformly from
// u and mapped through (f, g). The first sample whose image falls outside
// the root bounds, or lands in a Discarded cell, halts further sampling
// from u for this build — a cell whose sampled trajectory leaves the
// region is treated as having unreliable outgoing reachability, and
// omitting those edges biases the image toward isolating the truly
// recurrent core. This early-abort behaviour is load-bearing and must not
// be "fixed" into sampling every point regardless of a prior miss.
package symbolicimage
