// Package scc computes strongly connected components of an arbitrary
// directed, node-indexed graph using an iterative variant of Tarjan's
// algorithm, plus condensation into a DAG and a topological ordering of
// that DAG.
//
// Nodes are dense non-negative integers; callers that key their graph by
// something else (cell.ID, in this module) maintain their own index
// externally and translate results back. This mirrors the redesign away
// from a string-keyed, inherited graph container: per-node bookkeeping
// (index, low-link, on-stack, component) lives in flat parallel slices
// keyed by the dense node id, not in dynamically-attached node attributes.
//
// Traversal never recurses: a symbolic image at fragmentation depth 8 can
// have on the order of 10^7 nodes, far past any default goroutine stack
// limit, so both the Tarjan walk and the condensation topological sort use
// an explicit work stack.
package scc
