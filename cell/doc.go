// Package cell implements the adaptive 2-D subdivision used to localise the
// chain-recurrent set of a planar map: a quadtree-like tree of axis-aligned
// rectangular cells, each tagged active or discarded and carrying a cluster
// label.
//
// A Tree is rooted at a single cell spanning a bounding box. The first call
// to Fragment replaces the root's (1,1) cell factor with an nx×ny grid of
// leaves; each subsequent call to Refine replaces every active leaf's (1,1)
// factor with (2,2), quartering it. Cells are never deleted: a discarded
// leaf stays a leaf forever (it is never refined again), and an active leaf
// that is refined stops being a leaf but its children remain reachable by
// CellByID.
//
// Complexity: point lookup and ID lookup are O(depth) — a descent of the
// tree using an O(1) index formula per level, not a search. Leaf
// enumeration is O(#leaves).
package cell
