package cell

import "strings"

// Status is the lifecycle tag of a leaf cell.
type Status int

const (
	// Active leaves are sampled by the symbolic image and may be refined.
	Active Status = iota
	// Discarded leaves are transient: they were pruned by markup and are
	// never sampled or refined again.
	Discarded
)

// String implements fmt.Stringer for readable test failures and logs.
func (s Status) String() string {
	if s == Discarded {
		return "DISCARDED"
	}
	return "ACTIVE"
}

// UnlabeledCluster is the cluster value a cell starts with. Markup labels a
// cell with its component's index, so members of component 0 also carry
// this value; 0 alone does not mark a cell as never assigned.
const UnlabeledCluster = 0

// ID is an immutable ordered sequence of child indices from the root. The
// root's ID is the empty sequence. Two IDs are equal iff their sequences are
// equal element-wise; there is no string-keyed identity anywhere in this
// package — the original source's "dotted string" existed only to satisfy a
// third-party string-keyed graph library and has no place here.
//
// ID is a slice type and therefore not itself a valid map key. Code that
// needs to index by ID (the symbolic-image graph, the SCC engine) uses
// Key(), which hashes the sequence into a comparable string without
// pretending that string is the cell's identity.
type ID struct {
	path []int32
}

// RootID returns the empty-sequence ID of the tree root.
func RootID() ID { return ID{} }

// Child returns the ID obtained by appending idx to id.
func (id ID) Child(idx int32) ID {
	path := make([]int32, len(id.path)+1)
	copy(path, id.path)
	path[len(id.path)] = idx
	return ID{path: path}
}

// Depth reports how many fragmentation levels separate id from the root.
func (id ID) Depth() int { return len(id.path) }

// At returns the child index at the given depth (0 = the index chosen at
// the root's own fragmentation).
func (id ID) At(depth int) int32 { return id.path[depth] }

// Equal reports whether id and other name the same cell.
func (id ID) Equal(other ID) bool {
	if len(id.path) != len(other.path) {
		return false
	}
	for i := range id.path {
		if id.path[i] != other.path[i] {
			return false
		}
	}
	return true
}

// Key returns a comparable, hashable representation of id suitable for use
// as a map key. It has no meaning outside this process and is never
// surfaced as the cell's public identity.
func (id ID) Key() string {
	if len(id.path) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(id.path) * 3)
	for i, v := range id.path {
		if i > 0 {
			b.WriteByte('/')
		}
		writeInt32(&b, v)
	}
	return b.String()
}

func writeInt32(b *strings.Builder, v int32) {
	if v == 0 {
		b.WriteByte('0')
		return
	}
	var buf [12]byte
	n := len(buf)
	neg := v < 0
	if neg {
		v = -v
	}
	for v > 0 {
		n--
		buf[n] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		n--
		buf[n] = '-'
	}
	b.Write(buf[n:])
}

// Bounds is an axis-aligned rectangle, sw (south-west) to ne (north-east).
type Bounds struct {
	SwX, SwY, NeX, NeY float64
}

// Width returns NeX - SwX.
func (b Bounds) Width() float64 { return b.NeX - b.SwX }

// Height returns NeY - SwY.
func (b Bounds) Height() float64 { return b.NeY - b.SwY }

// Contains reports whether (x, y) lies strictly inside b. Points on any of
// the four edges are considered outside, per the boundary convention in
// Tree.CellByPoint.
func (b Bounds) Contains(x, y float64) bool {
	return x > b.SwX && x < b.NeX && y > b.SwY && y < b.NeY
}

func (b Bounds) valid() bool {
	return b.NeX > b.SwX && b.NeY > b.SwY
}

// Cell is a single rectangular region of the tree: either a leaf (no
// children) or an internal node subdivided into CellsByX*CellsByY children.
//
// Invariants (see package doc and spec §3):
//   - children tile the parent exactly;
//   - a cell with children is not a leaf and is never sampled;
//   - a Discarded leaf is never further subdivided;
//   - cell width/height are strictly positive.
type Cell struct {
	Bounds  Bounds
	ID      ID
	Status  Status
	Cluster int

	// CellsByX, CellsByY is the subdivision factor applied to this cell.
	// (1, 1) means "this cell is a leaf" — it has not been fragmented.
	CellsByX, CellsByY int32

	Children []*Cell
}

// IsLeaf reports whether c currently has no children.
func (c *Cell) IsLeaf() bool { return len(c.Children) == 0 }
