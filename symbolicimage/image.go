package symbolicimage

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/chainrecurrent/locator/cell"
	"github.com/chainrecurrent/locator/mapping"
	"github.com/chainrecurrent/locator/scc"
)

// Image is a built symbolic image: a scc.Graph over the active leaves of a
// cell.Tree at the moment Build was called, plus the ID<->index mapping
// needed to translate SCC results back to cell identities.
type Image struct {
	Graph *scc.Graph
	IDs   []cell.ID

	indexOf map[string]int
}

// IndexOf returns the node index assigned to id, or (-1, false) if id was
// not an active leaf when the image was built.
func (img *Image) IndexOf(id cell.ID) (int, bool) {
	i, ok := img.indexOf[id.Key()]
	return i, ok
}

type edge struct{ u, v int }

// Build samples samplesPerCell points from every active leaf of tree,
// maps each through (f, g), and adds an edge to the containing destination
// leaf unless the sample lands out of bounds or in a Discarded cell — in
// which case sampling for that source leaf halts immediately (see package
// doc). parallel selects whether leaves are sampled by a bounded worker
// pool (each worker's edges buffered locally and merged once all workers
// finish, per the "per-leaf local buffer" concurrency option) or
// sequentially in tree-traversal order.
func Build(tree *cell.Tree, f, g mapping.Func, samplesPerCell int, rng *rand.Rand, parallel bool) (*Image, error) {
	if samplesPerCell < 1 {
		return nil, fmt.Errorf("symbolicimage: Build(samples_per_cell=%d): %w", samplesPerCell, ErrInvalidConfig)
	}

	var leaves []*cell.Cell
	for c := range tree.LeavesActive() {
		leaves = append(leaves, c)
	}

	indexOf := make(map[string]int, len(leaves))
	ids := make([]cell.ID, len(leaves))
	for i, c := range leaves {
		indexOf[c.ID.Key()] = i
		ids[i] = c.ID
	}

	// Draw one seed per leaf up front, in traversal order, so the result
	// is identical whether leaves are processed sequentially or by a
	// worker pool — concurrency must not perturb the sampling stream's
	// per-leaf determinism.
	seeds := make([]int64, len(leaves))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	edgeBuffers := make([][]edge, len(leaves))
	sampleLeaf := func(i int) {
		leafRng := rand.New(rand.NewSource(seeds[i]))
		edgeBuffers[i] = sampleOneLeaf(tree, leaves[i], i, f, g, samplesPerCell, leafRng, indexOf)
	}

	if parallel && len(leaves) > 1 {
		workers := runtime.GOMAXPROCS(0)
		if workers > len(leaves) {
			workers = len(leaves)
		}
		var wg sync.WaitGroup
		next := make(chan int)
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range next {
					sampleLeaf(i)
				}
			}()
		}
		for i := range leaves {
			next <- i
		}
		close(next)
		wg.Wait()
	} else {
		for i := range leaves {
			sampleLeaf(i)
		}
	}

	graph := scc.NewGraph(len(leaves))
	for _, buf := range edgeBuffers {
		for _, e := range buf {
			_ = graph.AddEdge(e.u, e.v)
		}
	}

	return &Image{Graph: graph, IDs: ids, indexOf: indexOf}, nil
}

func sampleOneLeaf(tree *cell.Tree, leaf *cell.Cell, srcIdx int, f, g mapping.Func, n int, rng *rand.Rand, indexOf map[string]int) []edge {
	points := cell.SampleUniform(leaf, n, rng)
	var edges []edge

	for _, p := range points {
		qx, qy := f(p[0], p[1]), g(p[0], p[1])
		if math.IsNaN(qx) || math.IsNaN(qy) || math.IsInf(qx, 0) || math.IsInf(qy, 0) {
			break // NonFiniteMapping: treated as out-of-bounds, abort sampling for this leaf
		}
		if !tree.Root().Bounds.Contains(qx, qy) {
			break // out of bounds: abort sampling for this leaf
		}

		dst, err := tree.CellByPoint(qx, qy)
		if err != nil {
			break
		}
		if dst.Status == cell.Discarded {
			break
		}

		dstIdx, ok := indexOf[dst.ID.Key()]
		if !ok {
			// dst is active but wasn't part of the node set this image was
			// built over (should not happen given both derive from the
			// same tree snapshot); treat conservatively as no edge.
			continue
		}
		edges = append(edges, edge{u: srcIdx, v: dstIdx})
	}

	return edges
}
