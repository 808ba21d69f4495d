package localiser

import (
	"fmt"
	"math/rand"

	"github.com/chainrecurrent/locator/cell"
	"github.com/chainrecurrent/locator/scc"
	"github.com/chainrecurrent/locator/symbolicimage"
)

// Result is the outcome of a localisation Run.
type Result struct {
	// Xs, Ys are parallel point-cloud arrays sampled from the surviving
	// Active leaves, in leaf-traversal order.
	Xs, Ys []float32

	// Order holds the topological order of surviving non-trivial
	// components (condensation node ids, translated to each component's
	// cluster label and member cell IDs) when Config.TopsortEnabled is set;
	// otherwise nil.
	Order []ComponentOrder
}

// ComponentOrder names one surviving component in the topological order:
// its cluster label (as written by markup) and the cell IDs of its
// members.
type ComponentOrder struct {
	Cluster int
	Cells   []cell.ID
}

// Run drives the full pipeline described in the package doc and returns
// the sampled point cloud (and, if requested, the topological order of
// the final layer's non-trivial components).
func Run(cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tree, err := cell.New(cfg.Bounds)
	if err != nil {
		return nil, fmt.Errorf("localiser: Run: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	logf(cfg.Logger, "fragmenting root into %dx%d", cfg.InitialFragmentsX, cfg.InitialFragmentsY)
	if err := tree.Fragment(cfg.InitialFragmentsX, cfg.InitialFragmentsY); err != nil {
		return nil, fmt.Errorf("localiser: Run: %w", err)
	}

	var lastImg *symbolicimage.Image
	var lastRes *scc.Result

	step := func() error {
		img, err := symbolicimage.Build(tree, cfg.F, cfg.G, cfg.SamplesPerCell, rng, cfg.Parallel)
		if err != nil {
			return fmt.Errorf("localiser: Run: %w", err)
		}
		res := scc.Tarjan(img.Graph)
		markup(tree, img, res)
		lastImg, lastRes = img, res
		return nil
	}

	if err := step(); err != nil {
		return nil, err
	}

	for k := 1; k <= cfg.Depth; k++ {
		logf(cfg.Logger, "refine step %d/%d", k, cfg.Depth)
		tree.Refine()
		if err := step(); err != nil {
			return nil, err
		}
	}

	result := &Result{}

	if cfg.TopsortEnabled {
		result.Order = topologicalSurvivors(tree, lastImg, lastRes)
	}

	result.Xs, result.Ys = sampleActive(tree, cfg.CellDensity, rng)

	logf(cfg.Logger, "sampled %d points from surviving cells", len(result.Xs))

	return result, nil
}

// topologicalSurvivors condenses the final layer's symbolic image, orders
// its components topologically, and keeps only the non-trivial ones (size
// > 1, or a single member with a self-loop), dropping every trivial
// component wherever it falls in the size order.
func topologicalSurvivors(tree *cell.Tree, img *symbolicimage.Image, res *scc.Result) []ComponentOrder {
	dag := scc.Condense(img.Graph, res)
	order := scc.TopoOrder(dag)

	nonTrivialCount := 0
	for i := range res.Components {
		if res.IsNonTrivial(img.Graph, i) {
			nonTrivialCount++
		}
	}

	survivors := make([]ComponentOrder, 0, nonTrivialCount)
	for _, compIdx := range order {
		if !res.IsNonTrivial(img.Graph, compIdx) {
			continue
		}
		ids := make([]cell.ID, len(res.Components[compIdx]))
		for j, node := range res.Components[compIdx] {
			ids[j] = img.IDs[node]
		}
		survivors = append(survivors, ComponentOrder{Cluster: compIdx, Cells: ids})
	}
	return survivors
}

// sampleActive draws cellDensity points from every surviving Active leaf,
// concatenated in leaf-traversal order.
func sampleActive(tree *cell.Tree, cellDensity int, rng *rand.Rand) ([]float32, []float32) {
	var xs, ys []float32
	for leaf := range tree.LeavesActive() {
		for _, p := range cell.SampleUniform(leaf, cellDensity, rng) {
			xs = append(xs, float32(p[0]))
			ys = append(ys, float32(p[1]))
		}
	}
	return xs, ys
}
