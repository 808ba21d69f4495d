package localiser

import (
	"github.com/chainrecurrent/locator/cell"
	"github.com/chainrecurrent/locator/scc"
	"github.com/chainrecurrent/locator/symbolicimage"
)

// markup applies the post-SCC policy to tree: a component is non-trivial
// if it has more than one member, or a single member with a self-loop
// (scc.Result.IsNonTrivial); non-trivial components get their index
// written as the cluster label on every member cell, trivial components
// are discarded immediately. This follows the self-loop-aware definition
// of spec.md §4.3 rather than the original source's literal `len(component)
// > 1` check, which (per spec.md §9's open question) would wrongly discard
// a non-trivial self-loop singleton — see scenario S2 in spec.md §8.
func markup(tree *cell.Tree, img *symbolicimage.Image, res *scc.Result) {
	for i, comp := range res.Components {
		ids := make([]cell.ID, len(comp))
		for j, node := range comp {
			ids[j] = img.IDs[node]
		}

		if res.IsNonTrivial(img.Graph, i) {
			for _, id := range ids {
				tree.SetCluster(id, i)
			}
		} else {
			tree.MarkDiscarded(ids)
		}
	}
}
