// Package locator traces orbits and localises the chain-recurrent set of a
// user-supplied planar map (x, y) -> (f(x, y), g(x, y)) using Osipenko's
// symbolic-image method: adaptive cell subdivision, Monte-Carlo sampling of
// cell-to-cell reachability, strongly-connected-component decomposition,
// and iterative refine/prune.
//
// The module is organized as a set of small, single-purpose packages
// rather than one monolithic core:
//
//	cell/          — adaptive 2-D cell subdivision (the symbolic-image tree)
//	scc/           — iterative Tarjan SCC, condensation, topological sort
//	symbolicimage/ — Monte-Carlo construction of the cell-reachability graph
//	localiser/     — the full fragment -> image -> decompose -> markup -> refine pipeline
//	orbit/         — plain forward iteration of (f, g) from a starting point
//	mapping/       — compiles a user-entered "x, y" expression into a callable
//	session/       — persists the last-used parameters of each CLI mode
//	plot/          — renders a point cloud as a scatter-plot PNG
//	cmd/crloc/     — the command-line front end tying the above together
//
// Each package is independently testable. The core algorithms (cell, scc,
// symbolicimage, localiser, orbit) never import the CLI and never call the
// mapping compiler: they use package mapping only for its Func function
// type, never depending on how a Func was produced.
package locator
