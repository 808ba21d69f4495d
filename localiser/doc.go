// Package localiser drives the full chain-recurrent-set localisation
// pipeline: initial fragmentation, symbolic image, SCC decomposition,
// markup, repeated refinement, and final point sampling.
//
// The state machine is Init -> Fragmented -> Imaged -> Decomposed ->
// MarkedUp -> (refine?) -> ... -> Sampled, exactly as in the original
// tool's condense_connected_components, reimplemented without its
// tqdm progress bars, cProfile dumps, or module-level logger (see
// SPEC_FULL.md §9) — Run instead takes an optional *log.Logger sink.
package localiser
