// Package mazegen generates perfect mazes as wall masks for grid.New.
//
// A maze of rows × cols cells is laid out on a (2·rows+1) × (2·cols+1)
// mask: cells at odd coordinates, walls between them, a solid border. The
// start is a gap in the top border and the end a gap in the bottom border.
//
// Generators (all produce spanning trees, so every pair of cells is joined
// by exactly one path):
//
//   - backtracking   randomized depth-first search (default).
//   - prims          randomized Prim's algorithm.
//   - wilson         loop-erased random walks (uniform spanning tree).
//   - aldousbroder   random walk over the whole grid (uniform).
//   - binarytree     each cell opens North or West.
//
// Generation is deterministic for a given *rand.Rand; Generate seeds one
// from an int64 (0 selects a fixed default).
//
// Complexity: O(rows·cols) for backtracking, prims and binarytree; wilson
// and aldousbroder take expected time bounded by the random-walk cover time.
package mazegen
