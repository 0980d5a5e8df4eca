// Package grid models a rectangular, 4-connected maze as an immutable
// connectivity structure shared by the pathfinding and MDP engines.
//
// What:
//
//   - Grid is built once from a boolean wall mask (true = blocked) and two
//     endpoints. A position is a Wall iff the mask blocks it and it is neither
//     the start nor the end; every other position is Open.
//   - Each Open cell carries four edge flags (N, E, S, W). A flag is set iff
//     the neighbour in that direction is in bounds and Open, so flags are
//     always symmetric and never point at a Wall or off the grid.
//   - Directions are always enumerated North → East → South → West. Every
//     tie-break in this module relies on that order.
//
// Complexity:
//
//   - New:        O(H×W) time and memory, single pass.
//   - Neighbor:   O(1).
//   - Neighbors:  O(1) (at most four steps).
//   - OpenCells:  O(H×W).
//   - Component:  O(H×W) flood fill.
//
// Errors:
//
//   - ErrEmptyMask:       mask has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrOutOfBounds:     start, end or a queried position lies off the grid.
//   - ErrStartIsEnd:      start and end coincide.
//   - ErrBlockedEndpoint: start or end does not resolve to an Open cell.
//   - ErrNoNeighbor:      no open edge in the requested direction.
package grid
