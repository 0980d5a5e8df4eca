// Package pathfinding implements depth-first, breadth-first and A* search
// from a start cell to the goal of a grid.Grid, with run instrumentation.
//
// Every strategy satisfies Solver and returns a Result holding:
//
//   - Visited: Open cells in first-visitation order, without duplicates.
//   - Path:    start → goal inclusive, or empty when the goal is unreachable.
//   - RunTime, PeakMemoryBytes: measured from entry until the goal is found
//     or the search space is exhausted.
//   - MaxFrontierSize: the largest the stack / queue / heap ever grew.
//
// Strategy traits (kept exactly, they shape Visited and MaxFrontierSize):
//
//   - DFS finalizes visitation when a cell is popped, not when it is pushed,
//     so a cell may sit on the stack several times. The goal is recognised
//     on pop and is not itself appended to Visited.
//   - BFS marks cells visited at enqueue time; each cell is queued once.
//   - A* orders the frontier by f = g + h(cell, goal) with unit edge costs,
//     marks cells at first discovery and never relaxes a discovered cell.
//     Equal f values pop in push order.
//
// An unreachable goal is a normal outcome: the result carries the start's
// whole connected component in Visited and an empty Path.
//
// Complexity (V = open cells): O(V) time for BFS and DFS (DFS stack may hold
// O(4V) entries), O(V log V) for A*; O(V) memory.
//
// Options:
//
//   - WithContext(ctx)  cancellation, checked once per expansion.
//   - WithOnVisit(fn)   hook called whenever a cell is appended to Visited.
//   - WithLogger(l)     slog logger for a Debug summary record per run.
//
// Errors:
//
//   - ErrNilGrid        the grid is nil.
//   - ErrStartNotOpen   start is out of bounds or a Wall.
//   - ErrNilHeuristic   A* constructed without a heuristic.
//   - ErrUnknownSolver  ByName received an unknown name.
package pathfinding
