// Package evaluation benchmarks the pathfinding and MDP solvers on
// generated mazes.
//
// Run generates one maze per (size, seed), runs DFS, BFS, the three A*
// variants, Value Iteration and Policy Iteration on it, and returns a
// Report of Rows tagged with a short random run id. MDP solvers run
// without snapshots on their own freshly initialised models. Metrics that
// do not apply to an algorithm are NA.
package evaluation
