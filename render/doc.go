// Package render draws grids, search results and MDP snapshots as text,
// colored with ANSI escapes via aurora unless WithColor(false) is given.
//
//   - Path:   walls, visited cells and the path of a pathfinding.Result.
//   - Policy: one arrow per cell (^ > v <) from an mdp.Snapshot.
//   - Values: fixed-width cell values from an mdp.Snapshot.
package render
