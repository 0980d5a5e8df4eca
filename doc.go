// Package mazebench generates perfect mazes and benchmarks two families of
// solvers on them: graph search (DFS, BFS, A* with three heuristics) and
// Markov Decision Process planning (Value Iteration, Policy Iteration).
//
// Layout:
//
//	grid/          immutable 4-connected maze with per-cell open directions
//	frontier/      min-priority frontier with FIFO tie-breaking
//	pathfinding/   DFS, BFS and A* with visit order, frontier and run stats
//	mdp/           grid MDP model with noisy moves, VI and PI solvers
//	mazegen/       seeded perfect-maze generators
//	render/        text rendering of paths, policies and values
//	evaluation/    benchmark runner over sizes × seeds
//	report/        CSV, console tables, summary statistics, HTML charts
//	config/        YAML, .env and MAZEBENCH_* configuration
//	cmd/mazebench/ command-line entry point
//
// Quick start:
//
//	m, _ := mazegen.Generate("wilson", 10, 10, 42)
//	g, _ := m.Grid()
//	res, _ := pathfinding.NewBFS().Solve(g, g.Start())
//	_ = render.Path(os.Stdout, g, res.Visited, res.Path)
package mazebench
