// Command mazebench generates mazes and benchmarks pathfinding and MDP
// solvers on them.
//
//	mazebench pathfinding [solver...]   search one maze and draw the paths
//	mazebench mdp [solver...]           solve one maze as an MDP
//	mazebench eval                      benchmark every solver over sizes × seeds
//	mazebench config                    print the effective configuration
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "mazebench:", err)
		os.Exit(1)
	}
}
