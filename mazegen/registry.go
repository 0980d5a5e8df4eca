package mazegen

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator names accepted by ByName.
const (
	NameBacktracking = "backtracking"
	NamePrims        = "prims"
	NameWilson       = "wilson"
	NameAldousBroder = "aldousbroder"
	NameBinaryTree   = "binarytree"
)

// DefaultGenerator is used when no name is configured.
const DefaultGenerator = NameBacktracking

// defaultSeed replaces seed 0 so that runs are always reproducible.
const defaultSeed int64 = 1

// Names lists the registered generators.
func Names() []string {
	return []string{NameBacktracking, NamePrims, NameWilson, NameAldousBroder, NameBinaryTree}
}

// ByName returns the generator registered under name (case-insensitive).
// An empty name selects DefaultGenerator.
func ByName(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameBacktracking, "":
		return Backtracking{}, nil
	case NamePrims:
		return Prims{}, nil
	case NameWilson:
		return Wilson{}, nil
	case NameAldousBroder:
		return AldousBroder{}, nil
	case NameBinaryTree:
		return BinaryTree{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownGenerator, name, strings.Join(Names(), ", "))
	}
}

// Generate builds a rows × cols maze with the named generator from a fresh
// source seeded with seed (0 selects a fixed default).
func Generate(name string, rows, cols int, seed int64) (*Maze, error) {
	gen, err := ByName(name)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = defaultSeed
	}
	return gen.Generate(rows, cols, rand.New(rand.NewSource(seed)))
}
