package grid

// Component returns the Open cells reachable from `from`, in BFS discovery
// order (from first). A Wall or out-of-bounds origin yields nil.
//
// Time:   O(H×W).
// Memory: O(H×W) for the seen flags and output.
func (g *Grid) Component(from Pos) []Pos {
	if !g.IsOpen(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.Index(from)] = true
	queue := []Pos{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, st := range g.Neighbors(queue[qi]) {
			i := g.Index(st.Pos)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, st.Pos)
			}
		}
	}
	return queue
}

// Connected reports whether b is reachable from a.
func (g *Grid) Connected(a, b Pos) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	for _, p := range g.Component(a) {
		if p == b {
			return true
		}
	}
	return false
}
