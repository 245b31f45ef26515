// SPDX-License-Identifier: MIT
// Package: ansatz/coupling
//
// cycle.go - ring detection over the coupling graph.
//
// Three-color DFS from every unvisited wire in ascending order; the first
// back edge to a Gray wire other than the DFS parent closes a ring.
// Parallel placements on one pair never form a ring (edges are distinct).
//
// Complexity: O(V + E) time, O(V) stack.

package coupling

const (
	white = iota
	gray
	black
)

// FindCycle returns one ring of coupled wires as a closed walk
// [w0, w1, ..., w0], rotated to start at its smallest wire and oriented
// toward the smaller neighbor. ok is false when the graph is a forest.
func (g *Graph) FindCycle() (cycle []int, ok bool) {
	if g == nil {
		return nil, false
	}
	state := make([]int, g.wires)
	path := make([]int, 0, g.wires)
	for w := 0; w < g.wires; w++ {
		if state[w] != white {
			continue
		}
		if ring := g.visit(w, -1, state, &path); ring != nil {
			return canonicalRing(ring), true
		}
	}

	return nil, false
}

// HasCycle reports whether some ring of couplings exists.
func (g *Graph) HasCycle() bool {
	_, ok := g.FindCycle()
	return ok
}

func (g *Graph) visit(w, parent int, state []int, path *[]int) []int {
	state[w] = gray
	*path = append(*path, w)
	for _, nbr := range g.adj[w] {
		if nbr == parent {
			continue
		}
		switch state[nbr] {
		case white:
			if ring := g.visit(nbr, w, state, path); ring != nil {
				return ring
			}
		case gray:
			idx := indexOf(*path, nbr)
			ring := append([]int(nil), (*path)[idx:]...)
			return append(ring, nbr)
		}
	}
	*path = (*path)[:len(*path)-1]
	state[w] = black

	return nil
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// canonicalRing rotates the closed walk to its minimum and picks the
// direction whose second wire is smaller.
func canonicalRing(closed []int) []int {
	base := closed[:len(closed)-1]
	n := len(base)
	start := 0
	for i, v := range base {
		if v < base[start] {
			start = i
		}
	}

	fwd := make([]int, 0, n+1)
	rev := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		fwd = append(fwd, base[(start+i)%n])
		rev = append(rev, base[(start-i+n)%n])
	}
	pick := fwd
	if n > 1 && rev[1] < fwd[1] {
		pick = rev
	}

	return append(pick, pick[0])
}
