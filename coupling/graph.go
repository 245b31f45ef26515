// SPDX-License-Identifier: MIT
// Package: ansatz/coupling
//
// graph.go - the undirected wire-coupling graph of a template.
//
// Contract:
//   - Vertices are wires 0..Wires()-1; every wire exists even if isolated.
//   - Every placement touching ≥ 2 wires couples each pair it contains.
//   - Direction is dropped: [1 0] and [0 1] are the same edge.
//   - Edge multiplicity counts how many placements couple the pair.
//   - A placement referencing a wire outside the range is an error.
//
// Determinism:
//   - Neighbors and Edges are sorted ascending.

package coupling

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ansatz/ansatz"
	"github.com/katalvlaran/ansatz/layer"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is queried.
	ErrGraphNil = errors.New("coupling: graph is nil")

	// ErrTemplateNil is returned by FromTemplate(nil).
	ErrTemplateNil = errors.New("coupling: template is nil")

	// ErrWireOutOfRange indicates a wire index outside 0..wires-1.
	ErrWireOutOfRange = errors.New("coupling: wire out of range")

	// ErrInvalidWires indicates a wire count below 1.
	ErrInvalidWires = errors.New("coupling: wire count must be ≥ 1")
)

// Edge is an undirected coupling between wires A < B.
type Edge struct {
	A, B int
	// Count is the number of placements coupling A and B.
	Count int
}

// Graph is an immutable adjacency view over wires.
type Graph struct {
	wires int
	adj   [][]int
	count map[[2]int]int
}

// FromTemplate couples the wires of every multi-wire placement in t.
func FromTemplate(t *ansatz.Template) (*Graph, error) {
	if t == nil {
		return nil, ErrTemplateNil
	}

	return FromBlocks(t.Wires(), t.Blocks())
}

// FromBlocks couples the wires of every multi-wire placement in blocks.
func FromBlocks(wires int, blocks []layer.Block) (*Graph, error) {
	if wires < 1 {
		return nil, fmt.Errorf("FromBlocks: wires=%d: %w", wires, ErrInvalidWires)
	}

	g := &Graph{wires: wires, adj: make([][]int, wires), count: make(map[[2]int]int)}
	for bi, b := range blocks {
		for _, pl := range b.Placements {
			for _, w := range pl {
				if w < 0 || w >= wires {
					return nil, fmt.Errorf("FromBlocks: block %d places wire %d of %d: %w", bi, w, wires, ErrWireOutOfRange)
				}
			}
			for i := 0; i < len(pl); i++ {
				for j := i + 1; j < len(pl); j++ {
					g.couple(pl[i], pl[j])
				}
			}
		}
	}
	for w := range g.adj {
		sort.Ints(g.adj[w])
	}

	return g, nil
}

// couple records one placement on the pair {a, b}; self-pairs are ignored.
func (g *Graph) couple(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}
	if g.count[key] == 0 {
		g.adj[a] = append(g.adj[a], b)
		g.adj[b] = append(g.adj[b], a)
	}
	g.count[key]++
}

// Wires returns the vertex count.
func (g *Graph) Wires() int { return g.wires }

func (g *Graph) checkWire(method string, w int) error {
	if g == nil {
		return ErrGraphNil
	}
	if w < 0 || w >= g.wires {
		return fmt.Errorf("%s(%d) of %d: %w", method, w, g.wires, ErrWireOutOfRange)
	}

	return nil
}

// Neighbors returns the distinct wires coupled to w, ascending.
func (g *Graph) Neighbors(w int) ([]int, error) {
	if err := g.checkWire("Neighbors", w); err != nil {
		return nil, err
	}

	return append([]int(nil), g.adj[w]...), nil
}

// Degree returns the number of distinct wires coupled to w.
func (g *Graph) Degree(w int) (int, error) {
	if err := g.checkWire("Degree", w); err != nil {
		return 0, err
	}

	return len(g.adj[w]), nil
}

// Edges returns every coupled pair with its multiplicity, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.count))
	for key, n := range g.count {
		out = append(out, Edge{A: key[0], B: key[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
