// SPDX-License-Identifier: MIT
// Package: ansatz/coupling
//
// bfs.go - breadth-first search over the coupling graph.
//
// Neighbors are expanded in ascending wire order, so Order, Depth and
// Parent are reproducible for a given graph and start.

package coupling

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("coupling: invalid option supplied")

// Option configures BFS.
// An invalid Option is recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds BFS parameters and hooks.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
	// OnVisit runs on every visited wire; an error aborts the search.
	OnVisit func(wire, depth int) error
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(wire, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration to depth d; 0 means no limit and d < 0
// is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a BFS traversal.
type Result struct {
	// Order lists wires in visit sequence.
	Order []int
	// Depth maps each reached wire to its hop distance from the start.
	Depth map[int]int
	// Parent maps each reached wire except the start to its BFS-tree parent.
	Parent map[int]int
}

// PathTo rebuilds the start→w path from Parent; ok is false if w was not reached.
func (r *Result) PathTo(w int) (path []int, ok bool) {
	if _, reached := r.Depth[w]; !reached {
		return nil, false
	}
	for {
		path = append(path, w)
		p, has := r.Parent[w]
		if !has {
			break
		}
		w = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

type queueItem struct {
	wire  int
	depth int
}

// walker holds mutable BFS state.
type walker struct {
	graph   *Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
func BFS(g *Graph, start int, opts ...Option) (*Result, error) {
	if err := g.checkWire("BFS", start); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, g.wires),
		visited: make([]bool, g.wires),
		res: &Result{
			Order:  make([]int, 0, g.wires),
			Depth:  make(map[int]int, g.wires),
			Parent: make(map[int]int, g.wires),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(wire, depth, parent int) {
	w.visited[wire] = true
	w.res.Depth[wire] = depth
	if parent >= 0 {
		w.res.Parent[wire] = parent
	}
	w.queue = append(w.queue, queueItem{wire: wire, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.wire)
		if err := w.opts.OnVisit(item.wire, item.depth); err != nil {
			return fmt.Errorf("coupling: OnVisit error at wire %d: %w", item.wire, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.adj[item.wire] {
			if !w.visited[nbr] {
				w.enqueue(nbr, next, item.wire)
			}
		}
	}

	return nil
}

// Components returns the connected components, each sorted ascending,
// ordered by their smallest wire.
func (g *Graph) Components() [][]int {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.wires)
	var out [][]int
	for w := 0; w < g.wires; w++ {
		if seen[w] {
			continue
		}
		res, err := BFS(g, w)
		if err != nil {
			// unreachable: w is in range and no options are set
			panic(err)
		}
		comp := append([]int(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// Connected reports whether every wire is reachable from wire 0.
func (g *Graph) Connected() bool {
	if g == nil {
		return false
	}
	res, err := BFS(g, 0)

	return err == nil && len(res.Order) == g.wires
}
