// Package coupling analyzes which wires a template entangles.
//
// FromTemplate folds every multi-wire placement into an undirected graph
// over the template's wires. The graph answers the questions a topology
// choice raises: which pairs interact and how often (Edges), how far apart
// two wires are in interaction hops (BFS, Result.PathTo), and whether the
// entangling layers reach every wire at all (Components, Connected).
//
//	tpl, _ := preset.RealAmplitudes(5)
//	g, _ := coupling.FromTemplate(tpl)
//	g.Connected()    // true: reverse_linear chains every wire
//	g.Edges()[0]     // {A:0 B:1 Count:3}
//
// Complexity: construction O(Σ placements); BFS and Components O(V + E).
package coupling
