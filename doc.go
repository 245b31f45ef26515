// Package ansatz is the module root for composing parameterized quantum
// circuit templates out of reusable layer blocks.
//
// Nothing is exported here; the work lives in the subpackages:
//
//	gate/     - gate operations and their wire and parameter arity
//	layer/    - layer kinds (all_wires, pairwise, dense) and the Block they build
//	topology/ - named entanglement topologies resolved to wire pairs
//	ansatz/   - the composition engine: Config, Build, Template, Stats, Cache
//	preset/   - the catalog: two_local, excitation_preserving, efficient_su2, real_amplitudes
//	coupling/ - the wire-coupling graph of a template with BFS and ring detection
//	config/   - YAML, JSON(C) and HCL documents describing a preset build
//	cmd/ansatz - command-line front end
//
// A typical build:
//
//	tpl, err := preset.RealAmplitudes(4, preset.WithReps(2), preset.WithTopology(topology.Circular))
//	if err != nil {
//		// handle
//	}
//	for _, s := range tpl.Steps() {
//		fmt.Println(s.Stage, s.Rep, s.Block.Op, s.Block.Placements)
//	}
package ansatz
