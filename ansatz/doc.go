// Package ansatz composes parameterized circuit templates out of layer blocks.
//
// A Template is the flat, ordered list of blocks produced by alternating a
// rotation sub-block (single-wire gates) with an entanglement sub-block
// (two-wire gates) for a number of repetitions:
//
//	[initial] → reps × (rotation, entanglement) → [final rotation]
//
// Each sub-block holds one block per gate op, built by a layer.Kind. The
// entanglement kind comes from a topology.Entanglement selection, resolved
// once per build. Topology overrides are merged over the caller's params.
//
// Usage:
//
//	tpl, err := ansatz.Build(ansatz.Config{
//		Wires:        4,
//		Reps:         2,
//		Rotation:     ansatz.RotationSpec{Ops: []gate.Op{gate.RY}},
//		Entanglement: ansatz.EntanglementSpec{
//			Ops:   []gate.Op{gate.CNOT},
//			Layer: topology.ByName(topology.Circular),
//		},
//	})
//
// Builds are pure and synchronous. Templates are immutable; every accessor
// returns copies. Cache memoizes builds keyed by Config.Key.
package ansatz
