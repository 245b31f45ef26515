// Package layer provides the layer-kind constructors that turn one gate
// operation into one Block spanning all wires of a template.
//
// A Kind is a black box to the composition engine: it receives
// (op, wires, params) and returns a Block or an error. This package ships
// the three standard kinds and a registry to address them by name:
//
//   - AllWires  ("all_wires"): single-wire op on every wire 0..n-1.
//   - Pairwise  ("pairwise"):  two-wire op on [k, (k+jump)%n]. With
//     circular=false there are n-jump pairs (a path); with circular=true
//     there are n pairs (a ring). wire_reverse swaps every pair.
//   - Dense     ("dense"):     two-wire op on every [i, j], i<j, in
//     lexicographic order (a complete graph over the wires).
//
// Recognized params:
//
//	has_params   bool  instances carry trainable scalars (gate must be parametric)
//	trainable    bool  the scalars are trainable
//	wire_reverse bool  Pairwise only
//	circular     bool  Pairwise only
//	jump         int   Pairwise only, ≥1 (default 1)
//
// Unknown keys are rejected with ErrUnknownParam so that a misspelled
// override never disappears silently.
//
// Determinism: placements are emitted in a fixed, documented order; equal
// inputs produce equal Blocks.
//
// Custom kinds are adapted from plain functions with NewKind.
package layer
