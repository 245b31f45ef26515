// Package gate defines the opaque gate-operation handles that ansatz
// templates are assembled from.
//
// An Op names a gate kind (e.g. RY, CNOT) together with the two facts the
// layer kinds need to place it: how many wires it acts on (Arity) and how
// many trainable scalars one instance carries (NumParams). Nothing else about
// the gate is modeled here; matrices, decompositions and simulation belong to
// the execution engine that later consumes a template.
//
// Standard gates:
//
//	single-wire, parameterized:  RX RY RZ PhaseShift U3
//	single-wire, fixed:          H X Y Z S T SX
//	two-wire, parameterized:     RXX RYY RZZ RZX CRX CRY CRZ
//	two-wire, fixed:             CNOT CY CZ SWAP
//
// Lookup resolves names case-insensitively and understands the usual
// aliases ("cx" → CNOT, "p" → PhaseShift). Custom gates are created with New
// and are compared by value, so two Ops with the same name, arity and
// parameter count are interchangeable.
package gate
