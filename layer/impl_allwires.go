// SPDX-License-Identifier: MIT
// Package: ansatz/layer
//
// impl_allwires.go - the AllWires kind.
//
// Contract:
//   - op.Arity() == 1 (else ErrArity).
//   - Emits placements [0], [1], ..., [n-1] in increasing wire order.
//   - Accepts has_params, trainable.
//
// Complexity:
//   - Time: O(n). Space: O(n) placements.

package layer

import "github.com/katalvlaran/ansatz/gate"

// File-local constants for method tagging.
const (
	kindAllWires  = "all_wires"
	arityAllWires = 1
)

// AllWires applies a single-wire gate to every wire.
var AllWires Kind = allWires{}

type allWires struct{}

func (allWires) Name() string { return kindAllWires }

func (allWires) Construct(op gate.Op, wires int, params Params) (Block, error) {
	if err := validateCommon(kindAllWires, op, wires, arityAllWires, params, baseKeys); err != nil {
		return Block{}, err
	}

	placements := make([][]int, wires)
	for w := 0; w < wires; w++ {
		placements[w] = []int{w}
	}

	return newBlock(kindAllWires, op, wires, params, placements), nil
}
