// SPDX-License-Identifier: MIT
// Package: ansatz/layer
//
// impl_dense.go - the Dense kind (every unordered wire pair).
//
// Contract:
//   - op.Arity() == 2 (else ErrArity).
//   - Emits each pair [i, j] with i<j exactly once, lexicographic by (i, j).
//   - Accepts has_params, trainable.
//
// Complexity:
//   - Time: O(n²). Space: O(n²) placements (n(n-1)/2 pairs).

package layer

import "github.com/katalvlaran/ansatz/gate"

const (
	kindDense  = "dense"
	arityDense = 2
)

// Dense applies a two-wire gate to every pair of wires.
var Dense Kind = dense{}

type dense struct{}

func (dense) Name() string { return kindDense }

func (dense) Construct(op gate.Op, wires int, params Params) (Block, error) {
	if err := validateCommon(kindDense, op, wires, arityDense, params, baseKeys); err != nil {
		return Block{}, err
	}

	placements := make([][]int, 0, wires*(wires-1)/2)
	for i := 0; i < wires; i++ {
		for j := i + 1; j < wires; j++ {
			placements = append(placements, []int{i, j})
		}
	}

	return newBlock(kindDense, op, wires, params, placements), nil
}
