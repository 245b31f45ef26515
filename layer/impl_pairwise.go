// SPDX-License-Identifier: MIT
// Package: ansatz/layer
//
// impl_pairwise.go - the Pairwise kind (path or ring of wire pairs).
//
// Contract:
//   - op.Arity() == 2 (else ErrArity).
//   - jump ≥ 1 (else ErrInvalidParam); default DefaultJump.
//   - n < 2 wires: no pair exists, the block is empty.
//   - circular=false: pairs [k, k+jump] for k = 0..n-jump-1 (a path when jump=1).
//   - circular=true:  pairs [k, (k+jump)%n] for k = 0..n-1 (a ring when jump=1);
//     a jump that is a multiple of n would pair a wire with itself → ErrInvalidParam.
//   - wire_reverse=true swaps every pair to [b, a]; emission order is unchanged.
//
// Complexity:
//   - Time: O(n). Space: O(n) placements.
//
// Determinism:
//   - Emission order is increasing k.

package layer

import (
	"fmt"

	"github.com/katalvlaran/ansatz/gate"
)

const (
	kindPairwise  = "pairwise"
	arityPairwise = 2
	minPairWires  = 2
)

// Pairwise applies a two-wire gate along a path or ring of wire pairs.
var Pairwise Kind = pairwise{}

type pairwise struct{}

func (pairwise) Name() string { return kindPairwise }

func (pairwise) Construct(op gate.Op, wires int, params Params) (Block, error) {
	allowed := append(append([]string(nil), baseKeys...), KeyWireReverse, KeyCircular, KeyJump)
	if err := validateCommon(kindPairwise, op, wires, arityPairwise, params, allowed); err != nil {
		return Block{}, err
	}

	reverse, err := params.Bool(KeyWireReverse)
	if err != nil {
		return Block{}, fmt.Errorf("%s: %w", kindPairwise, err)
	}
	circular, err := params.Bool(KeyCircular)
	if err != nil {
		return Block{}, fmt.Errorf("%s: %w", kindPairwise, err)
	}
	jump, err := params.Int(KeyJump, DefaultJump)
	if err != nil {
		return Block{}, fmt.Errorf("%s: %w", kindPairwise, err)
	}
	if jump < 1 {
		return Block{}, fmt.Errorf("%s: jump=%d < 1: %w", kindPairwise, jump, ErrInvalidParam)
	}

	// A single wire has no partner; the layer is legitimately empty.
	if wires < minPairWires {
		return newBlock(kindPairwise, op, wires, params, [][]int{}), nil
	}
	if circular && jump%wires == 0 {
		return Block{}, fmt.Errorf("%s: circular jump=%d maps each of %d wires onto itself: %w", kindPairwise, jump, wires, ErrInvalidParam)
	}

	n := wires - jump
	if circular {
		n = wires
	}
	if n < 0 {
		n = 0
	}

	placements := make([][]int, 0, n)
	for k := 0; k < n; k++ {
		a, b := k, (k+jump)%wires
		if reverse {
			a, b = b, a
		}
		placements = append(placements, []int{a, b})
	}

	return newBlock(kindPairwise, op, wires, params, placements), nil
}
