// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"

	"github.com/katalvlaran/ansatz/gate"
)

// baseKeys are accepted by every standard kind.
var baseKeys = []string{KeyHasParams, KeyTrainable}

// validateCommon enforces the checks shared by all standard kinds, in the
// fixed priority order wires → op → arity → keys → has_params.
func validateCommon(method string, op gate.Op, wires, arity int, params Params, allowed []string) error {
	if wires < 1 {
		return fmt.Errorf("%s: wires=%d: %w", method, wires, ErrInvalidWires)
	}
	if op.IsZero() {
		return fmt.Errorf("%s: %w", method, ErrInvalidOp)
	}
	if op.Arity() != arity {
		return fmt.Errorf("%s: gate %s acts on %d wire(s), kind places %d: %w", method, op, op.Arity(), arity, ErrArity)
	}
	if err := params.checkKeys(allowed...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	hasParams, err := params.Bool(KeyHasParams)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if hasParams && !op.Parametric() {
		return fmt.Errorf("%s: gate %s: %w", method, op, ErrNotParametric)
	}
	if _, err = params.Bool(KeyTrainable); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// newBlock assembles the output Block, copying params so the caller's map
// is never retained.
func newBlock(kind string, op gate.Op, wires int, params Params, placements [][]int) Block {
	return Block{
		Kind:       kind,
		Op:         op,
		Wires:      wires,
		Params:     params.Clone(),
		Placements: placements,
	}
}
