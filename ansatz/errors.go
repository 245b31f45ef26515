// SPDX-License-Identifier: MIT
// Package: ansatz
//
// errors.go - sentinel errors and the structured construction error.
//
// Error policy (explicit and strict):
//   - Validation failures return sentinels wrapped with "Build: ...: %w".
//   - Topology failures propagate the topology sentinels unchanged (errors.Is).
//   - A failing layer kind yields *ConstructionError, which matches both
//     ErrLayerConstructionFailed and the kind's own cause.
//   - No partial Template is ever returned alongside an error.

package ansatz

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ansatz/gate"
)

// ErrInvalidWireCount indicates a wire count below 1.
var ErrInvalidWireCount = errors.New("ansatz: wire count must be ≥ 1")

// ErrInvalidReps indicates a negative repetition count.
var ErrInvalidReps = errors.New("ansatz: reps must be ≥ 0")

// ErrLayerConstructionFailed classifies every failure raised by a layer kind.
var ErrLayerConstructionFailed = errors.New("ansatz: layer construction failed")

// ErrIndexOutOfRange indicates a block index outside the template.
var ErrIndexOutOfRange = errors.New("ansatz: block index out of range")

// ConstructionError pinpoints the block whose layer kind failed.
type ConstructionError struct {
	// Stage is the sub-block the failing block belongs to.
	Stage Stage
	// Rep is the repetition index (Reps for the final rotation).
	Rep int
	// Index is the op position inside the sub-block.
	Index int
	// Kind is the name of the failing layer kind.
	Kind string
	// Op is the gate being placed.
	Op gate.Op
	// Err is the cause reported by the kind.
	Err error
}

// Error implements error.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("ansatz: %s block %d of rep %d (kind %s, gate %s): %v",
		e.Stage, e.Index, e.Rep, e.Kind, e.Op, e.Err)
}

// Unwrap exposes both the classification sentinel and the cause.
func (e *ConstructionError) Unwrap() []error {
	return []error{ErrLayerConstructionFailed, e.Err}
}
