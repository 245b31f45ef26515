// SPDX-License-Identifier: MIT
// Package: ansatz
//
// config.go - the declarative inputs of Build.
//
// Defaults (applied per call, the caller's value is never modified):
//   - Rotation.Kind       = layer.AllWires
//   - Entanglement.Layer  = topology.ByName(topology.Linear)
//   - Entanglement.Base   = layer.Pairwise
//   - Entanglement.Dense  = layer.Dense
//   - nil Params          = empty map

package ansatz

import (
	"math"

	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
	"github.com/katalvlaran/ansatz/topology"
)

// RotationSpec describes the single-wire sub-block.
type RotationSpec struct {
	// Ops are applied in list order, one block per op.
	Ops []gate.Op
	// Kind places each op; nil means layer.AllWires.
	Kind layer.Kind
	// Params are passed to every rotation block.
	Params layer.Params
}

// EntanglementSpec describes the two-wire sub-block.
type EntanglementSpec struct {
	// Ops are applied in list order, one block per op.
	Ops []gate.Op
	// Layer selects the wiring; the zero value means linear.
	Layer topology.Entanglement
	// Params are passed to every entanglement block. Topology overrides
	// win over keys set here.
	Params layer.Params
	// Base serves the linear, reverse_linear and circular topologies;
	// nil means layer.Pairwise.
	Base layer.Kind
	// Dense serves the full topology; nil means layer.Dense.
	Dense layer.Kind
}

// Config is the full input of one Build call.
type Config struct {
	// Wires is the number of qubit lines, ≥ 1.
	Wires int
	// Reps is the number of paired rotation+entanglement repetitions, ≥ 0.
	Reps int
	// Rotation is the single-wire sub-block.
	Rotation RotationSpec
	// Entanglement is the two-wire sub-block.
	Entanglement EntanglementSpec
	// Initial, when set, is placed verbatim at index 0.
	Initial *layer.Block
	// SkipFinalRotation drops the trailing rotation sub-block.
	SkipFinalRotation bool
}

// withDefaults returns a copy of c with nil collaborators filled in.
func (c Config) withDefaults() Config {
	if c.Rotation.Kind == nil {
		c.Rotation.Kind = layer.AllWires
	}
	if c.Entanglement.Layer.IsZero() {
		c.Entanglement.Layer = topology.ByName(topology.Linear)
	}
	if c.Entanglement.Base == nil {
		c.Entanglement.Base = layer.Pairwise
	}
	if c.Entanglement.Dense == nil {
		c.Entanglement.Dense = layer.Dense
	}

	return c
}

// ExpectedLen returns the number of blocks a successful Build produces:
// initial + reps*(|rotation|+|entanglement|) + final rotation.
// It saturates at math.MaxInt.
func (c Config) ExpectedLen() int {
	n, ok := c.expectedLen()
	if !ok {
		return math.MaxInt
	}

	return n
}

// expectedLen reports false when the block count overflows int.
func (c Config) expectedLen() (int, bool) {
	extra := 0
	if c.Initial != nil {
		extra++
	}
	if !c.SkipFinalRotation {
		extra += len(c.Rotation.Ops)
	}
	perRep := len(c.Rotation.Ops) + len(c.Entanglement.Ops)
	if perRep > 0 && c.Reps > (math.MaxInt-extra)/perRep {
		return 0, false
	}

	return c.Reps*perRep + extra, true
}
