// SPDX-License-Identifier: MIT
// Package: ansatz
//
// template.go - the ordered, immutable result of Build.
//
// Every accessor hands out deep copies; a Template never changes after
// Build returns it and is safe for concurrent reads.

package ansatz

import (
	"fmt"

	"github.com/katalvlaran/ansatz/layer"
)

// Stage names the sub-block a step belongs to.
type Stage string

// Stages in emission order.
const (
	StageInitial       Stage = "initial"
	StageRotation      Stage = "rotation"
	StageEntanglement  Stage = "entanglement"
	StageFinalRotation Stage = "final_rotation"
)

// String implements fmt.Stringer.
func (s Stage) String() string { return string(s) }

// Step is one block together with its position in the composition.
type Step struct {
	// Stage is the sub-block the block came from.
	Stage Stage `json:"stage" yaml:"stage"`
	// Rep is the repetition index: -1 for the initial block, Reps for the
	// final rotation.
	Rep int `json:"rep" yaml:"rep"`
	// Index is the op position within the sub-block.
	Index int `json:"index" yaml:"index"`
	// Block is the constructed layer.
	Block layer.Block `json:"block" yaml:"block"`
}

// Template is the ordered list of constructed blocks.
type Template struct {
	wires int
	reps  int
	steps []Step
}

// Len returns the number of blocks.
func (t *Template) Len() int { return len(t.steps) }

// Wires returns the wire count the template was built for.
func (t *Template) Wires() int { return t.wires }

// Reps returns the repetition count the template was built with.
func (t *Template) Reps() int { return t.reps }

// Steps returns a deep copy of the annotated blocks in application order.
func (t *Template) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i, s := range t.steps {
		out[i] = s
		out[i].Block = s.Block.Clone()
	}

	return out
}

// Blocks returns a deep copy of the blocks in application order.
func (t *Template) Blocks() []layer.Block {
	out := make([]layer.Block, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Block.Clone()
	}

	return out
}

// Block returns a copy of the i-th block.
func (t *Template) Block(i int) (layer.Block, error) {
	if i < 0 || i >= len(t.steps) {
		return layer.Block{}, fmt.Errorf("Block(%d) of %d: %w", i, len(t.steps), ErrIndexOutOfRange)
	}

	return t.steps[i].Block.Clone(), nil
}

// Clone returns an independent copy of t.
func (t *Template) Clone() *Template {
	return &Template{wires: t.wires, reps: t.reps, steps: t.Steps()}
}
