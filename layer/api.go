// SPDX-License-Identifier: MIT
// Package: ansatz/layer
//
// api.go - the Kind contract, the Block value and the function adapter.
//
// Design contract (strict):
//   - A Kind is stateless: Construct depends only on its arguments.
//   - Construct validates early and returns sentinel errors; it never panics.
//   - The returned Block owns its Params and Placements (no aliasing of inputs).
//   - Placement order is part of the contract (documented per kind).

package layer

import (
	"github.com/katalvlaran/ansatz/gate"
)

// Kind constructs one Block from one gate operation.
type Kind interface {
	// Name identifies the kind; registries and cache keys rely on it being unique.
	Name() string
	// Construct places op across wires according to the kind's strategy.
	Construct(op gate.Op, wires int, params Params) (Block, error)
}

// Block is one constructed layer: a single gate kind placed on a fixed list
// of wire tuples. Blocks are immutable by contract; use Clone before handing
// one to code that may retain it.
type Block struct {
	// Kind is the name of the layer kind that built the block.
	Kind string `json:"kind" yaml:"kind" cbor:"kind"`
	// Op is the gate applied at every placement.
	Op gate.Op `json:"op" yaml:"op" cbor:"op"`
	// Wires is the wire count the block was built for.
	Wires int `json:"wires" yaml:"wires" cbor:"wires"`
	// Params are the construction arguments as received.
	Params Params `json:"params,omitempty" yaml:"params,omitempty" cbor:"params,omitempty"`
	// Placements lists the wire tuples in application order.
	Placements [][]int `json:"placements" yaml:"placements" cbor:"placements"`
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	out := b
	if b.Params != nil {
		out.Params = b.Params.Clone()
	}
	if b.Placements != nil {
		out.Placements = make([][]int, len(b.Placements))
		for i, pl := range b.Placements {
			out.Placements[i] = append([]int(nil), pl...)
		}
	}

	return out
}

// Gates returns the number of gate instances in the block.
func (b Block) Gates() int { return len(b.Placements) }

// HasParams reports whether the block's instances carry parameters.
// Malformed values read as false.
func (b Block) HasParams() bool {
	v, _ := b.Params.Bool(KeyHasParams)
	return v
}

// Trainable reports whether the block's parameters are trainable.
func (b Block) Trainable() bool {
	v, _ := b.Params.Bool(KeyTrainable)
	return v
}

// NumParams returns the number of scalars the block carries.
func (b Block) NumParams() int {
	if !b.HasParams() {
		return 0
	}

	return len(b.Placements) * b.Op.NumParams()
}

// ConstructFunc is the signature adapted by NewKind.
type ConstructFunc func(op gate.Op, wires int, params Params) (Block, error)

// funcKind adapts a ConstructFunc into a Kind.
type funcKind struct {
	name string
	fn   ConstructFunc
}

// NewKind wraps fn as a Kind named name. Blocks returned without a Kind
// name are stamped with it. Every call yields a distinct Kind, even for
// equal names. Panics on empty name or nil fn.
func NewKind(name string, fn ConstructFunc) Kind {
	if name == "" {
		panic("layer: NewKind(\"\")")
	}
	if fn == nil {
		panic("layer: NewKind(nil)")
	}

	return &funcKind{name: name, fn: fn}
}

func (k *funcKind) Name() string { return k.name }

func (k *funcKind) Construct(op gate.Op, wires int, params Params) (Block, error) {
	b, err := k.fn(op, wires, params)
	if err != nil {
		return Block{}, err
	}
	if b.Kind == "" {
		b.Kind = k.name
	}

	return b, nil
}
