// SPDX-License-Identifier: MIT
// Package: ansatz/gate
//
// gate.go - the Op handle and its constructors.
//
// Contract:
//   - Op is a small comparable value; copying it is free and safe.
//   - The zero Op is invalid (IsZero reports true) and is rejected by layer kinds.
//   - New validates name/arity/params and returns sentinel errors; MustNew panics.

package gate

import (
	"errors"
	"fmt"
	"strings"
)

// Arity bounds supported by the layer kinds.
const (
	MinArity = 1
	MaxArity = 2
)

// ErrInvalidGate indicates a malformed gate description passed to New.
var ErrInvalidGate = errors.New("gate: invalid gate")

// ErrUnknownGate indicates a name that is not in the standard catalog.
var ErrUnknownGate = errors.New("gate: unknown gate")

// Op is an opaque handle to a gate kind.
type Op struct {
	name   string
	arity  int
	params int
}

// New returns a custom gate handle. The name is stored lower-cased so that
// handles compare equal regardless of how the caller spelled them.
func New(name string, arity, params int) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Op{}, fmt.Errorf("New: empty name: %w", ErrInvalidGate)
	}
	if arity < MinArity || arity > MaxArity {
		return Op{}, fmt.Errorf("New(%s): arity=%d not in [%d,%d]: %w", name, arity, MinArity, MaxArity, ErrInvalidGate)
	}
	if params < 0 {
		return Op{}, fmt.Errorf("New(%s): params=%d < 0: %w", name, params, ErrInvalidGate)
	}

	return Op{name: name, arity: arity, params: params}, nil
}

// MustNew is New for package-level declarations; it panics on error.
func MustNew(name string, arity, params int) Op {
	op, err := New(name, arity, params)
	if err != nil {
		panic(err)
	}

	return op
}

// Name returns the canonical lower-case gate name.
func (o Op) Name() string { return o.name }

// Arity returns the number of wires one instance acts on.
func (o Op) Arity() int { return o.arity }

// NumParams returns the number of trainable scalars one instance carries.
func (o Op) NumParams() int { return o.params }

// Parametric reports whether the gate accepts parameters at all.
func (o Op) Parametric() bool { return o.params > 0 }

// IsZero reports whether o is the zero handle.
func (o Op) IsZero() bool { return o == Op{} }

// String implements fmt.Stringer.
func (o Op) String() string {
	if o.IsZero() {
		return "<nil-gate>"
	}

	return o.name
}

// MarshalText encodes the gate by name.
func (o Op) MarshalText() ([]byte, error) {
	if o.IsZero() {
		return nil, fmt.Errorf("MarshalText: %w", ErrInvalidGate)
	}

	return []byte(o.name), nil
}

// UnmarshalText resolves a standard gate name into o.
func (o *Op) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op

	return nil
}
