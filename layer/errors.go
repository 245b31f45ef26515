// SPDX-License-Identifier: MIT
// Package: ansatz/layer
//
// errors.go - sentinel errors for the layer package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with "%s: ...: %w" (kind name first).
//   - Constructors never panic at runtime; NewKind/Register panic on programmer errors.

package layer

import "errors"

// ErrInvalidWires indicates a wire count below 1.
var ErrInvalidWires = errors.New("layer: wire count must be ≥ 1")

// ErrInvalidOp indicates the zero gate handle was passed to a kind.
var ErrInvalidOp = errors.New("layer: invalid gate operation")

// ErrArity indicates the gate acts on a different number of wires than the kind places.
var ErrArity = errors.New("layer: gate arity mismatch")

// ErrNotParametric indicates has_params was requested for a gate without parameters.
var ErrNotParametric = errors.New("layer: gate takes no parameters")

// ErrUnknownParam indicates a param key the kind does not understand.
var ErrUnknownParam = errors.New("layer: unknown param")

// ErrParamType indicates a param value of the wrong type.
var ErrParamType = errors.New("layer: param has wrong type")

// ErrInvalidParam indicates a param value outside its domain (e.g. jump < 1).
var ErrInvalidParam = errors.New("layer: invalid param value")

// ErrUnknownKind indicates a registry lookup miss.
var ErrUnknownKind = errors.New("layer: unknown layer kind")
