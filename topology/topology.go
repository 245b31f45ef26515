// SPDX-License-Identifier: MIT
// Package: ansatz/topology
//
// topology.go - the entanglement variant and the resolver table.
//
// Contract (strict):
//   - Resolve is a pure total function over the four names; anything else is
//     ErrUnknownTopology, never a fallback.
//   - A Direct variant passes its kind through with no overrides.
//   - Returned override maps are freshly allocated on every call.

package topology

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ansatz/layer"
)

// ErrUnknownTopology indicates a topology name outside the resolution table.
var ErrUnknownTopology = errors.New("topology: unknown topology")

// ErrNilKind indicates a Direct(nil) variant, or a nil base/dense kind
// required by the named topology.
var ErrNilKind = errors.New("topology: nil layer kind")

// Name is a symbolic wiring pattern for entangling layers.
type Name string

// Known topology names.
const (
	Linear        Name = "linear"
	ReverseLinear Name = "reverse_linear"
	Circular      Name = "circular"
	Full          Name = "full"
)

// resolution is one row of the resolver table.
type resolution struct {
	dense     bool
	overrides func() layer.Params
}

var table = map[Name]resolution{
	Linear:        {overrides: func() layer.Params { return layer.Params{} }},
	ReverseLinear: {overrides: func() layer.Params { return layer.Params{layer.KeyWireReverse: true} }},
	Circular:      {overrides: func() layer.Params { return layer.Params{layer.KeyCircular: true} }},
	Full:          {dense: true, overrides: func() layer.Params { return layer.Params{} }},
}

// Names returns the known names in table order.
func Names() []Name {
	return []Name{Linear, ReverseLinear, Circular, Full}
}

// ParseName normalizes s (case, surrounding space, '-' for '_') and checks
// it against the table.
func ParseName(s string) (Name, error) {
	n := Name(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if _, ok := table[n]; !ok {
		return "", fmt.Errorf("ParseName(%q): %w", s, ErrUnknownTopology)
	}

	return n, nil
}

// variant tags which arm of Entanglement is populated.
type variant uint8

const (
	variantNone variant = iota
	variantName
	variantDirect
)

// Entanglement selects the entangling layer either by topology name or by
// a layer kind supplied directly. The zero value selects nothing; callers
// decide its default.
type Entanglement struct {
	tag  variant
	name Name
	kind layer.Kind
}

// ByName selects a topology by name. The name is checked at Resolve time.
func ByName(n Name) Entanglement {
	return Entanglement{tag: variantName, name: n}
}

// Direct selects a layer kind as-is, bypassing the name table.
func Direct(k layer.Kind) Entanglement {
	return Entanglement{tag: variantDirect, kind: k}
}

// IsZero reports whether neither arm is populated.
func (e Entanglement) IsZero() bool { return e.tag == variantNone }

// Name returns the topology name for a ByName variant.
func (e Entanglement) Name() (Name, bool) {
	return e.name, e.tag == variantName
}

// Kind returns the layer kind for a Direct variant.
func (e Entanglement) Kind() (layer.Kind, bool) {
	return e.kind, e.tag == variantDirect
}

// String renders the variant as "name:<topology>" or "kind:<kind name>".
func (e Entanglement) String() string {
	switch e.tag {
	case variantName:
		return "name:" + string(e.name)
	case variantDirect:
		if e.kind == nil {
			return "kind:<nil>"
		}
		return "kind:" + e.kind.Name()
	default:
		return "<unset>"
	}
}

// Resolve maps e onto a concrete layer kind and the param overrides the
// kind must receive. base serves linear, reverse_linear and circular;
// dense serves full.
func Resolve(e Entanglement, base, dense layer.Kind) (layer.Kind, layer.Params, error) {
	switch e.tag {
	case variantDirect:
		if e.kind == nil {
			return nil, nil, fmt.Errorf("Resolve(%s): %w", e, ErrNilKind)
		}
		return e.kind, layer.Params{}, nil

	case variantName:
		row, ok := table[e.name]
		if !ok {
			return nil, nil, fmt.Errorf("Resolve(%q): %w", e.name, ErrUnknownTopology)
		}
		kind := base
		if row.dense {
			kind = dense
		}
		if kind == nil {
			return nil, nil, fmt.Errorf("Resolve(%q): %w", e.name, ErrNilKind)
		}
		return kind, row.overrides(), nil

	default:
		return nil, nil, fmt.Errorf("Resolve(%s): %w", e, ErrUnknownTopology)
	}
}
