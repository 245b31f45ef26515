// SPDX-License-Identifier: MIT
// Package: ansatz/preset
//
// preset.go - the static catalog and its resolution into ansatz.Config.
//
// Contract:
//   - Every preset rotates with layer.AllWires and {has_params, trainable}.
//   - Fixed presets own their gate lists and params; callers may change
//     reps, entanglement and the final-rotation flag only.
//   - two_local needs at least one rotation or entanglement op.
//   - Config never builds; Build routes through the cache when one is set.

package preset

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/ansatz/ansatz"
	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
	"github.com/katalvlaran/ansatz/topology"
)

// ErrUnknownPreset indicates a name outside the catalog.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// ErrOptionNotAllowed indicates a general-only option on a fixed preset.
var ErrOptionNotAllowed = errors.New("preset: option not allowed for this preset")

// ErrMissingOps indicates a two_local build with neither rotation nor
// entanglement ops.
var ErrMissingOps = errors.New("preset: two_local needs rotation or entanglement ops")

// Name identifies a preset.
type Name string

// Catalog names.
const (
	TwoLocalName             Name = "two_local"
	ExcitationPreservingName Name = "excitation_preserving"
	EfficientSU2Name         Name = "efficient_su2"
	RealAmplitudesName       Name = "real_amplitudes"
)

// Preset is one catalog row. Values are read-only; accessors return copies.
type Preset struct {
	name               Name
	general            bool
	rotationOps        []gate.Op
	entanglementOps    []gate.Op
	entanglementParams func() layer.Params
	topology           topology.Name
	reps               int
}

func rotationParams() layer.Params {
	return layer.Params{layer.KeyHasParams: true, layer.KeyTrainable: true}
}

func noParams() layer.Params { return layer.Params{} }

var catalog = []Preset{
	{
		name:               TwoLocalName,
		general:            true,
		entanglementParams: noParams,
		topology:           topology.Linear,
		reps:               1,
	},
	{
		name:               ExcitationPreservingName,
		rotationOps:        []gate.Op{gate.RZ},
		entanglementOps:    []gate.Op{gate.RXX, gate.RYY},
		entanglementParams: rotationParams,
		topology:           topology.Full,
		reps:               3,
	},
	{
		name:               EfficientSU2Name,
		rotationOps:        []gate.Op{gate.RY, gate.RZ},
		entanglementOps:    []gate.Op{gate.CNOT},
		entanglementParams: noParams,
		topology:           topology.ReverseLinear,
		reps:               3,
	},
	{
		name:               RealAmplitudesName,
		rotationOps:        []gate.Op{gate.RY},
		entanglementOps:    []gate.Op{gate.CNOT},
		entanglementParams: noParams,
		topology:           topology.ReverseLinear,
		reps:               3,
	},
}

// Names lists the catalog in table order.
func Names() []Name {
	out := make([]Name, len(catalog))
	for i, p := range catalog {
		out[i] = p.name
	}

	return out
}

// Lookup finds a preset by name; case and '-' vs '_' are ignored.
func Lookup(name string) (Preset, error) {
	n := Name(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	for _, p := range catalog {
		if p.name == n {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownPreset)
}

// Name returns the catalog name.
func (p Preset) Name() Name { return p.name }

// General reports whether the preset accepts the general-only options.
func (p Preset) General() bool { return p.general }

// DefaultReps returns the repetition count used without WithReps.
func (p Preset) DefaultReps() int { return p.reps }

// DefaultTopology returns the topology used without WithEntanglement.
func (p Preset) DefaultTopology() topology.Name { return p.topology }

// RotationOps returns a copy of the fixed rotation gates (nil for two_local).
func (p Preset) RotationOps() []gate.Op { return append([]gate.Op(nil), p.rotationOps...) }

// EntanglementOps returns a copy of the fixed entangling gates (nil for two_local).
func (p Preset) EntanglementOps() []gate.Op { return append([]gate.Op(nil), p.entanglementOps...) }

// Config resolves the preset and opts into a build configuration.
func (p Preset) Config(wires int, opts ...Option) (ansatz.Config, error) {
	s := newSettings(opts...)
	cfg, err := p.config(wires, s)
	if err != nil {
		return ansatz.Config{}, fmt.Errorf("%s.Config: %w", p.name, err)
	}

	return cfg, nil
}

func (p Preset) config(wires int, s settings) (ansatz.Config, error) {
	if !p.general && len(s.generalOnly) > 0 {
		return ansatz.Config{}, fmt.Errorf("%s: %w", s.generalOnly[0], ErrOptionNotAllowed)
	}

	rotOps, entOps := p.RotationOps(), p.EntanglementOps()
	rotKind := layer.AllWires
	rotParams := rotationParams()
	entParams := p.entanglementParams()
	if p.general {
		rotOps, entOps = s.rotationOps, s.entanglementOps
		if len(rotOps) == 0 && len(entOps) == 0 {
			return ansatz.Config{}, ErrMissingOps
		}
		if s.rotationKind != nil {
			rotKind = s.rotationKind
		}
		rotParams = rotParams.Merge(s.rotationParams)
		entParams = entParams.Merge(s.entanglementParams)
	}

	reps := p.reps
	if s.repsSet {
		reps = s.reps
	}
	ent := s.entanglement
	if ent.IsZero() {
		ent = topology.ByName(p.topology)
	}

	return ansatz.Config{
		Wires: wires,
		Reps:  reps,
		Rotation: ansatz.RotationSpec{
			Ops:    rotOps,
			Kind:   rotKind,
			Params: rotParams,
		},
		Entanglement: ansatz.EntanglementSpec{
			Ops:    entOps,
			Layer:  ent,
			Params: entParams,
		},
		Initial:           s.initial,
		SkipFinalRotation: s.skipFinal,
	}, nil
}

// Build resolves the preset and composes the template.
func (p Preset) Build(wires int, opts ...Option) (*ansatz.Template, error) {
	s := newSettings(opts...)
	cfg, err := p.config(wires, s)
	if err != nil {
		return nil, fmt.Errorf("%s.Build: %w", p.name, err)
	}

	s.logger.Debug("preset resolved",
		zap.String("preset", string(p.name)),
		zap.Int("wires", cfg.Wires),
		zap.Int("reps", cfg.Reps),
		zap.Stringer("entanglement", cfg.Entanglement.Layer),
		zap.Bool("cached", s.cache != nil),
	)

	var tpl *ansatz.Template
	if s.cache != nil {
		tpl, err = s.cache.Build(cfg, ansatz.WithLogger(s.logger))
	} else {
		tpl, err = ansatz.Build(cfg, ansatz.WithLogger(s.logger))
	}
	if err != nil {
		return nil, fmt.Errorf("%s.Build: %w", p.name, err)
	}

	return tpl, nil
}

func mustLookup(n Name) Preset {
	p, err := Lookup(string(n))
	if err != nil {
		panic(err)
	}

	return p
}

// TwoLocal alternates caller-chosen rotation and entanglement gates.
func TwoLocal(wires int, rotation, entanglement []gate.Op, opts ...Option) (*ansatz.Template, error) {
	all := append([]Option{WithRotationOps(rotation...), WithEntanglementOps(entanglement...)}, opts...)

	return mustLookup(TwoLocalName).Build(wires, all...)
}

// ExcitationPreserving alternates RZ with RXX+RYY on all wire pairs.
func ExcitationPreserving(wires int, opts ...Option) (*ansatz.Template, error) {
	return mustLookup(ExcitationPreservingName).Build(wires, opts...)
}

// EfficientSU2 alternates RY+RZ with reverse-linear CNOTs.
func EfficientSU2(wires int, opts ...Option) (*ansatz.Template, error) {
	return mustLookup(EfficientSU2Name).Build(wires, opts...)
}

// RealAmplitudes alternates RY with reverse-linear CNOTs.
func RealAmplitudes(wires int, opts ...Option) (*ansatz.Template, error) {
	return mustLookup(RealAmplitudesName).Build(wires, opts...)
}
