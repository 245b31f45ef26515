// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ansatz/ansatz"
	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
	"github.com/katalvlaran/ansatz/preset"
	"github.com/katalvlaran/ansatz/topology"
)

// ErrMissingField indicates a required document field is absent.
var ErrMissingField = errors.New("config: required field missing")

// ErrInvalidValue indicates a field whose value is out of range.
var ErrInvalidValue = errors.New("config: invalid field value")

// Options resolves the document into a preset and its options. Kind names
// in rotation_layer are looked up in reg; nil means layer.DefaultRegistry().
func (d Document) Options(reg *layer.Registry) (preset.Preset, []preset.Option, error) {
	if d.Preset == "" {
		return preset.Preset{}, nil, fmt.Errorf("preset: %w", ErrMissingField)
	}
	p, err := preset.Lookup(d.Preset)
	if err != nil {
		return preset.Preset{}, nil, err
	}
	if d.Arch.NWires < 1 {
		return preset.Preset{}, nil, fmt.Errorf("arch.n_wires=%d: %w", d.Arch.NWires, ErrInvalidValue)
	}

	var opts []preset.Option
	if d.Reps != nil {
		if *d.Reps < 0 {
			return preset.Preset{}, nil, fmt.Errorf("reps=%d: %w", *d.Reps, ErrInvalidValue)
		}
		opts = append(opts, preset.WithReps(*d.Reps))
	}
	if d.Entanglement != "" {
		name, err := topology.ParseName(d.Entanglement)
		if err != nil {
			return preset.Preset{}, nil, fmt.Errorf("entanglement: %w", err)
		}
		opts = append(opts, preset.WithTopology(name))
	}
	if d.SkipFinalRotation {
		opts = append(opts, preset.WithSkipFinalRotation(true))
	}

	if d.RotationOps != nil {
		ops, err := gate.ParseList(d.RotationOps)
		if err != nil {
			return preset.Preset{}, nil, fmt.Errorf("rotation_ops: %w", err)
		}
		opts = append(opts, preset.WithRotationOps(ops...))
	}
	if d.EntanglementOps != nil {
		ops, err := gate.ParseList(d.EntanglementOps)
		if err != nil {
			return preset.Preset{}, nil, fmt.Errorf("entanglement_ops: %w", err)
		}
		opts = append(opts, preset.WithEntanglementOps(ops...))
	}
	if d.RotationLayer != "" {
		if reg == nil {
			reg = layer.DefaultRegistry()
		}
		kind, err := reg.Lookup(d.RotationLayer)
		if err != nil {
			return preset.Preset{}, nil, fmt.Errorf("rotation_layer: %w", err)
		}
		opts = append(opts, preset.WithRotationLayer(kind))
	}
	if d.RotationParams != nil {
		opts = append(opts, preset.WithRotationParams(layer.Params(d.RotationParams)))
	}
	if d.EntanglementParams != nil {
		opts = append(opts, preset.WithEntanglementParams(layer.Params(d.EntanglementParams)))
	}

	return p, opts, nil
}

// Validate checks the document resolves into a build configuration. It
// does not run layer kinds, so param values are checked only by Build.
func (d Document) Validate() error {
	p, opts, err := d.Options(nil)
	if err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if _, err = p.Config(d.Arch.NWires, opts...); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	return nil
}

// Config resolves the document into an ansatz.Config.
func (d Document) Config() (ansatz.Config, error) {
	p, opts, err := d.Options(nil)
	if err != nil {
		return ansatz.Config{}, fmt.Errorf("Config: %w", err)
	}

	return p.Config(d.Arch.NWires, opts...)
}

// Build composes the template the document describes; extra options
// (logger, cache) are applied after the document's own.
func (d Document) Build(extra ...preset.Option) (*ansatz.Template, error) {
	p, opts, err := d.Options(nil)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return p.Build(d.Arch.NWires, append(opts, extra...)...)
}
