// SPDX-License-Identifier: MIT
// Package: ansatz/preset
//
// options.go - functional options for preset builds.
//
// Two groups:
//   - Common (every preset): WithReps, WithEntanglement, WithTopology,
//     WithSkipFinalRotation, WithLogger, WithCache.
//   - General-only (two_local): WithRotationOps, WithEntanglementOps,
//     WithRotationLayer, WithRotationParams, WithEntanglementParams,
//     WithInitialBlock. A fixed preset rejects them with ErrOptionNotAllowed.
//
// Options panic on meaningless input (negative reps, nil logger, nil kind).

package preset

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/ansatz/ansatz"
	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
	"github.com/katalvlaran/ansatz/topology"
)

// Option customizes one preset build.
type Option func(*settings)

// settings collects option values; zero fields mean "preset default".
type settings struct {
	reps         int
	repsSet      bool
	entanglement topology.Entanglement
	skipFinal    bool
	logger       *zap.Logger
	cache        *ansatz.Cache

	rotationOps        []gate.Op
	entanglementOps    []gate.Op
	rotationKind       layer.Kind
	rotationParams     layer.Params
	entanglementParams layer.Params
	initial            *layer.Block

	// generalOnly records, in call order, the general-only options used.
	generalOnly []string
}

func newSettings(opts ...Option) settings {
	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

func (s *settings) markGeneral(name string) {
	s.generalOnly = append(s.generalOnly, name)
}

// WithReps overrides the repetition count. Panics if n < 0.
func WithReps(n int) Option {
	if n < 0 {
		panic("preset: WithReps(n<0)")
	}
	return func(s *settings) {
		s.reps = n
		s.repsSet = true
	}
}

// WithEntanglement overrides the entanglement selection.
func WithEntanglement(e topology.Entanglement) Option {
	return func(s *settings) {
		s.entanglement = e
	}
}

// WithTopology is WithEntanglement(topology.ByName(n)).
func WithTopology(n topology.Name) Option {
	return WithEntanglement(topology.ByName(n))
}

// WithSkipFinalRotation drops the trailing rotation sub-block.
func WithSkipFinalRotation(skip bool) Option {
	return func(s *settings) {
		s.skipFinal = skip
	}
}

// WithLogger routes preset and build diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("preset: WithLogger(nil)")
	}
	return func(s *settings) {
		s.logger = l
	}
}

// WithCache memoizes builds in c. Panics on nil.
func WithCache(c *ansatz.Cache) Option {
	if c == nil {
		panic("preset: WithCache(nil)")
	}
	return func(s *settings) {
		s.cache = c
	}
}

// WithRotationOps sets the rotation gates (two_local only).
func WithRotationOps(ops ...gate.Op) Option {
	return func(s *settings) {
		s.rotationOps = append([]gate.Op(nil), ops...)
		s.markGeneral("WithRotationOps")
	}
}

// WithEntanglementOps sets the entangling gates (two_local only).
func WithEntanglementOps(ops ...gate.Op) Option {
	return func(s *settings) {
		s.entanglementOps = append([]gate.Op(nil), ops...)
		s.markGeneral("WithEntanglementOps")
	}
}

// WithRotationLayer replaces the all-wires rotation kind (two_local only).
// Panics on nil.
func WithRotationLayer(k layer.Kind) Option {
	if k == nil {
		panic("preset: WithRotationLayer(nil)")
	}
	return func(s *settings) {
		s.rotationKind = k
		s.markGeneral("WithRotationLayer")
	}
}

// WithRotationParams overlays p on the baked rotation params (two_local only).
func WithRotationParams(p layer.Params) Option {
	return func(s *settings) {
		s.rotationParams = p.Clone()
		s.markGeneral("WithRotationParams")
	}
}

// WithEntanglementParams sets the entanglement params (two_local only).
func WithEntanglementParams(p layer.Params) Option {
	return func(s *settings) {
		s.entanglementParams = p.Clone()
		s.markGeneral("WithEntanglementParams")
	}
}

// WithInitialBlock places b verbatim at index 0 (two_local only).
func WithInitialBlock(b layer.Block) Option {
	return func(s *settings) {
		c := b.Clone()
		s.initial = &c
		s.markGeneral("WithInitialBlock")
	}
}
