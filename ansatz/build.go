// SPDX-License-Identifier: MIT
// Package: ansatz
//
// build.go - the composition engine.
//
// Contract:
//   - Wires ≥ 1 (else ErrInvalidWireCount); Reps ≥ 0 (else ErrInvalidReps).
//   - The block count must fit in an int (else ErrInvalidReps).
//   - The entanglement selection is resolved once, before any block is built.
//   - Entanglement params = user params overlaid with topology overrides
//     (the override wins on a shared key).
//   - Order: [initial] → reps × (rotation ops, entanglement ops) → [final rotation].
//   - The final rotation is governed by SkipFinalRotation alone, so reps=0
//     without skipping still yields one rotation sub-block.
//   - Every kind receives its own params map; no two blocks share storage.
//   - The first failing kind aborts the build; nothing partial is returned.
//
// Complexity:
//   - O(L + Σ placements), L = ExpectedLen().
//
// Determinism:
//   - Same Config (and deterministic kinds) ⇒ same Template, block for block.

package ansatz

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
	"github.com/katalvlaran/ansatz/topology"
)

const methodBuild = "Build"

// maxPrealloc bounds the up-front step allocation.
const maxPrealloc = 1 << 12

// subBlock is a resolved list of ops sharing one kind and one params map.
type subBlock struct {
	stage  Stage
	ops    []gate.Op
	kind   layer.Kind
	params layer.Params
}

// appendTo constructs one block per op and appends them to steps.
func (s subBlock) appendTo(steps []Step, rep, wires int, log *zap.Logger) ([]Step, error) {
	for i, op := range s.ops {
		b, err := s.kind.Construct(op, wires, s.params.Clone())
		if err != nil {
			return nil, &ConstructionError{
				Stage: s.stage,
				Rep:   rep,
				Index: i,
				Kind:  s.kind.Name(),
				Op:    op,
				Err:   err,
			}
		}
		b = b.Clone()
		log.Debug("block constructed",
			zap.Stringer("stage", s.stage),
			zap.Int("rep", rep),
			zap.Int("index", i),
			zap.String("kind", b.Kind),
			zap.Stringer("gate", op),
			zap.Int("gates", b.Gates()),
		)
		steps = append(steps, Step{Stage: s.stage, Rep: rep, Index: i, Block: b})
	}

	return steps, nil
}

// Build composes the layer sequence described by cfg.
func Build(cfg Config, opts ...Option) (*Template, error) {
	o := newBuildOptions(opts...)

	if cfg.Wires < 1 {
		return nil, fmt.Errorf("%s: wires=%d: %w", methodBuild, cfg.Wires, ErrInvalidWireCount)
	}
	if cfg.Reps < 0 {
		return nil, fmt.Errorf("%s: reps=%d: %w", methodBuild, cfg.Reps, ErrInvalidReps)
	}

	total, ok := cfg.expectedLen()
	if !ok {
		return nil, fmt.Errorf("%s: reps=%d: block count overflows int: %w", methodBuild, cfg.Reps, ErrInvalidReps)
	}

	c := cfg.withDefaults()
	entKind, overrides, err := topology.Resolve(c.Entanglement.Layer, c.Entanglement.Base, c.Entanglement.Dense)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	rotation := subBlock{stage: StageRotation, ops: c.Rotation.Ops, kind: c.Rotation.Kind, params: c.Rotation.Params.Clone()}
	entanglement := subBlock{stage: StageEntanglement, ops: c.Entanglement.Ops, kind: entKind, params: c.Entanglement.Params.Merge(overrides)}
	final := rotation
	final.stage = StageFinalRotation

	log := o.logger.With(
		zap.Int("wires", c.Wires),
		zap.Int("reps", c.Reps),
		zap.Stringer("entanglement", c.Entanglement.Layer),
	)
	log.Debug("building template",
		zap.String("rotation_kind", c.Rotation.Kind.Name()),
		zap.String("entanglement_kind", entKind.Name()),
		zap.Int("rotation_ops", len(c.Rotation.Ops)),
		zap.Int("entanglement_ops", len(c.Entanglement.Ops)),
		zap.Bool("skip_final_rotation", c.SkipFinalRotation),
	)

	steps := make([]Step, 0, min(total, maxPrealloc))
	if c.Initial != nil {
		steps = append(steps, Step{Stage: StageInitial, Rep: -1, Index: 0, Block: c.Initial.Clone()})
	}
	for rep := 0; rep < c.Reps; rep++ {
		if steps, err = rotation.appendTo(steps, rep, c.Wires, log); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
		if steps, err = entanglement.appendTo(steps, rep, c.Wires, log); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if !c.SkipFinalRotation {
		if steps, err = final.appendTo(steps, c.Reps, c.Wires, log); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	t := &Template{wires: c.Wires, reps: c.Reps, steps: steps}
	if ce := log.Check(zap.DebugLevel, "template built"); ce != nil {
		fp, _ := t.Fingerprint()
		ce.Write(zap.Int("blocks", t.Len()), zap.String("fingerprint", fp))
	}

	return t, nil
}
