package ansatz_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/ansatz/ansatz"
	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
	"github.com/katalvlaran/ansatz/topology"
)

var trainable = layer.Params{layer.KeyHasParams: true, layer.KeyTrainable: true}

// realAmplitudes mirrors the RY/CNOT reverse-linear layout.
func realAmplitudes(wires, reps int) ansatz.Config {
	return ansatz.Config{
		Wires:    wires,
		Reps:     reps,
		Rotation: ansatz.RotationSpec{Ops: []gate.Op{gate.RY}, Params: trainable},
		Entanglement: ansatz.EntanglementSpec{
			Ops:   []gate.Op{gate.CNOT},
			Layer: topology.ByName(topology.ReverseLinear),
		},
	}
}

// BuildSuite exercises composition order, length and error propagation.
type BuildSuite struct {
	suite.Suite
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

// TestRealAmplitudesLayout checks order, stages and reversed pairs.
func (s *BuildSuite) TestRealAmplitudesLayout() {
	cfg := realAmplitudes(4, 3)
	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, tpl.Len())
	require.Equal(s.T(), cfg.ExpectedLen(), tpl.Len())

	steps := tpl.Steps()
	wantStages := []ansatz.Stage{
		ansatz.StageRotation, ansatz.StageEntanglement,
		ansatz.StageRotation, ansatz.StageEntanglement,
		ansatz.StageRotation, ansatz.StageEntanglement,
		ansatz.StageFinalRotation,
	}
	for i, st := range steps {
		require.Equal(s.T(), wantStages[i], st.Stage, "step %d", i)
	}
	require.Equal(s.T(), 3, steps[6].Rep)
	require.Equal(s.T(), 1, steps[3].Rep)

	ent := steps[1].Block
	require.Equal(s.T(), "pairwise", ent.Kind)
	require.Equal(s.T(), gate.CNOT, ent.Op)
	require.Equal(s.T(), [][]int{{1, 0}, {2, 1}, {3, 2}}, ent.Placements)
	require.Equal(s.T(), layer.Params{layer.KeyWireReverse: true}, ent.Params)

	rot := steps[0].Block
	require.Equal(s.T(), "all_wires", rot.Kind)
	require.Equal(s.T(), [][]int{{0}, {1}, {2}, {3}}, rot.Placements)
	require.True(s.T(), rot.Trainable())
}

// TestExcitationPreservingLayout checks the full topology with two ent ops.
func (s *BuildSuite) TestExcitationPreservingLayout() {
	cfg := ansatz.Config{
		Wires:    4,
		Reps:     3,
		Rotation: ansatz.RotationSpec{Ops: []gate.Op{gate.RZ}, Params: trainable},
		Entanglement: ansatz.EntanglementSpec{
			Ops:    []gate.Op{gate.RXX, gate.RYY},
			Layer:  topology.ByName(topology.Full),
			Params: trainable,
		},
	}
	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, tpl.Len())

	blocks := tpl.Blocks()
	require.Equal(s.T(), gate.RZ, blocks[0].Op)
	require.Equal(s.T(), gate.RXX, blocks[1].Op)
	require.Equal(s.T(), gate.RYY, blocks[2].Op)
	require.Equal(s.T(), "dense", blocks[1].Kind)
	require.Len(s.T(), blocks[1].Placements, 6)
	require.True(s.T(), blocks[2].HasParams())

	st := tpl.Stats()
	require.Equal(s.T(), 10, st.Blocks)
	require.Equal(s.T(), map[ansatz.Stage]int{
		ansatz.StageRotation:      3,
		ansatz.StageEntanglement:  6,
		ansatz.StageFinalRotation: 1,
	}, st.ByStage)
	require.Equal(s.T(), 52, st.Gates)
	require.Equal(s.T(), 36, st.TwoWireGates)
	require.Equal(s.T(), 52, st.Params)
	require.Equal(s.T(), 52, st.TrainableParams)
}

// TestLengthFormula walks a grid of shapes against ExpectedLen.
func (s *BuildSuite) TestLengthFormula() {
	rotations := [][]gate.Op{nil, {gate.RY}, {gate.RY, gate.RZ}}
	entanglers := [][]gate.Op{nil, {gate.CNOT}, {gate.RXX, gate.RYY}}
	initial := &layer.Block{Kind: "prep", Op: gate.H, Wires: 3, Placements: [][]int{{0}}}

	for _, rot := range rotations {
		for _, ent := range entanglers {
			for reps := 0; reps <= 3; reps++ {
				for _, skip := range []bool{false, true} {
					for _, init := range []*layer.Block{nil, initial} {
						cfg := ansatz.Config{
							Wires:             3,
							Reps:              reps,
							Rotation:          ansatz.RotationSpec{Ops: rot},
							Entanglement:      ansatz.EntanglementSpec{Ops: ent},
							Initial:           init,
							SkipFinalRotation: skip,
						}
						tpl, err := ansatz.Build(cfg)
						require.NoError(s.T(), err)

						want := reps * (len(rot) + len(ent))
						if init != nil {
							want++
						}
						if !skip {
							want += len(rot)
						}
						require.Equal(s.T(), want, tpl.Len())
					}
				}
			}
		}
	}
}

// TestZeroRepsKeepsFinalRotation covers reps=0 with and without skipping.
func (s *BuildSuite) TestZeroRepsKeepsFinalRotation() {
	cfg := realAmplitudes(3, 0)
	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, tpl.Len())
	step := tpl.Steps()[0]
	require.Equal(s.T(), ansatz.StageFinalRotation, step.Stage)
	require.Equal(s.T(), 0, step.Rep)
	require.Equal(s.T(), gate.RY, step.Block.Op)

	cfg.SkipFinalRotation = true
	tpl, err = ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Zero(s.T(), tpl.Len())
}

// TestInitialBlockVerbatim checks position, annotation and independence.
func (s *BuildSuite) TestInitialBlockVerbatim() {
	initial := &layer.Block{
		Kind:       "prep",
		Op:         gate.X,
		Wires:      4,
		Placements: [][]int{{0}, {2}},
	}
	cfg := realAmplitudes(4, 1)
	cfg.Initial = initial

	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, tpl.Len())

	first := tpl.Steps()[0]
	require.Equal(s.T(), ansatz.StageInitial, first.Stage)
	require.Equal(s.T(), -1, first.Rep)
	require.Equal(s.T(), *initial, first.Block)

	initial.Placements[0][0] = 3
	b, err := tpl.Block(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{0}, {2}}, b.Placements)
}

// TestSingleWire yields empty entangling blocks, never an error.
func (s *BuildSuite) TestSingleWire() {
	for _, name := range topology.Names() {
		cfg := realAmplitudes(1, 2)
		cfg.Entanglement.Layer = topology.ByName(name)
		tpl, err := ansatz.Build(cfg)
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), 5, tpl.Len(), name)
		ent, err := tpl.Block(1)
		require.NoError(s.T(), err)
		require.Empty(s.T(), ent.Placements, name)
	}
}

// TestOverridesWinOverUserParams checks the merge direction.
func (s *BuildSuite) TestOverridesWinOverUserParams() {
	cfg := realAmplitudes(3, 1)
	cfg.Entanglement.Params = layer.Params{layer.KeyWireReverse: false}

	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	ent, err := tpl.Block(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{1, 0}, {2, 1}}, ent.Placements)
	require.Equal(s.T(), layer.Params{layer.KeyWireReverse: false}, cfg.Entanglement.Params)
}

// TestUserParamsReachTopologyKind passes jump through a circular layer.
func (s *BuildSuite) TestUserParamsReachTopologyKind() {
	cfg := realAmplitudes(5, 1)
	cfg.Entanglement.Layer = topology.ByName(topology.Circular)
	cfg.Entanglement.Params = layer.Params{layer.KeyJump: 2}

	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	ent, err := tpl.Block(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{0, 2}, {1, 3}, {2, 4}, {3, 0}, {4, 1}}, ent.Placements)
	require.Equal(s.T(), layer.Params{layer.KeyJump: 2, layer.KeyCircular: true}, ent.Params)
}

// TestDirectKind bypasses the topology table.
func (s *BuildSuite) TestDirectKind() {
	star := layer.NewKind("star", func(op gate.Op, wires int, params layer.Params) (layer.Block, error) {
		pl := make([][]int, 0, wires-1)
		for w := 1; w < wires; w++ {
			pl = append(pl, []int{0, w})
		}
		return layer.Block{Op: op, Wires: wires, Params: params, Placements: pl}, nil
	})
	cfg := realAmplitudes(4, 1)
	cfg.Entanglement.Layer = topology.Direct(star)

	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	ent, err := tpl.Block(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "star", ent.Kind)
	require.Equal(s.T(), [][]int{{0, 1}, {0, 2}, {0, 3}}, ent.Placements)
	require.Empty(s.T(), ent.Params)
}

// TestFreshParamsPerBlock fails if two constructions share a map.
func (s *BuildSuite) TestFreshParamsPerBlock() {
	counting := layer.NewKind("counting", func(op gate.Op, wires int, params layer.Params) (layer.Block, error) {
		n, _ := params.Int("count", 0)
		params["count"] = n + 1
		return layer.Block{Op: op, Wires: wires, Params: params, Placements: [][]int{{0}}}, nil
	})
	userParams := layer.Params{"tag": true}
	cfg := ansatz.Config{
		Wires:    2,
		Reps:     3,
		Rotation: ansatz.RotationSpec{Ops: []gate.Op{gate.RY, gate.RZ}, Kind: counting, Params: userParams},
	}

	tpl, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, tpl.Len())
	for _, b := range tpl.Blocks() {
		require.Equal(s.T(), 1, b.Params["count"])
	}
	require.Equal(s.T(), layer.Params{"tag": true}, userParams)
}

// TestDeterministic builds twice and compares block for block.
func (s *BuildSuite) TestDeterministic() {
	cfg := realAmplitudes(5, 2)
	a, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	b, err := ansatz.Build(cfg)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Steps(), b.Steps())
}

// TestValidation covers wire and rep bounds.
func (s *BuildSuite) TestValidation() {
	_, err := ansatz.Build(realAmplitudes(0, 1))
	require.ErrorIs(s.T(), err, ansatz.ErrInvalidWireCount)

	_, err = ansatz.Build(realAmplitudes(-3, 1))
	require.ErrorIs(s.T(), err, ansatz.ErrInvalidWireCount)

	tpl, err := ansatz.Build(realAmplitudes(3, -1))
	require.ErrorIs(s.T(), err, ansatz.ErrInvalidReps)
	require.Nil(s.T(), tpl)
}

// TestRepsOverflow rejects a block count that does not fit in an int.
func (s *BuildSuite) TestRepsOverflow() {
	cfg := realAmplitudes(2, math.MaxInt/2+1)
	require.Equal(s.T(), math.MaxInt, cfg.ExpectedLen())

	var tpl *ansatz.Template
	var err error
	require.NotPanics(s.T(), func() { tpl, err = ansatz.Build(cfg) })
	require.ErrorIs(s.T(), err, ansatz.ErrInvalidReps)
	require.Nil(s.T(), tpl)

	// Largest reps whose count still fits.
	cfg.Reps = (math.MaxInt - 1) / 2
	require.Equal(s.T(), math.MaxInt, cfg.ExpectedLen())

	// No ops: any reps is fine.
	empty := ansatz.Config{Wires: 2, Reps: math.MaxInt, SkipFinalRotation: true}
	require.Zero(s.T(), empty.ExpectedLen())
}

// TestTopologyErrors never falls back to a default wiring.
func (s *BuildSuite) TestTopologyErrors() {
	cfg := realAmplitudes(3, 1)
	cfg.Entanglement.Layer = topology.ByName("ring")
	_, err := ansatz.Build(cfg)
	require.ErrorIs(s.T(), err, topology.ErrUnknownTopology)

	cfg.Entanglement.Layer = topology.Direct(nil)
	_, err = ansatz.Build(cfg)
	require.ErrorIs(s.T(), err, topology.ErrNilKind)
}

// TestConstructionErrorLocation pinpoints the failing block.
func (s *BuildSuite) TestConstructionErrorLocation() {
	cfg := realAmplitudes(3, 2)
	cfg.Rotation.Ops = []gate.Op{gate.RY, gate.CNOT}

	tpl, err := ansatz.Build(cfg)
	require.Nil(s.T(), tpl)
	require.ErrorIs(s.T(), err, ansatz.ErrLayerConstructionFailed)
	require.ErrorIs(s.T(), err, layer.ErrArity)

	var ce *ansatz.ConstructionError
	require.True(s.T(), errors.As(err, &ce))
	require.Equal(s.T(), ansatz.StageRotation, ce.Stage)
	require.Equal(s.T(), 0, ce.Rep)
	require.Equal(s.T(), 1, ce.Index)
	require.Equal(s.T(), "all_wires", ce.Kind)
	require.Equal(s.T(), gate.CNOT, ce.Op)
}

// TestConstructionErrorInEntanglement reports an invalid circular jump.
func (s *BuildSuite) TestConstructionErrorInEntanglement() {
	cfg := realAmplitudes(4, 1)
	cfg.Entanglement.Layer = topology.ByName(topology.Circular)
	cfg.Entanglement.Params = layer.Params{layer.KeyJump: 4}

	_, err := ansatz.Build(cfg)
	require.ErrorIs(s.T(), err, layer.ErrInvalidParam)

	var ce *ansatz.ConstructionError
	require.ErrorAs(s.T(), err, &ce)
	require.Equal(s.T(), ansatz.StageEntanglement, ce.Stage)
	require.Equal(s.T(), "pairwise", ce.Kind)
}

// TestCustomKindError propagates an arbitrary cause.
func (s *BuildSuite) TestCustomKindError() {
	boom := errors.New("boom")
	failing := layer.NewKind("failing", func(gate.Op, int, layer.Params) (layer.Block, error) {
		return layer.Block{}, boom
	})
	cfg := realAmplitudes(2, 0)
	cfg.Rotation.Kind = failing

	_, err := ansatz.Build(cfg)
	require.ErrorIs(s.T(), err, boom)
	require.ErrorIs(s.T(), err, ansatz.ErrLayerConstructionFailed)

	var ce *ansatz.ConstructionError
	require.ErrorAs(s.T(), err, &ce)
	require.Equal(s.T(), ansatz.StageFinalRotation, ce.Stage)
	require.Equal(s.T(), 0, ce.Rep)
}

// TestLogging checks one debug entry per block plus the bracketing pair.
func (s *BuildSuite) TestLogging() {
	core, logs := observer.New(zap.DebugLevel)
	tpl, err := ansatz.Build(realAmplitudes(3, 2), ansatz.WithLogger(zap.New(core)))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, logs.FilterMessage("building template").Len())
	require.Equal(s.T(), tpl.Len(), logs.FilterMessage("block constructed").Len())

	built := logs.FilterMessage("template built").All()
	require.Len(s.T(), built, 1)
	fp, err := tpl.Fingerprint()
	require.NoError(s.T(), err)
	require.Equal(s.T(), fp, built[0].ContextMap()["fingerprint"])
}

// TestWithLoggerNil panics like every meaningless option.
func (s *BuildSuite) TestWithLoggerNil() {
	require.Panics(s.T(), func() { ansatz.WithLogger(nil) })
}
