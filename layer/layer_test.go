// Package layer_test contains functional tests for the standard layer kinds,
// verifying placement order, parameter handling and error classification.
package layer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
)

// TestKinds_Placements runs table-driven placement checks for each kind.
func TestKinds_Placements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   layer.Kind
		op     gate.Op
		wires  int
		params layer.Params
		want   [][]int
	}{
		{
			name: "AllWires(4)", kind: layer.AllWires, op: gate.RY, wires: 4,
			want: [][]int{{0}, {1}, {2}, {3}},
		},
		{
			name: "AllWires(1)", kind: layer.AllWires, op: gate.H, wires: 1,
			want: [][]int{{0}},
		},
		{
			name: "Pairwise linear(4)", kind: layer.Pairwise, op: gate.CNOT, wires: 4,
			want: [][]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name: "Pairwise reverse(4)", kind: layer.Pairwise, op: gate.CNOT, wires: 4,
			params: layer.Params{layer.KeyWireReverse: true},
			want:   [][]int{{1, 0}, {2, 1}, {3, 2}},
		},
		{
			name: "Pairwise circular(4)", kind: layer.Pairwise, op: gate.CZ, wires: 4,
			params: layer.Params{layer.KeyCircular: true},
			want:   [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		},
		{
			name: "Pairwise circular reverse(3)", kind: layer.Pairwise, op: gate.CZ, wires: 3,
			params: layer.Params{layer.KeyCircular: true, layer.KeyWireReverse: true},
			want:   [][]int{{1, 0}, {2, 1}, {0, 2}},
		},
		{
			name: "Pairwise jump=2(5)", kind: layer.Pairwise, op: gate.CNOT, wires: 5,
			params: layer.Params{layer.KeyJump: 2},
			want:   [][]int{{0, 2}, {1, 3}, {2, 4}},
		},
		{
			name: "Pairwise circular jump=2(4)", kind: layer.Pairwise, op: gate.CNOT, wires: 4,
			params: layer.Params{layer.KeyJump: 2, layer.KeyCircular: true},
			want:   [][]int{{0, 2}, {1, 3}, {2, 0}, {3, 1}},
		},
		{
			name: "Pairwise jump beyond wires", kind: layer.Pairwise, op: gate.CNOT, wires: 3,
			params: layer.Params{layer.KeyJump: 5},
			want:   [][]int{},
		},
		{
			name: "Pairwise single wire", kind: layer.Pairwise, op: gate.CNOT, wires: 1,
			params: layer.Params{layer.KeyCircular: true},
			want:   [][]int{},
		},
		{
			name: "Pairwise circular(2)", kind: layer.Pairwise, op: gate.CNOT, wires: 2,
			params: layer.Params{layer.KeyCircular: true},
			want:   [][]int{{0, 1}, {1, 0}},
		},
		{
			name: "Dense(4)", kind: layer.Dense, op: gate.RXX, wires: 4,
			want: [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		},
		{
			name: "Dense(1)", kind: layer.Dense, op: gate.RXX, wires: 1,
			want: [][]int{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := tc.kind.Construct(tc.op, tc.wires, tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.kind.Name(), b.Kind)
			require.Equal(t, tc.op, b.Op)
			require.Equal(t, tc.wires, b.Wires)
			require.Equal(t, tc.want, b.Placements)
			require.Equal(t, len(tc.want), b.Gates())
		})
	}
}

// TestKinds_Errors checks every failure class surfaces its sentinel.
func TestKinds_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   layer.Kind
		op     gate.Op
		wires  int
		params layer.Params
		want   error
	}{
		{"zero wires", layer.AllWires, gate.RY, 0, nil, layer.ErrInvalidWires},
		{"zero op", layer.Dense, gate.Op{}, 3, nil, layer.ErrInvalidOp},
		{"2q op on AllWires", layer.AllWires, gate.CNOT, 3, nil, layer.ErrArity},
		{"1q op on Pairwise", layer.Pairwise, gate.RY, 3, nil, layer.ErrArity},
		{"1q op on Dense", layer.Dense, gate.RZ, 3, nil, layer.ErrArity},
		{"unknown key", layer.AllWires, gate.RY, 3, layer.Params{"circular": true}, layer.ErrUnknownParam},
		{"dense rejects wire_reverse", layer.Dense, gate.RXX, 3, layer.Params{layer.KeyWireReverse: true}, layer.ErrUnknownParam},
		{"bool type", layer.Pairwise, gate.CNOT, 3, layer.Params{layer.KeyCircular: "yes"}, layer.ErrParamType},
		{"trainable type", layer.AllWires, gate.RY, 3, layer.Params{layer.KeyTrainable: 1}, layer.ErrParamType},
		{"jump type", layer.Pairwise, gate.CNOT, 3, layer.Params{layer.KeyJump: 1.5}, layer.ErrParamType},
		{"jump overflow", layer.Pairwise, gate.CNOT, 3, layer.Params{layer.KeyJump: 1e300}, layer.ErrInvalidParam},
		{"jump zero", layer.Pairwise, gate.CNOT, 3, layer.Params{layer.KeyJump: 0}, layer.ErrInvalidParam},
		{"circular self pair", layer.Pairwise, gate.CNOT, 3, layer.Params{layer.KeyJump: 3, layer.KeyCircular: true}, layer.ErrInvalidParam},
		{"has_params on cnot", layer.Pairwise, gate.CNOT, 3, layer.Params{layer.KeyHasParams: true}, layer.ErrNotParametric},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.kind.Construct(tc.op, tc.wires, tc.params)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestConstruct_DoesNotRetainParams ensures the block owns its params.
func TestConstruct_DoesNotRetainParams(t *testing.T) {
	in := layer.Params{layer.KeyHasParams: true, layer.KeyTrainable: true}
	b, err := layer.AllWires.Construct(gate.RZ, 2, in)
	require.NoError(t, err)

	in[layer.KeyTrainable] = false
	require.True(t, b.Trainable())
	require.True(t, b.HasParams())
	require.Equal(t, 2, b.NumParams())
}

// TestBlock_NumParams counts scalars only when has_params is set.
func TestBlock_NumParams(t *testing.T) {
	u3, err := layer.AllWires.Construct(gate.U3, 3, layer.Params{layer.KeyHasParams: true})
	require.NoError(t, err)
	require.Equal(t, 9, u3.NumParams())

	fixed, err := layer.AllWires.Construct(gate.RY, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 0, fixed.NumParams())
}

// TestBlock_Clone verifies deep-copy semantics.
func TestBlock_Clone(t *testing.T) {
	b, err := layer.Dense.Construct(gate.RXX, 3, layer.Params{layer.KeyHasParams: true})
	require.NoError(t, err)

	c := b.Clone()
	require.Equal(t, b, c)

	c.Placements[0][0] = 99
	c.Params[layer.KeyHasParams] = false
	require.Equal(t, 0, b.Placements[0][0])
	require.True(t, b.HasParams())
}

// TestNewKind covers the function adapter.
func TestNewKind(t *testing.T) {
	boom := errors.New("boom")
	k := layer.NewKind("custom", func(op gate.Op, wires int, params layer.Params) (layer.Block, error) {
		if wires > 2 {
			return layer.Block{}, boom
		}
		return layer.Block{Op: op, Wires: wires, Placements: [][]int{{0}}}, nil
	})
	require.Equal(t, "custom", k.Name())

	b, err := k.Construct(gate.RX, 2, nil)
	require.NoError(t, err)
	require.Equal(t, "custom", b.Kind)

	_, err = k.Construct(gate.RX, 3, nil)
	require.ErrorIs(t, err, boom)

	require.Panics(t, func() { layer.NewKind("", func(gate.Op, int, layer.Params) (layer.Block, error) { return layer.Block{}, nil }) })
	require.Panics(t, func() { layer.NewKind("x", nil) })
}
