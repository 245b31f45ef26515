// SPDX-License-Identifier: MIT
// Package: ansatz
//
// encode.go - canonical CBOR records, fingerprints and cache keys.
//
// Contract:
//   - Records use Core Deterministic Encoding (sorted map keys, shortest
//     integer forms), so equal values always encode to equal bytes.
//   - Gates are recorded by name, arity and parameter count; a custom gate
//     that shares a name with a standard one still fingerprints apart.
//   - Fingerprints and keys are keyed BLAKE3 digests in lowercase hex; the
//     key separates the two domains.

package ansatz

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/layer"
)

var encMode = func() cbor.EncMode {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("ansatz: cbor encoder: %v", err))
	}

	return em
}()

// Domain keys for the keyed hashes; exactly 32 bytes each.
var (
	templateDomain = domainKey("ansatz/template/v1")
	configDomain   = domainKey("ansatz/config/v1")
)

func domainKey(s string) []byte {
	k := make([]byte, 32)
	copy(k, s)

	return k
}

type gateRecord struct {
	Name   string `cbor:"name"`
	Arity  int    `cbor:"arity"`
	Params int    `cbor:"params"`
}

func newGateRecord(op gate.Op) gateRecord {
	return gateRecord{Name: op.Name(), Arity: op.Arity(), Params: op.NumParams()}
}

func gateRecords(ops []gate.Op) []gateRecord {
	out := make([]gateRecord, len(ops))
	for i, op := range ops {
		out[i] = newGateRecord(op)
	}

	return out
}

type blockRecord struct {
	Kind       string         `cbor:"kind"`
	Gate       gateRecord     `cbor:"gate"`
	Wires      int            `cbor:"wires"`
	Params     map[string]any `cbor:"params"`
	Placements [][]int        `cbor:"placements"`
}

func newBlockRecord(b layer.Block) blockRecord {
	placements := b.Placements
	if placements == nil {
		placements = [][]int{}
	}

	return blockRecord{
		Kind:       b.Kind,
		Gate:       newGateRecord(b.Op),
		Wires:      b.Wires,
		Params:     b.Params.Clone(),
		Placements: placements,
	}
}

type stepRecord struct {
	Stage Stage       `cbor:"stage"`
	Rep   int         `cbor:"rep"`
	Index int         `cbor:"index"`
	Block blockRecord `cbor:"block"`
}

type templateRecord struct {
	Wires int          `cbor:"wires"`
	Reps  int          `cbor:"reps"`
	Steps []stepRecord `cbor:"steps"`
}

func (t *Template) record() templateRecord {
	rec := templateRecord{Wires: t.wires, Reps: t.reps, Steps: make([]stepRecord, len(t.steps))}
	for i, s := range t.steps {
		rec.Steps[i] = stepRecord{Stage: s.Stage, Rep: s.Rep, Index: s.Index, Block: newBlockRecord(s.Block)}
	}

	return rec
}

// MarshalCBOR encodes the template deterministically.
func (t *Template) MarshalCBOR() ([]byte, error) {
	data, err := encMode.Marshal(t.record())
	if err != nil {
		return nil, fmt.Errorf("MarshalCBOR: %w", err)
	}

	return data, nil
}

// Fingerprint returns the hex BLAKE3 digest of the template's canonical
// encoding. Equal templates have equal fingerprints.
func (t *Template) Fingerprint() (string, error) {
	data, err := t.MarshalCBOR()
	if err != nil {
		return "", fmt.Errorf("Fingerprint: %w", err)
	}

	return keyedDigest(templateDomain, data)
}

type configRecord struct {
	Wires              int            `cbor:"wires"`
	Reps               int            `cbor:"reps"`
	SkipFinalRotation  bool           `cbor:"skip_final_rotation"`
	RotationKind       string         `cbor:"rotation_kind"`
	RotationOps        []gateRecord   `cbor:"rotation_ops"`
	RotationParams     map[string]any `cbor:"rotation_params"`
	Entanglement       string         `cbor:"entanglement"`
	EntanglementBase   string         `cbor:"entanglement_base"`
	EntanglementDense  string         `cbor:"entanglement_dense"`
	EntanglementOps    []gateRecord   `cbor:"entanglement_ops"`
	EntanglementParams map[string]any `cbor:"entanglement_params"`
	Initial            *blockRecord   `cbor:"initial"`
}

// Key returns a deterministic cache key for c after defaults are applied.
// Kinds are identified by name, so two distinct kinds sharing a name
// share a key; Cache only keys configs whose kinds it has registered.
func (c Config) Key() (string, error) {
	d := c.withDefaults()
	rec := configRecord{
		Wires:              d.Wires,
		Reps:               d.Reps,
		SkipFinalRotation:  d.SkipFinalRotation,
		RotationKind:       d.Rotation.Kind.Name(),
		RotationOps:        gateRecords(d.Rotation.Ops),
		RotationParams:     d.Rotation.Params.Clone(),
		Entanglement:       d.Entanglement.Layer.String(),
		EntanglementBase:   d.Entanglement.Base.Name(),
		EntanglementDense:  d.Entanglement.Dense.Name(),
		EntanglementOps:    gateRecords(d.Entanglement.Ops),
		EntanglementParams: d.Entanglement.Params.Clone(),
	}
	if d.Initial != nil {
		ib := newBlockRecord(*d.Initial)
		rec.Initial = &ib
	}

	data, err := encMode.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("Key: %w", err)
	}

	return keyedDigest(configDomain, data)
}

func keyedDigest(key, data []byte) (string, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return "", err
	}
	_, _ = h.Write(data)

	return hex.EncodeToString(h.Sum(nil)), nil
}
