// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/ansatz/layer"
)

// hclDocument mirrors Document with HCL tags. The arch settings are a block:
//
//	preset = "real_amplitudes"
//	arch {
//	  n_wires = 4
//	}
type hclDocument struct {
	Preset             string    `hcl:"preset"`
	Arch               hclArch   `hcl:"arch,block"`
	Reps               *int      `hcl:"reps,optional"`
	Entanglement       *string   `hcl:"entanglement,optional"`
	SkipFinalRotation  *bool     `hcl:"skip_final_rotation,optional"`
	RotationOps        []string  `hcl:"rotation_ops,optional"`
	EntanglementOps    []string  `hcl:"entanglement_ops,optional"`
	RotationLayer      *string   `hcl:"rotation_layer,optional"`
	RotationParams     cty.Value `hcl:"rotation_params,optional"`
	EntanglementParams cty.Value `hcl:"entanglement_params,optional"`
}

type hclArch struct {
	NWires int `hcl:"n_wires"`
}

func parseHCL(data []byte, filename string) (Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return Document{}, diags
	}
	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Document{}, diags
	}

	doc := Document{
		Preset:          raw.Preset,
		Arch:            Arch{NWires: raw.Arch.NWires},
		Reps:            raw.Reps,
		RotationOps:     raw.RotationOps,
		EntanglementOps: raw.EntanglementOps,
	}
	if raw.Entanglement != nil {
		doc.Entanglement = *raw.Entanglement
	}
	if raw.SkipFinalRotation != nil {
		doc.SkipFinalRotation = *raw.SkipFinalRotation
	}
	if raw.RotationLayer != nil {
		doc.RotationLayer = *raw.RotationLayer
	}

	var err error
	if doc.RotationParams, err = paramsFromCty("rotation_params", raw.RotationParams); err != nil {
		return Document{}, err
	}
	if doc.EntanglementParams, err = paramsFromCty("entanglement_params", raw.EntanglementParams); err != nil {
		return Document{}, err
	}

	return doc, nil
}

var errParamsShape = errors.New("params must be an object of bool or number values")

// paramsFromCty flattens an HCL object into a params map. Integral numbers
// become int so layer kinds read them without conversion; one that does not
// fit in an int is rejected.
func paramsFromCty(attr string, val cty.Value) (map[string]any, error) {
	if val == cty.NilVal || val.IsNull() {
		return nil, nil
	}
	if !val.IsKnown() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return nil, fmt.Errorf("%s: %w", attr, errParamsShape)
	}

	out := make(map[string]any, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		key := k.AsString()
		if !v.IsKnown() || v.IsNull() {
			return nil, fmt.Errorf("%s.%s: %w", attr, key, errParamsShape)
		}
		switch v.Type() {
		case cty.Bool:
			out[key] = v.True()
		case cty.Number:
			bf := v.AsBigFloat()
			if bf.IsInt() {
				i, acc := bf.Int64()
				if acc != big.Exact || i < math.MinInt || i > math.MaxInt {
					return nil, fmt.Errorf("%s.%s=%s: out of int range: %w", attr, key, bf.Text('g', -1), layer.ErrInvalidParam)
				}
				out[key] = int(i)
			} else {
				f, _ := bf.Float64()
				out[key] = f
			}
		default:
			return nil, fmt.Errorf("%s.%s (%s): %w", attr, key, v.Type().FriendlyName(), errParamsShape)
		}
	}

	return out, nil
}
