// SPDX-License-Identifier: MIT
// Package: ansatz/config
//
// config.go - document schema, format detection and decoding.
//
// Contract:
//   - YAML and JSON(C) reject unknown keys; HCL rejects unknown attributes.
//   - JSON comments and trailing commas are accepted (JSONC).
//   - Decoding never validates semantics; see Document.Validate.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat indicates an unknown format or file extension.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// ErrDecode wraps every syntax or schema failure of a document.
var ErrDecode = errors.New("config: cannot decode document")

// Format is a document encoding.
type Format string

// Supported formats. FormatJSON accepts JSONC.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// FormatFromPath maps a file extension onto a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnsupportedFormat)
	}
}

// Arch describes the target device.
type Arch struct {
	NWires int `yaml:"n_wires" json:"n_wires"`
}

// Document is the declarative form of one preset build.
type Document struct {
	// Preset is a preset.Names() entry; required.
	Preset string `yaml:"preset" json:"preset"`
	// Arch.NWires is the wire count; required.
	Arch Arch `yaml:"arch" json:"arch"`
	// Reps overrides the preset default when set.
	Reps *int `yaml:"reps,omitempty" json:"reps,omitempty"`
	// Entanglement overrides the preset topology when non-empty.
	Entanglement string `yaml:"entanglement,omitempty" json:"entanglement,omitempty"`
	// SkipFinalRotation drops the trailing rotation sub-block.
	SkipFinalRotation bool `yaml:"skip_final_rotation,omitempty" json:"skip_final_rotation,omitempty"`

	// The fields below are accepted by two_local only.

	RotationOps        []string       `yaml:"rotation_ops,omitempty" json:"rotation_ops,omitempty"`
	EntanglementOps    []string       `yaml:"entanglement_ops,omitempty" json:"entanglement_ops,omitempty"`
	RotationLayer      string         `yaml:"rotation_layer,omitempty" json:"rotation_layer,omitempty"`
	RotationParams     map[string]any `yaml:"rotation_params,omitempty" json:"rotation_params,omitempty"`
	EntanglementParams map[string]any `yaml:"entanglement_params,omitempty" json:"entanglement_params,omitempty"`
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (Document, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatHCL:
		doc, err = parseHCL(data, "document.hcl")
	default:
		return Document{}, fmt.Errorf("Parse(%q): %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return Document{}, fmt.Errorf("Parse(%s): %w: %w", format, ErrDecode, err)
	}

	return doc, nil
}

// ReadFile loads and decodes path, picking the format by extension.
func ReadFile(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("ReadFile(%q): %w", path, err)
	}
	if format == FormatHCL {
		doc, err := parseHCL(data, path)
		if err != nil {
			return Document{}, fmt.Errorf("ReadFile(%q): %w: %w", path, ErrDecode, err)
		}
		return doc, nil
	}

	doc, err := Parse(data, format)
	if err != nil {
		return Document{}, fmt.Errorf("ReadFile(%q): %w", path, err)
	}

	return doc, nil
}
