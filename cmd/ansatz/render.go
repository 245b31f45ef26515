// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/markkurossi/tabulate"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ansatz/ansatz"
	"github.com/katalvlaran/ansatz/coupling"
	"github.com/katalvlaran/ansatz/gate"
	"github.com/katalvlaran/ansatz/preset"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
	formatCBOR  outputFormat = "cbor"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case formatTable, formatJSON, formatYAML, formatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("invalid --format %q: want table, json, yaml or cbor", s)
	}
}

// report is the structured output of json and yaml.
type report struct {
	Preset      string          `json:"preset" yaml:"preset"`
	Wires       int             `json:"wires" yaml:"wires"`
	Reps        int             `json:"reps" yaml:"reps"`
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Stats       ansatz.Stats    `json:"stats" yaml:"stats"`
	Steps       []ansatz.Step   `json:"steps" yaml:"steps"`
	Coupling    *couplingReport `json:"coupling,omitempty" yaml:"coupling,omitempty"`
}

type couplingReport struct {
	Edges      []coupling.Edge `json:"edges" yaml:"edges"`
	Components [][]int         `json:"components" yaml:"components"`
	Connected  bool            `json:"connected" yaml:"connected"`
	Ring       []int           `json:"ring,omitempty" yaml:"ring,omitempty"`
}

func newCouplingReport(g *coupling.Graph) *couplingReport {
	if g == nil {
		return nil
	}

	ring, _ := g.FindCycle()

	return &couplingReport{Edges: g.Edges(), Components: g.Components(), Connected: g.Connected(), Ring: ring}
}

func render(w io.Writer, format outputFormat, presetName string, tpl *ansatz.Template, g *coupling.Graph) error {
	if format == formatCBOR {
		data, err := tpl.MarshalCBOR()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fp, err := tpl.Fingerprint()
	if err != nil {
		return err
	}
	rep := report{
		Preset:      presetName,
		Wires:       tpl.Wires(),
		Reps:        tpl.Reps(),
		Fingerprint: fp,
		Stats:       tpl.Stats(),
		Steps:       tpl.Steps(),
		Coupling:    newCouplingReport(g),
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		renderTable(w, rep)
		return nil
	}
}

func renderTable(w io.Writer, rep report) {
	fmt.Fprintf(w, "preset: %s  wires: %d  reps: %d\n", rep.Preset, rep.Wires, rep.Reps)
	fmt.Fprintf(w, "fingerprint: %s\n", rep.Fingerprint)

	tab := tabulate.New(tabulate.Unicode)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Stage").SetAlign(tabulate.ML)
	tab.Header("Rep").SetAlign(tabulate.MR)
	tab.Header("Kind").SetAlign(tabulate.ML)
	tab.Header("Gate").SetAlign(tabulate.ML)
	tab.Header("Gates").SetAlign(tabulate.MR)
	tab.Header("Params").SetAlign(tabulate.MR)
	tab.Header("Placements").SetAlign(tabulate.ML)
	for i, s := range rep.Steps {
		row := tab.Row()
		row.Column(strconv.Itoa(i))
		row.Column(s.Stage.String())
		row.Column(strconv.Itoa(s.Rep))
		row.Column(s.Block.Kind)
		row.Column(s.Block.Op.String())
		row.Column(strconv.Itoa(s.Block.Gates()))
		row.Column(strconv.Itoa(s.Block.NumParams()))
		row.Column(fmt.Sprint(s.Block.Placements))
	}
	tab.Print(w)

	st := rep.Stats
	stages := make([]string, 0, len(st.ByStage))
	for stage, n := range st.ByStage {
		stages = append(stages, fmt.Sprintf("%s=%d", stage, n))
	}
	sort.Strings(stages)
	fmt.Fprintf(w, "blocks: %d (%s)  gates: %d  two-wire: %d  params: %d  trainable: %d  depth: %d\n",
		st.Blocks, strings.Join(stages, " "), st.Gates, st.TwoWireGates, st.Params, st.TrainableParams, st.Depth)

	if rep.Coupling == nil {
		return
	}
	edges := tabulate.New(tabulate.Unicode)
	edges.Header("A").SetAlign(tabulate.MR)
	edges.Header("B").SetAlign(tabulate.MR)
	edges.Header("Count").SetAlign(tabulate.MR)
	for _, e := range rep.Coupling.Edges {
		row := edges.Row()
		row.Column(strconv.Itoa(e.A))
		row.Column(strconv.Itoa(e.B))
		row.Column(strconv.Itoa(e.Count))
	}
	edges.Print(w)
	fmt.Fprintf(w, "components: %v  connected: %t\n", rep.Coupling.Components, rep.Coupling.Connected)
	if rep.Coupling.Ring != nil {
		fmt.Fprintf(w, "ring: %v\n", rep.Coupling.Ring)
	}
}

func opNames(ops []gate.Op) string {
	if len(ops) == 0 {
		return "(caller)"
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}

	return strings.Join(names, ", ")
}

func renderPresets(w io.Writer) error {
	tab := tabulate.New(tabulate.Unicode)
	tab.Header("Preset").SetAlign(tabulate.ML)
	tab.Header("Rotation").SetAlign(tabulate.ML)
	tab.Header("Entanglement").SetAlign(tabulate.ML)
	tab.Header("Topology").SetAlign(tabulate.ML)
	tab.Header("Reps").SetAlign(tabulate.MR)
	for _, n := range preset.Names() {
		p, err := preset.Lookup(string(n))
		if err != nil {
			return err
		}
		row := tab.Row()
		row.Column(string(p.Name()))
		row.Column(opNames(p.RotationOps()))
		row.Column(opNames(p.EntanglementOps()))
		row.Column(string(p.DefaultTopology()))
		row.Column(strconv.Itoa(p.DefaultReps()))
	}
	tab.Print(w)

	return nil
}
