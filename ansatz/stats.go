// SPDX-License-Identifier: MIT

package ansatz

// Stats summarizes a template.
type Stats struct {
	// Blocks is the total number of blocks.
	Blocks int `json:"blocks" yaml:"blocks"`
	// ByStage counts blocks per stage; absent stages are omitted.
	ByStage map[Stage]int `json:"by_stage" yaml:"by_stage"`
	// Gates is the number of gate placements over all blocks.
	Gates int `json:"gates" yaml:"gates"`
	// TwoWireGates counts placements touching two wires.
	TwoWireGates int `json:"two_wire_gates" yaml:"two_wire_gates"`
	// Params is the number of parameter scalars.
	Params int `json:"params" yaml:"params"`
	// TrainableParams is the share of Params in trainable blocks.
	TrainableParams int `json:"trainable_params" yaml:"trainable_params"`
	// Depth is the ASAP circuit depth: every placement starts one level
	// after the latest placement sharing a wire with it.
	Depth int `json:"depth" yaml:"depth"`
}

// Stats computes the template summary in one pass.
func (t *Template) Stats() Stats {
	st := Stats{Blocks: len(t.steps), ByStage: make(map[Stage]int, 4)}
	front := make(map[int]int, t.wires)

	for _, s := range t.steps {
		st.ByStage[s.Stage]++
		b := s.Block
		st.Gates += b.Gates()
		n := b.NumParams()
		st.Params += n
		if b.Trainable() {
			st.TrainableParams += n
		}

		for _, pl := range b.Placements {
			if len(pl) == 2 {
				st.TwoWireGates++
			}
			level := 0
			for _, w := range pl {
				if front[w] > level {
					level = front[w]
				}
			}
			level++
			for _, w := range pl {
				front[w] = level
			}
			if level > st.Depth {
				st.Depth = level
			}
		}
	}

	return st
}
