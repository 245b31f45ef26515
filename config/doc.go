// Package config loads declarative ansatz documents from YAML, JSON(C) or
// HCL and turns them into preset builds.
//
// YAML:
//
//	preset: efficient_su2
//	arch:
//	  n_wires: 4
//	reps: 2
//	entanglement: circular
//
// HCL:
//
//	preset = "two_local"
//	arch {
//	  n_wires = 3
//	}
//	rotation_ops        = ["rx"]
//	entanglement_ops    = ["cz"]
//	entanglement_params = { jump = 1 }
//
// Fields rotation_ops, entanglement_ops, rotation_layer, rotation_params and
// entanglement_params are accepted by two_local only; fixed presets reject
// them with preset.ErrOptionNotAllowed.
package config
