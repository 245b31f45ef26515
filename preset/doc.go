// Package preset is the catalog of named ansatz layouts.
//
//	preset                 rotation   entanglement   topology        reps
//	two_local              caller     caller         linear          1
//	excitation_preserving  RZ         RXX, RYY       full            3
//	efficient_su2          RY, RZ     CNOT           reverse_linear  3
//	real_amplitudes        RY         CNOT           reverse_linear  3
//
// All rotations are trainable all-wires layers. excitation_preserving also
// marks its entanglers trainable. Presets add no logic of their own: each
// resolves to an ansatz.Config and calls ansatz.Build.
package preset
