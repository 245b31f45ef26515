// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"strings"
)

// Single-wire gates.
var (
	RX         = MustNew("rx", 1, 1)
	RY         = MustNew("ry", 1, 1)
	RZ         = MustNew("rz", 1, 1)
	PhaseShift = MustNew("phaseshift", 1, 1)
	U3         = MustNew("u3", 1, 3)

	H  = MustNew("h", 1, 0)
	X  = MustNew("x", 1, 0)
	Y  = MustNew("y", 1, 0)
	Z  = MustNew("z", 1, 0)
	S  = MustNew("s", 1, 0)
	T  = MustNew("t", 1, 0)
	SX = MustNew("sx", 1, 0)
)

// Two-wire gates.
var (
	RXX = MustNew("rxx", 2, 1)
	RYY = MustNew("ryy", 2, 1)
	RZZ = MustNew("rzz", 2, 1)
	RZX = MustNew("rzx", 2, 1)
	CRX = MustNew("crx", 2, 1)
	CRY = MustNew("cry", 2, 1)
	CRZ = MustNew("crz", 2, 1)

	CNOT = MustNew("cnot", 2, 0)
	CY   = MustNew("cy", 2, 0)
	CZ   = MustNew("cz", 2, 0)
	SWAP = MustNew("swap", 2, 0)
)

// standard lists the catalog in a stable order (single-wire first).
var standard = []Op{
	RX, RY, RZ, PhaseShift, U3,
	H, X, Y, Z, S, T, SX,
	RXX, RYY, RZZ, RZX, CRX, CRY, CRZ,
	CNOT, CY, CZ, SWAP,
}

// aliases maps alternative spellings onto canonical names.
var aliases = map[string]string{
	"cx":          "cnot",
	"p":           "phaseshift",
	"phase_shift": "phaseshift",
	"hadamard":    "h",
	"paulix":      "x",
	"pauliy":      "y",
	"pauliz":      "z",
}

var byName = func() map[string]Op {
	m := make(map[string]Op, len(standard))
	for _, op := range standard {
		m[op.name] = op
	}
	return m
}()

// Standard returns a copy of the standard catalog in stable order.
func Standard() []Op {
	out := make([]Op, len(standard))
	copy(out, standard)

	return out
}

// Lookup resolves a standard gate by name or alias, ignoring case.
func Lookup(name string) (Op, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	op, ok := byName[key]

	return op, ok
}

// Parse is Lookup returning ErrUnknownGate for names outside the catalog.
func Parse(name string) (Op, error) {
	op, ok := Lookup(name)
	if !ok {
		return Op{}, fmt.Errorf("Parse(%q): %w", name, ErrUnknownGate)
	}

	return op, nil
}

// ParseList resolves every name in order; the first failure aborts.
func ParseList(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	for i, n := range names {
		op, err := Parse(n)
		if err != nil {
			return nil, fmt.Errorf("ParseList[%d]: %w", i, err)
		}
		ops = append(ops, op)
	}

	return ops, nil
}
