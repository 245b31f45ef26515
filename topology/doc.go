// Package topology resolves an entanglement selection into the layer kind
// and param overrides the composition engine should use.
//
// Resolution table:
//
//	linear          → base kind, {}
//	reverse_linear  → base kind, {wire_reverse: true}
//	circular        → base kind, {circular: true}
//	full            → dense kind, {}
//
// An Entanglement is a tagged variant: ByName(topology) goes through the
// table, Direct(kind) hands a layer kind through untouched. Which arm is in
// use is decided by construction, never by inspecting the value.
package topology
