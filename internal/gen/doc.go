// Package gen compiles resolved protocol documents into Go source.
//
// Ownership boundary:
// - identifier derivation from schema names
// - the argument codec rules: decode/encode statements, parameter types,
//   and trace fragments per wire type
// - the interface compiler: contracts, event methods, enum types
// - the dispatch compiler: per-interface and protocol-level entry points
// - source emission and formatting
//
// Generation is deterministic: the same context always renders the same
// bytes. All opcodes, versions, and trace strings are baked into the
// output; generated code performs no schema lookup.
package gen
