// Package schema owns the protocol document model.
//
// Ownership boundary:
// - the typed representation of protocol documents (interfaces, messages,
//   enums, args) shared by every compiler pass
// - loading documents from TOML and Wayland-style XML
// - document validation, precise to the offending element
//
// Documents are constructed once by a loader and never mutated afterwards.
package schema
