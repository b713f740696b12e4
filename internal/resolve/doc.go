// Package resolve binds schema interfaces to the Go types implementing
// them and produces the read-only context the generator passes consume.
//
// Resolution is pure: the same documents and bindings always yield the same
// context or the same error.
package resolve
