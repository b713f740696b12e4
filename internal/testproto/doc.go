// Package testproto is the generated widgetry protocol the compiler tests
// run against end to end: a checked-in generated file, the bound types, and
// dispatch over a live object table.
//
// Regenerate widgetry.gen.go after editing widgetry.toml or bindings.toml.
package testproto

//go:generate go run github.com/danmuck/wiregen/cmd/wiregen -protocol widgetry.toml -bindings bindings.toml -out widgetry.gen.go
