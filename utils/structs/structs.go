// Package structs declares the small set of generic capability interfaces
// shared across the wheel package, so that equality and cloning code does
// not need to special-case every concrete type.
package structs

// Equatable is implemented by types with a deep, field-by-field equality
// notion distinct from Go's built-in == (e.g. because they contain slices).
type Equatable[T any] interface {
	Equal(*T) bool
}

// Cloner is implemented by types that can produce an independent deep copy
// of themselves.
type Cloner[V any] interface {
	Clone() *V
}
