package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// It is used to reduce memory usage for frequently repeated strings: here,
// the file paths FileInfoCache is keyed on, which tend to be shared across
// many edges in a large dependency graph.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from s, interning it.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}
