// Package text provides the offset, length, and range primitives used by
// the green tree. All quantities are byte-based.
package text

// Size is an unsigned byte count or byte offset within a source text.
type Size uint32

// SizeOf returns the Size of a string.
func SizeOf(s string) Size {
	return Size(len(s))
}
