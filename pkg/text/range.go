package text

import "fmt"

// Range is a half-open byte range [Start, End) in a source text.
type Range struct {
	// Start is the byte offset where the range begins (inclusive).
	Start Size

	// End is the byte offset where the range ends (exclusive).
	End Size
}

// NewRange creates a range from start and end offsets.
// Panics if end < start.
func NewRange(start, end Size) Range {
	if end < start {
		panic(fmt.Sprintf("text: invalid range %d..%d", start, end))
	}
	return Range{Start: start, End: end}
}

// At creates a range starting at offset with the given length.
func At(offset, length Size) Range {
	return Range{Start: offset, End: offset + length}
}

// Len returns the length of the range in bytes.
func (r Range) Len() Size {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset Size) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange returns true if other lies entirely within this range.
// An empty range positioned on either boundary is contained.
func (r Range) ContainsRange(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Ordering reports the three-way relation between r and other:
// -1 if r lies wholly before other, +1 if r lies wholly after other,
// and 0 if the two ranges overlap or one contains the other.
// A zero-length range on the boundary between two adjacent ranges
// orders after the left range and before the right range.
func (r Range) Ordering(other Range) int {
	switch {
	case r.End <= other.Start:
		return -1
	case other.End <= r.Start:
		return 1
	default:
		return 0
	}
}

// String returns the range in start..end form.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
