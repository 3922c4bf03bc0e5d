package green

import "github.com/peamaeq/rowan/pkg/text"

// Child is one slot of a node: a node-or-token element plus that
// element's byte offset relative to the parent's start. Slots are
// value types; copying a slot shares the underlying element.
type Child struct {
	offset text.Size
	elem   Element
}

// Offset returns the child's byte offset relative to its parent's start.
func (c Child) Offset() text.Size {
	return c.offset
}

// Element returns the child as a node-or-token reference.
func (c Child) Element() Element {
	return c.elem
}

// Range returns the child's byte range relative to its parent's start.
func (c Child) Range() text.Range {
	return text.At(c.offset, c.elem.TextLen())
}

// AsNode returns the child as a node, or false if it is a token.
func (c Child) AsNode() (*Node, bool) {
	n, ok := c.elem.(*Node)
	return n, ok
}

// AsToken returns the child as a token, or false if it is a node.
func (c Child) AsToken() (*Token, bool) {
	t, ok := c.elem.(*Token)
	return t, ok
}
