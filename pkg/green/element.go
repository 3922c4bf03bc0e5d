package green

import "github.com/peamaeq/rowan/pkg/text"

// Element is a node-or-token reference: the two concrete types are
// *Node and *Token. The interface is sealed; no other implementations
// exist.
type Element interface {
	// Kind returns the element's grammar-kind tag.
	Kind() Kind

	// TextLen returns the length in bytes of the text the element covers.
	TextLen() text.Size

	// Hash returns the element's structural hash.
	Hash() uint64

	element()
}

// ElementsEqual reports structural equality between two elements.
// Two elements are equal when they are the same concrete type and
// compare equal structurally; a node never equals a token.
func ElementsEqual(a, b Element) bool {
	switch av := a.(type) {
	case *Node:
		bv, ok := b.(*Node)
		return ok && av.Equal(bv)
	case *Token:
		bv, ok := b.(*Token)
		return ok && av.Equal(bv)
	default:
		return false
	}
}
