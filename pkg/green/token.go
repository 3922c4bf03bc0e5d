package green

import (
	"fmt"
	"unsafe"

	"github.com/peamaeq/rowan/pkg/text"
)

// Token is an immutable leaf of the green tree: a kind tag plus the
// exact source text it covers. Tokens are freely shareable across trees
// and goroutines.
type Token struct {
	kind Kind
	text string
	hash uint64
}

// NewToken creates a token of the given kind covering the given text.
func NewToken(kind Kind, txt string) *Token {
	return &Token{
		kind: kind,
		text: txt,
		hash: hashToken(kind, txt),
	}
}

// Kind returns the token's kind tag.
func (t *Token) Kind() Kind {
	return t.kind
}

// Text returns the token's source text.
func (t *Token) Text() string {
	return t.text
}

// TextLen returns the length of the token's text in bytes.
func (t *Token) TextLen() text.Size {
	return text.SizeOf(t.text)
}

// Hash returns the token's structural hash.
func (t *Token) Hash() uint64 {
	return t.hash
}

// Equal reports structural equality: same kind and same text,
// regardless of allocation identity.
func (t *Token) Equal(other *Token) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.hash == other.hash && t.kind == other.kind && t.text == other.text
}

// Ptr returns the token's allocation identity. Distinct from structural
// equality: two structurally equal tokens may have different Ptr values.
// Use only as a key for identity-based memoization.
func (t *Token) Ptr() uintptr {
	return uintptr(unsafe.Pointer(t))
}

func (t *Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.kind, t.text)
}

func (t *Token) element() {}
