package green_test

import (
	"testing"

	"github.com/peamaeq/rowan/pkg/green"
	"github.com/peamaeq/rowan/pkg/text"
)

// Kind tags for a toy grammar. The library treats kinds as opaque, so
// tests just need distinct values.
const (
	kindBlock green.Kind = iota
	kindExpr
	kindLBrace
	kindRBrace
	kindIdent
	kindError
)

// blockNode builds the { EXPR } fixture used across the tests:
// Token("{"), Node(EXPR, "hello"), Token("}") with total length 7.
func blockNode(t *testing.T) *green.Node {
	t.Helper()

	expr := green.NewNode(kindExpr, []green.Element{
		green.NewToken(kindIdent, "hello"),
	})
	return green.NewNode(kindBlock, []green.Element{
		green.NewToken(kindLBrace, "{"),
		expr,
		green.NewToken(kindRBrace, "}"),
	})
}

func TestNewNodeOffsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		texts []string
	}{
		{"single child", []string{"abc"}},
		{"uniform lengths", []string{"ab", "cd", "ef"}},
		{"mixed lengths", []string{"a", "", "abcd", "xy"}},
		{"leading empty", []string{"", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := make([]green.Element, len(tt.texts))
			for i, s := range tt.texts {
				children[i] = green.NewToken(kindIdent, s)
			}
			node := green.NewNode(kindBlock, children)

			var want text.Size
			view := node.Children()
			for i := 0; ; i++ {
				slot, ok := view.NextSlot()
				if !ok {
					break
				}
				if slot.Offset() != want {
					t.Errorf("child %d offset = %d, want %d", i, slot.Offset(), want)
				}
				want += slot.Element().TextLen()
			}
			if node.TextLen() != want {
				t.Errorf("TextLen() = %d, want %d", node.TextLen(), want)
			}
			if node.NumChildren() != len(tt.texts) {
				t.Errorf("NumChildren() = %d, want %d", node.NumChildren(), len(tt.texts))
			}
		})
	}
}

func TestNewNodeEmpty(t *testing.T) {
	t.Parallel()

	node := green.NewNode(kindBlock, nil)
	if node.TextLen() != 0 {
		t.Errorf("TextLen() = %d, want 0", node.TextLen())
	}
	view := node.Children()
	if view.Len() != 0 {
		t.Errorf("Children().Len() = %d, want 0", view.Len())
	}
	if _, ok := view.Next(); ok {
		t.Error("empty node's children view should be immediately exhausted")
	}
}

func TestChildAtRange(t *testing.T) {
	t.Parallel()

	node := blockNode(t)
	if node.TextLen() != 7 {
		t.Fatalf("fixture TextLen() = %d, want 7", node.TextLen())
	}

	tests := []struct {
		name       string
		query      text.Range
		wantIdx    int
		wantOffset text.Size
		wantOK     bool
	}{
		{"inside expr", text.NewRange(1, 6), 1, 1, true},
		{"whole first token", text.NewRange(0, 1), 0, 0, true},
		{"whole last token", text.NewRange(6, 7), 2, 6, true},
		{"partial expr", text.NewRange(2, 4), 1, 1, true},
		{"spans all children", text.NewRange(0, 7), 0, 0, false},
		{"straddles brace and expr", text.NewRange(0, 2), 0, 0, false},
		{"straddles expr and brace", text.NewRange(5, 7), 0, 0, false},
		{"outside node", text.NewRange(8, 9), 0, 0, false},
		// An empty query on the boundary between two children attaches
		// to the preceding child.
		{"empty on brace/expr boundary", text.NewRange(1, 1), 0, 0, true},
		{"empty on expr/brace boundary", text.NewRange(6, 6), 1, 1, true},
		{"empty at node start", text.NewRange(0, 0), 0, 0, true},
		{"empty at node end", text.NewRange(7, 7), 2, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, offset, el, ok := node.ChildAtRange(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("ChildAtRange(%v) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if idx != tt.wantIdx || offset != tt.wantOffset {
				t.Errorf("ChildAtRange(%v) = (%d, %d), want (%d, %d)",
					tt.query, idx, offset, tt.wantIdx, tt.wantOffset)
			}
			if el == nil {
				t.Error("ChildAtRange returned nil element with ok=true")
			}
		})
	}
}

func TestChildAtRangeReturnsChildElement(t *testing.T) {
	t.Parallel()

	node := blockNode(t)
	_, _, el, ok := node.ChildAtRange(text.NewRange(1, 6))
	if !ok {
		t.Fatal("expected a covering child")
	}
	child, isNode := el.(*green.Node)
	if !isNode {
		t.Fatalf("expected the EXPR node, got %T", el)
	}
	if child.Kind() != kindExpr {
		t.Errorf("child.Kind() = %d, want %d", child.Kind(), kindExpr)
	}
}

func TestChildAtRangeEmptyNode(t *testing.T) {
	t.Parallel()

	node := green.NewNode(kindBlock, nil)
	if _, _, _, ok := node.ChildAtRange(text.NewRange(0, 0)); ok {
		t.Error("empty node should have no covering child")
	}
}

func TestReplaceChild(t *testing.T) {
	t.Parallel()

	original := blockNode(t)
	origChildren := original.Children().Collect()

	replacement := green.NewToken(kindError, "")
	updated := original.ReplaceChild(1, replacement)

	if updated.TextLen() != 2 {
		t.Errorf("updated TextLen() = %d, want 2", updated.TextLen())
	}
	if updated.Kind() != original.Kind() {
		t.Errorf("updated Kind() = %d, want %d", updated.Kind(), original.Kind())
	}

	// Untouched children are shared by reference, not copied.
	newChildren := updated.Children().Collect()
	if newChildren[0] != origChildren[0] {
		t.Error("child 0 should be shared by reference")
	}
	if newChildren[2] != origChildren[2] {
		t.Error("child 2 should be shared by reference")
	}
	if newChildren[1] != green.Element(replacement) {
		t.Error("child 1 should be the replacement element")
	}

	// Offsets are recomputed for the shorter child.
	wantOffsets := []text.Size{0, 1, 1}
	view := updated.Children()
	for i, want := range wantOffsets {
		slot, ok := view.NextSlot()
		if !ok {
			t.Fatalf("missing child %d", i)
		}
		if slot.Offset() != want {
			t.Errorf("child %d offset = %d, want %d", i, slot.Offset(), want)
		}
	}

	// The original is a persistent value: untouched and still valid.
	if original.TextLen() != 7 {
		t.Errorf("original TextLen() changed to %d", original.TextLen())
	}
	if _, _, _, ok := original.ChildAtRange(text.NewRange(1, 6)); !ok {
		t.Error("original should still resolve its EXPR child")
	}
}

func TestReplaceChildPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	node := blockNode(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	node.ReplaceChild(3, green.NewToken(kindError, ""))
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	a := blockNode(t)
	b := blockNode(t)

	if a == b {
		t.Fatal("fixtures should be distinct allocations")
	}
	if !a.Equal(b) {
		t.Error("separately built equal trees should compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("structurally equal nodes should hash equal")
	}
	if a.Ptr() == b.Ptr() {
		t.Error("distinct allocations should have distinct identity probes")
	}

	// A one-token difference breaks equality.
	c := a.ReplaceChild(0, green.NewToken(kindLBrace, "("))
	if a.Equal(c) {
		t.Error("nodes with different children should not compare equal")
	}
}

func TestTokenEquality(t *testing.T) {
	t.Parallel()

	a := green.NewToken(kindIdent, "hello")
	b := green.NewToken(kindIdent, "hello")
	c := green.NewToken(kindIdent, "world")
	d := green.NewToken(kindError, "hello")

	if !a.Equal(b) {
		t.Error("same kind and text should compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal tokens should hash equal")
	}
	if a.Ptr() == b.Ptr() {
		t.Error("distinct allocations should have distinct identity probes")
	}
	if a.Equal(c) {
		t.Error("different text should not compare equal")
	}
	if a.Equal(d) {
		t.Error("different kind should not compare equal")
	}
}

func TestElementsEqualMixed(t *testing.T) {
	t.Parallel()

	node := green.NewNode(kindExpr, nil)
	tok := green.NewToken(kindIdent, "")
	if green.ElementsEqual(node, tok) {
		t.Error("a node should never equal a token")
	}
	if green.ElementsEqual(tok, node) {
		t.Error("a token should never equal a node")
	}
}

func BenchmarkChildAtRange(b *testing.B) {
	children := make([]green.Element, 64)
	for i := range children {
		children[i] = green.NewToken(kindIdent, "abcdefgh")
	}
	node := green.NewNode(kindBlock, children)
	query := text.At(node.TextLen()/2, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, ok := node.ChildAtRange(query); !ok {
			b.Fatal("expected a covering child")
		}
	}
}

func BenchmarkReplaceChild(b *testing.B) {
	children := make([]green.Element, 64)
	for i := range children {
		children[i] = green.NewToken(kindIdent, "abcdefgh")
	}
	node := green.NewNode(kindBlock, children)
	repl := green.NewToken(kindIdent, "x")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		node.ReplaceChild(32, repl)
	}
}
