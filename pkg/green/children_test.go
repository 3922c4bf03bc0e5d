package green_test

import (
	"testing"

	"github.com/peamaeq/rowan/pkg/green"
)

func tokenNode(texts ...string) *green.Node {
	children := make([]green.Element, len(texts))
	for i, s := range texts {
		children[i] = green.NewToken(kindIdent, s)
	}
	return green.NewNode(kindBlock, children)
}

func TestChildrenIndependentViews(t *testing.T) {
	t.Parallel()

	node := tokenNode("a", "b", "c")

	first := node.Children()
	second := node.Children()

	got := first.Collect()
	if len(got) != 3 {
		t.Fatalf("first view collected %d elements, want 3", len(got))
	}

	// Exhausting the first view must not affect the second.
	if second.Len() != 3 {
		t.Errorf("second view Len() = %d, want 3", second.Len())
	}
	again := second.Collect()
	for i := range got {
		if got[i] != again[i] {
			t.Errorf("views disagree at index %d", i)
		}
	}
}

func TestChildrenDoubleEnded(t *testing.T) {
	t.Parallel()

	node := tokenNode("a", "b", "c", "d")

	forward := node.Children()
	var front []green.Element
	for {
		el, ok := forward.Next()
		if !ok {
			break
		}
		front = append(front, el)
	}

	backward := node.Children()
	var back []green.Element
	for {
		el, ok := backward.NextBack()
		if !ok {
			break
		}
		back = append(back, el)
	}

	if len(front) != len(back) {
		t.Fatalf("forward yielded %d, backward yielded %d", len(front), len(back))
	}
	for i := range front {
		if front[i] != back[len(back)-1-i] {
			t.Errorf("forward[%d] != reversed backward[%d]", i, i)
		}
	}
}

func TestChildrenMixedEnds(t *testing.T) {
	t.Parallel()

	node := tokenNode("a", "b", "c")
	view := node.Children()

	el, ok := view.Next()
	if !ok {
		t.Fatal("expected front element")
	}
	if tok := el.(*green.Token); tok.Text() != "a" {
		t.Errorf("front = %q, want %q", tok.Text(), "a")
	}

	el, ok = view.NextBack()
	if !ok {
		t.Fatal("expected back element")
	}
	if tok := el.(*green.Token); tok.Text() != "c" {
		t.Errorf("back = %q, want %q", tok.Text(), "c")
	}

	if view.Len() != 1 {
		t.Errorf("Len() = %d, want 1", view.Len())
	}

	el, ok = view.Next()
	if !ok {
		t.Fatal("expected middle element")
	}
	if tok := el.(*green.Token); tok.Text() != "b" {
		t.Errorf("middle = %q, want %q", tok.Text(), "b")
	}
}

func TestChildrenFused(t *testing.T) {
	t.Parallel()

	node := tokenNode("a")
	view := node.Children()

	if _, ok := view.Next(); !ok {
		t.Fatal("expected one element")
	}
	for i := 0; i < 3; i++ {
		if _, ok := view.Next(); ok {
			t.Fatal("exhausted view yielded an element from the front")
		}
		if _, ok := view.NextBack(); ok {
			t.Fatal("exhausted view yielded an element from the back")
		}
	}
	if view.Len() != 0 {
		t.Errorf("exhausted view Len() = %d, want 0", view.Len())
	}
}

func TestChildrenSlotOffsets(t *testing.T) {
	t.Parallel()

	node := tokenNode("ab", "cde", "f")
	view := node.Children()

	wantOffsets := []uint32{0, 2, 5}
	for i, want := range wantOffsets {
		slot, ok := view.NextSlot()
		if !ok {
			t.Fatalf("missing slot %d", i)
		}
		if uint32(slot.Offset()) != want {
			t.Errorf("slot %d offset = %d, want %d", i, slot.Offset(), want)
		}
		if slot.Range().Len() != slot.Element().TextLen() {
			t.Errorf("slot %d range length disagrees with element length", i)
		}
	}
}

func TestChildSlotDiscrimination(t *testing.T) {
	t.Parallel()

	inner := green.NewNode(kindExpr, []green.Element{green.NewToken(kindIdent, "x")})
	node := green.NewNode(kindBlock, []green.Element{
		green.NewToken(kindLBrace, "{"),
		inner,
	})

	view := node.Children()

	slot, _ := view.NextSlot()
	if _, ok := slot.AsToken(); !ok {
		t.Error("first slot should discriminate as a token")
	}
	if _, ok := slot.AsNode(); ok {
		t.Error("first slot should not discriminate as a node")
	}

	slot, _ = view.NextSlot()
	n, ok := slot.AsNode()
	if !ok {
		t.Fatal("second slot should discriminate as a node")
	}
	if n != inner {
		t.Error("discriminated node should be the original child by reference")
	}
}
