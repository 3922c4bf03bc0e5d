package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/peamaeq/rowan/pkg/green"
)

// FuzzParseRoundTrip checks the two load-bearing invariants against
// arbitrary input: the token stream covers every byte exactly once, and
// the lowered tree reproduces the input byte-for-byte.
func FuzzParseRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"# Title\n\nSome text.\n",
		"- a\n- b\n\n1. c\n",
		"> quote\n> > nested\n",
		"```go\nfunc main() {}\n```\n",
		"```\nunclosed",
		"a *b* `c` \\* d\n",
		"---\n***\n___\n",
		"no trailing newline",
		"\r\n\r\n",
		"#\n##\n######x\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	parser := New()
	f.Fuzz(func(t *testing.T, input string) {
		content := []byte(input)

		spans := tokenize(content)
		pos := 0
		for i, sp := range spans {
			if sp.start != pos {
				t.Fatalf("span %d starts at %d, want %d", i, sp.start, pos)
			}
			if sp.end <= sp.start {
				t.Fatalf("span %d is empty or inverted: %d..%d", i, sp.start, sp.end)
			}
			pos = sp.end
		}
		if pos != len(content) {
			t.Fatalf("spans cover %d bytes, content has %d", pos, len(content))
		}

		root, err := parser.Parse(context.Background(), content)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got := treeText(root); got != input {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, input)
		}
		if int(root.TextLen()) != len(content) {
			t.Errorf("TextLen() = %d, want %d", root.TextLen(), len(content))
		}
	})
}

func treeText(el green.Element) string {
	switch v := el.(type) {
	case *green.Token:
		return v.Text()
	case *green.Node:
		var sb strings.Builder
		view := v.Children()
		for {
			child, ok := view.Next()
			if !ok {
				return sb.String()
			}
			sb.WriteString(treeText(child))
		}
	default:
		return ""
	}
}
