package markdown

import (
	"strings"
	"testing"

	"github.com/peamaeq/rowan/pkg/green"
)

// checkCoverage asserts the span stream is contiguous, non-overlapping,
// and covers [0, contentLen).
func checkCoverage(t *testing.T, spans []span, contentLen int) {
	t.Helper()

	if contentLen == 0 {
		if len(spans) != 0 {
			t.Fatalf("empty content produced %d spans", len(spans))
		}
		return
	}
	if len(spans) == 0 {
		t.Fatal("non-empty content produced no spans")
	}
	if spans[0].start != 0 {
		t.Errorf("first span starts at %d, want 0", spans[0].start)
	}
	if last := spans[len(spans)-1]; last.end != contentLen {
		t.Errorf("last span ends at %d, want %d", last.end, contentLen)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].start != spans[i-1].end {
			t.Errorf("span %d starts at %d, previous ends at %d", i, spans[i].start, spans[i-1].end)
		}
	}
	for i, sp := range spans {
		if sp.end <= sp.start {
			t.Errorf("span %d is empty or inverted: %d..%d", i, sp.start, sp.end)
		}
	}
}

func TestTokenizeCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain text", "hello world"},
		{"no trailing newline", "# heading"},
		{"heading and paragraph", "# Title\n\nSome text here.\n"},
		{"nested blockquote", "> outer\n> > inner\n"},
		{"fenced code", "```go\nfunc main() {}\n```\n"},
		{"unclosed fence", "```\ncode forever"},
		{"lists", "- one\n- two\n  1. nested\n"},
		{"thematic breaks", "---\n* * *\n___\n"},
		{"escapes and emphasis", "a \\* literal *star* _under_\n"},
		{"crlf", "a\r\nb\r\n"},
		{"lone carriage returns", "a\rb\r"},
		{"bare markers", "#nospace\n-nospace\n123456789012. toolong\n"},
		{"long document", strings.Repeat("para text\n\n## h\n- item\n", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := tokenize([]byte(tt.input))
			checkCoverage(t, spans, len(tt.input))
		})
	}
}

func TestTokenizeClassification(t *testing.T) {
	t.Parallel()

	type tok struct {
		kind green.Kind
		text string
	}

	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			"atx heading",
			"# Hello\n",
			[]tok{
				{KindHeadingMarker, "#"},
				{KindWhitespace, " "},
				{KindText, "Hello"},
				{KindNewline, "\n"},
			},
		},
		{
			"bullet list item",
			"- item\n",
			[]tok{
				{KindListBullet, "-"},
				{KindWhitespace, " "},
				{KindText, "item"},
				{KindNewline, "\n"},
			},
		},
		{
			"ordered list item",
			"12) item",
			[]tok{
				{KindListNumber, "12)"},
				{KindWhitespace, " "},
				{KindText, "item"},
			},
		},
		{
			"blockquoted heading",
			"> # h\n",
			[]tok{
				{KindBlockquoteMarker, ">"},
				{KindWhitespace, " "},
				{KindHeadingMarker, "#"},
				{KindWhitespace, " "},
				{KindText, "h"},
				{KindNewline, "\n"},
			},
		},
		{
			"fenced code block",
			"```go\nx := 1\n```\n",
			[]tok{
				{KindCodeFence, "```"},
				{KindCodeFenceInfo, "go"},
				{KindNewline, "\n"},
				{KindText, "x := 1"},
				{KindNewline, "\n"},
				{KindCodeFence, "```"},
				{KindNewline, "\n"},
			},
		},
		{
			"thematic break",
			"---\n",
			[]tok{
				{KindBreakMarker, "---"},
				{KindNewline, "\n"},
			},
		},
		{
			"inline mix",
			"a *b* \\!c\n",
			[]tok{
				{KindText, "a "},
				{KindEmphasisMarker, "*"},
				{KindText, "b"},
				{KindEmphasisMarker, "*"},
				{KindText, " "},
				{KindEscapedChar, "\\!"},
				{KindText, "c"},
				{KindNewline, "\n"},
			},
		},
		{
			"crlf newline is one token",
			"a\r\nb",
			[]tok{
				{KindText, "a"},
				{KindNewline, "\r\n"},
				{KindText, "b"},
			},
		},
		{
			"backtick run",
			"``code``\n",
			[]tok{
				{KindBacktick, "``"},
				{KindText, "code"},
				{KindBacktick, "``"},
				{KindNewline, "\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []byte(tt.input)
			spans := tokenize(content)
			checkCoverage(t, spans, len(content))

			if len(spans) != len(tt.want) {
				for _, sp := range spans {
					t.Logf("got %s %q", KindName(sp.kind), content[sp.start:sp.end])
				}
				t.Fatalf("got %d spans, want %d", len(spans), len(tt.want))
			}
			for i, sp := range spans {
				got := string(content[sp.start:sp.end])
				if sp.kind != tt.want[i].kind || got != tt.want[i].text {
					t.Errorf("span %d = %s %q, want %s %q",
						i, KindName(sp.kind), got, KindName(tt.want[i].kind), tt.want[i].text)
				}
			}
		})
	}
}

func TestTokenizeSevenHashesIsText(t *testing.T) {
	t.Parallel()

	spans := tokenize([]byte("####### too deep\n"))
	checkCoverage(t, spans, len("####### too deep\n"))
	if spans[0].kind != KindText {
		t.Errorf("seven hashes classified as %s, want Text", KindName(spans[0].kind))
	}
}
