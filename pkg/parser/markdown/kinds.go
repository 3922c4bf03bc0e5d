package markdown

import "github.com/peamaeq/rowan/pkg/green"

// Kind values for the Markdown grammar. Node kinds and token kinds
// share the green.Kind space; the green library treats all of them as
// opaque tags.
const (
	// Block-level node kinds.
	KindDocument green.Kind = iota
	KindParagraph
	KindHeading
	KindList
	KindListItem
	KindBlockquote
	KindCodeBlock
	KindThematicBreak
	KindHTMLBlock

	// Token kinds covering every byte of the source.
	KindText
	KindWhitespace
	KindNewline
	KindHeadingMarker    // '#', '##', etc.
	KindListBullet       // '-', '+', '*'
	KindListNumber       // '1.', '2)', etc.
	KindBlockquoteMarker // '>'
	KindCodeFence        // ``` or ~~~ fence sequence
	KindCodeFenceInfo    // info string portion of a fence line
	KindEmphasisMarker   // '*' or '_' runs
	KindBacktick         // inline code backtick sequences
	KindEscapedChar      // '\' + char
	KindBreakMarker      // '---', '***' thematic break line
	KindOther
)

var kindNames = map[green.Kind]string{
	KindDocument:         "Document",
	KindParagraph:        "Paragraph",
	KindHeading:          "Heading",
	KindList:             "List",
	KindListItem:         "ListItem",
	KindBlockquote:       "Blockquote",
	KindCodeBlock:        "CodeBlock",
	KindThematicBreak:    "ThematicBreak",
	KindHTMLBlock:        "HTMLBlock",
	KindText:             "Text",
	KindWhitespace:       "Whitespace",
	KindNewline:          "Newline",
	KindHeadingMarker:    "HeadingMarker",
	KindListBullet:       "ListBullet",
	KindListNumber:       "ListNumber",
	KindBlockquoteMarker: "BlockquoteMarker",
	KindCodeFence:        "CodeFence",
	KindCodeFenceInfo:    "CodeFenceInfo",
	KindEmphasisMarker:   "EmphasisMarker",
	KindBacktick:         "Backtick",
	KindEscapedChar:      "EscapedChar",
	KindBreakMarker:      "BreakMarker",
	KindOther:            "Other",
}

// KindName returns a human-readable name for a Markdown kind.
// Unknown kinds render as "Unknown".
func KindName(k green.Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsBlockKind returns true for kinds that label interior (block-level)
// nodes rather than tokens.
func IsBlockKind(k green.Kind) bool {
	switch k {
	case KindDocument, KindParagraph, KindHeading, KindList, KindListItem,
		KindBlockquote, KindCodeBlock, KindThematicBreak, KindHTMLBlock:
		return true
	default:
		return false
	}
}
