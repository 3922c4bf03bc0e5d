package markdown

import "github.com/peamaeq/rowan/pkg/green"

// span is a classified byte range produced by the tokenizer. Spans are
// contiguous, non-overlapping, and cover [0, len(content)).
type span struct {
	kind  green.Kind
	start int
	end   int
}

// tokenizer performs a single-pass, line-oriented tokenization of
// Markdown content. It classifies line-start constructs (heading
// markers, list bullets, blockquote markers, fences) and a small set of
// inline constructs; everything else is text. Inside a fenced code
// block every line is a single text token until the closing fence.
type tokenizer struct {
	content []byte
	spans   []span
	pos     int

	// Fence state: nonzero fenceChar means we are inside a fenced
	// code block opened with fenceLen repetitions of fenceChar.
	fenceChar byte
	fenceLen  int
}

// tokenize classifies content into a contiguous span stream.
func tokenize(content []byte) []span {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4
	t := &tokenizer{
		content: content,
		spans:   make([]span, 0, len(content)/initialCapacityDivisor),
	}
	for t.pos < len(t.content) {
		t.tokenizeLine()
	}
	return t.spans
}

// emit records a span from the current position up to end and advances.
func (t *tokenizer) emit(kind green.Kind, end int) {
	if end <= t.pos {
		return
	}
	t.spans = append(t.spans, span{kind: kind, start: t.pos, end: end})
	t.pos = end
}

// lineEnd returns the index of the first newline byte at or after the
// current position, or len(content).
func (t *tokenizer) lineEnd() int {
	i := t.pos
	for i < len(t.content) && t.content[i] != '\n' && t.content[i] != '\r' {
		i++
	}
	return i
}

func (t *tokenizer) tokenizeLine() {
	if t.fenceChar != 0 {
		t.tokenizeFencedLine()
		return
	}
	t.consumeIndentation()
	t.tokenizeLineStart()
}

// tokenizeLineStart handles block-level constructs at the (possibly
// indented) start of a line, then falls back to inline content.
// Blockquote markers recurse so that "> # heading" still classifies the
// heading marker.
func (t *tokenizer) tokenizeLineStart() {
	if t.pos >= len(t.content) {
		return
	}

	switch t.content[t.pos] {
	case '\n', '\r':
		t.consumeNewline()
		return
	case '#':
		if t.tryHeadingMarker() {
			t.tokenizeInline()
			return
		}
	case '>':
		t.consumeBlockquoteMarker()
		t.consumeIndentation()
		t.tokenizeLineStart()
		return
	case '-', '+', '*':
		if t.isThematicBreakLine(t.content[t.pos]) {
			t.consumeThematicBreak()
			return
		}
		if t.tryListBullet() {
			t.tokenizeInline()
			return
		}
	case '_':
		if t.isThematicBreakLine('_') {
			t.consumeThematicBreak()
			return
		}
	case '`', '~':
		if t.tryCodeFence() {
			return
		}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if t.tryListNumber() {
			t.tokenizeInline()
			return
		}
	}

	t.tokenizeInline()
}

// consumeIndentation emits leading spaces and tabs as whitespace.
func (t *tokenizer) consumeIndentation() {
	i := t.pos
	for i < len(t.content) && (t.content[i] == ' ' || t.content[i] == '\t') {
		i++
	}
	t.emit(KindWhitespace, i)
}

// consumeNewline emits a newline token; "\r\n" is a single token.
func (t *tokenizer) consumeNewline() {
	if t.pos >= len(t.content) {
		return
	}
	if t.content[t.pos] == '\r' && t.pos+1 < len(t.content) && t.content[t.pos+1] == '\n' {
		t.emit(KindNewline, t.pos+2)
		return
	}
	t.emit(KindNewline, t.pos+1)
}

// tryHeadingMarker consumes an ATX heading marker: one to six '#'
// followed by whitespace or end of line.
func (t *tokenizer) tryHeadingMarker() bool {
	i := t.pos
	for i < len(t.content) && t.content[i] == '#' {
		i++
	}
	count := i - t.pos
	if count > 6 {
		return false
	}
	if i < len(t.content) && t.content[i] != ' ' && t.content[i] != '\t' &&
		t.content[i] != '\n' && t.content[i] != '\r' {
		return false
	}
	t.emit(KindHeadingMarker, i)
	t.consumeIndentation()
	return true
}

// consumeBlockquoteMarker emits a single '>' and its optional
// following space.
func (t *tokenizer) consumeBlockquoteMarker() {
	t.emit(KindBlockquoteMarker, t.pos+1)
	if t.pos < len(t.content) && t.content[t.pos] == ' ' {
		t.emit(KindWhitespace, t.pos+1)
	}
}

// isThematicBreakLine reports whether the rest of the line is three or
// more of marker, interspersed only with spaces and tabs.
func (t *tokenizer) isThematicBreakLine(marker byte) bool {
	count := 0
	for i := t.pos; i < len(t.content); i++ {
		switch t.content[i] {
		case marker:
			count++
		case ' ', '\t':
		case '\n', '\r':
			return count >= 3
		default:
			return false
		}
	}
	return count >= 3
}

// consumeThematicBreak emits the whole break line as one marker token.
func (t *tokenizer) consumeThematicBreak() {
	t.emit(KindBreakMarker, t.lineEnd())
	t.consumeNewline()
}

// tryListBullet consumes '-', '+', or '*' followed by whitespace.
func (t *tokenizer) tryListBullet() bool {
	next := t.pos + 1
	if next >= len(t.content) {
		return false
	}
	if t.content[next] != ' ' && t.content[next] != '\t' {
		return false
	}
	t.emit(KindListBullet, next)
	t.consumeIndentation()
	return true
}

// tryListNumber consumes up to nine digits, a '.' or ')' delimiter, and
// trailing whitespace.
func (t *tokenizer) tryListNumber() bool {
	i := t.pos
	for i < len(t.content) && t.content[i] >= '0' && t.content[i] <= '9' {
		i++
	}
	const maxDigits = 9
	if i-t.pos > maxDigits {
		return false
	}
	if i >= len(t.content) || (t.content[i] != '.' && t.content[i] != ')') {
		return false
	}
	i++
	if i < len(t.content) && t.content[i] != ' ' && t.content[i] != '\t' &&
		t.content[i] != '\n' && t.content[i] != '\r' {
		return false
	}
	t.emit(KindListNumber, i)
	t.consumeIndentation()
	return true
}

// tryCodeFence consumes a fence of three or more backticks or tildes,
// an optional info string, and enters fenced mode.
func (t *tokenizer) tryCodeFence() bool {
	marker := t.content[t.pos]
	i := t.pos
	for i < len(t.content) && t.content[i] == marker {
		i++
	}
	runLen := i - t.pos
	if runLen < 3 {
		return false
	}
	t.emit(KindCodeFence, i)

	if info := t.lineEnd(); info > t.pos {
		t.emit(KindCodeFenceInfo, info)
	}
	t.consumeNewline()

	t.fenceChar = marker
	t.fenceLen = runLen
	return true
}

// tokenizeFencedLine handles one line inside a fenced code block:
// either the closing fence or a raw text line.
func (t *tokenizer) tokenizeFencedLine() {
	if t.tryClosingFence() {
		return
	}
	t.emit(KindText, t.lineEnd())
	t.consumeNewline()
}

// tryClosingFence matches an optionally indented run of the opening
// fence character, at least as long as the opening run, followed only
// by whitespace.
func (t *tokenizer) tryClosingFence() bool {
	i := t.pos
	indent := 0
	const maxFenceIndent = 3
	for i < len(t.content) && t.content[i] == ' ' && indent < maxFenceIndent {
		i++
		indent++
	}
	run := i
	for run < len(t.content) && t.content[run] == t.fenceChar {
		run++
	}
	if run-i < t.fenceLen {
		return false
	}
	trail := run
	for trail < len(t.content) && (t.content[trail] == ' ' || t.content[trail] == '\t') {
		trail++
	}
	if trail < len(t.content) && t.content[trail] != '\n' && t.content[trail] != '\r' {
		return false
	}

	t.emit(KindWhitespace, i)
	t.emit(KindCodeFence, run)
	t.emit(KindWhitespace, trail)
	t.consumeNewline()
	t.fenceChar = 0
	t.fenceLen = 0
	return true
}

// tokenizeInline classifies the rest of the line: escapes, backtick
// runs, emphasis marker runs, and text in between.
func (t *tokenizer) tokenizeInline() {
	for t.pos < len(t.content) {
		switch c := t.content[t.pos]; c {
		case '\n', '\r':
			t.consumeNewline()
			return
		case '\\':
			if t.pos+1 < len(t.content) && isASCIIPunct(t.content[t.pos+1]) {
				t.emit(KindEscapedChar, t.pos+2)
			} else {
				t.emit(KindText, t.pos+1)
			}
		case '`':
			t.emit(KindBacktick, t.runEnd('`'))
		case '*', '_':
			t.emit(KindEmphasisMarker, t.runEnd(c))
		default:
			t.emit(KindText, t.textRunEnd())
		}
	}
}

// runEnd returns the end of the run of c starting at the current position.
func (t *tokenizer) runEnd(c byte) int {
	i := t.pos
	for i < len(t.content) && t.content[i] == c {
		i++
	}
	return i
}

// textRunEnd returns the end of a plain text run: everything up to the
// next inline-special byte or end of line.
func (t *tokenizer) textRunEnd() int {
	i := t.pos + 1
	for i < len(t.content) {
		switch t.content[i] {
		case '\n', '\r', '\\', '`', '*', '_':
			return i
		}
		i++
	}
	return i
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
