// Package langdetect detects the programming language of code content.
// It uses go-enry and is consumed by the tree inspector to annotate
// fenced code blocks that carry no info string.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no confident detection is possible.
const Unknown = "text"

// classifier candidates; keeping the set small improves both speed and
// confidence for the snippet-sized inputs we see in code blocks.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Rust", "C", "C++", "Java", "SQL", "JSON", "YAML", "HTML",
}

// Detect returns the detected language for code content, normalized to
// a lowercase identifier suitable for a Markdown info string. Returns
// Unknown when detection fails or confidence is low.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// detectByPattern short-circuits the classifier for a few unmistakable
// shapes that it tends to underrate on short snippets.
func detectByPattern(trimmed []byte) string {
	s := string(trimmed)

	if strings.HasPrefix(s, "package ") &&
		(strings.Contains(s, "func ") || strings.Contains(s, "import ")) {
		return "go"
	}
	if (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")) {
		if json := strings.Contains(s, "\":"); json || s == "{}" || s == "[]" {
			return "json"
		}
	}
	if strings.HasPrefix(s, "<!DOCTYPE") || strings.HasPrefix(s, "<html") {
		return "html"
	}
	return ""
}

func normalize(lang string) string {
	switch lang {
	case "":
		return Unknown
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(lang)
	}
}
