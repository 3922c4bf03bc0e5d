package langdetect_test

import (
	"testing"

	"github.com/peamaeq/rowan/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "shebang bash",
			content:  "#!/bin/bash\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang python",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: "python",
		},
		{
			name:     "go code",
			content:  "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}",
			expected: "go",
		},
		{
			name:     "json object",
			content:  `{"key": "value", "number": 123}`,
			expected: "json",
		},
		{
			name:     "empty json object",
			content:  "{}",
			expected: "json",
		},
		{
			name:     "html document",
			content:  "<!DOCTYPE html>\n<html><body></body></html>",
			expected: "html",
		},
		{
			name:     "empty content",
			content:  "",
			expected: langdetect.Unknown,
		},
		{
			name:     "whitespace only",
			content:  "   \n\t\n",
			expected: langdetect.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := langdetect.Detect([]byte(tt.content))
			if got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	content := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		langdetect.Detect(content)
	}
}
