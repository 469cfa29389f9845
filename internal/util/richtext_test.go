package util

import (
	"testing"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{name: "plain text", fragment: "hello world", expected: "hello world"},
		{name: "inline tags", fragment: "<p>hello <strong>bold</strong> world</p>", expected: "hello bold world"},
		{name: "block boundaries separate words", fragment: "<p>first</p><p>second</p>", expected: "first second"},
		{name: "nested lists", fragment: "<ul><li>one</li><li>two</li></ul>", expected: "one two"},
		{name: "script dropped", fragment: "<p>safe</p><script>alert(1)</script>", expected: "safe"},
		{name: "style dropped", fragment: "<style>p{color:red}</style><p>text</p>", expected: "text"},
		{name: "whitespace collapsed", fragment: "<p>  a \n b  </p>", expected: "a b"},
		{name: "empty fragment", fragment: "", expected: ""},
		{name: "unclosed tag", fragment: "<p>dangling", expected: "dangling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripHTML(tt.fragment); got != tt.expected {
				t.Fatalf("StripHTML(%q) = %q, want %q", tt.fragment, got, tt.expected)
			}
		})
	}
}

func TestCountChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "ascii", text: "hello", expected: 5},
		{name: "empty", text: "", expected: 0},
		{name: "multi-byte runes", text: "héllo", expected: 5},
		{name: "cjk", text: "筆記", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CountChars(tt.text); got != tt.expected {
				t.Fatalf("CountChars(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}
