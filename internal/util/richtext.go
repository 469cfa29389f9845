package util

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// StripHTML extracts the visible text of a rich-text HTML fragment. Script
// and style contents are dropped, and runs of whitespace collapse to a single
// space so block boundaries still separate words.
func StripHTML(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// html.Parse is tolerant of malformed markup; a read error cannot
		// happen with a strings.Reader, so fall back to the raw input.
		return strings.TrimSpace(fragment)
	}

	var builder strings.Builder

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			builder.WriteString(node.Data)
		case html.ElementNode:
			if node.Data == "script" || node.Data == "style" {
				return
			}
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}

		if node.Type == html.ElementNode {
			builder.WriteByte(' ')
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(builder.String()), " ")
}

// CountChars returns the number of characters in the text, counting runes
// rather than bytes so multi-byte characters count once.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}
