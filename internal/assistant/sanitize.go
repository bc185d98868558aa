package assistant

import (
	"regexp"
	"strings"
)

// The completion API is instructed to answer in plain text, but that is
// advisory only. Sanitize is the safety net: a best-effort regex cleanup,
// not a markup parser. Nested or malformed markup may survive it.
var (
	reBold          = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reBoldAlt       = regexp.MustCompile(`__(.*?)__`)
	reItalic        = regexp.MustCompile(`\*(.*?)\*`)
	reItalicAlt     = regexp.MustCompile(`_(.*?)_`)
	reHeader        = regexp.MustCompile(`#{1,6}\s*(.*)`)
	reFencedCode    = regexp.MustCompile("```[\\s\\S]*?```")
	reInlineCode    = regexp.MustCompile("`(.*?)`")
	reLink          = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reStrikethrough = regexp.MustCompile(`~~(.*?)~~`)
	reBlankLines    = regexp.MustCompile(`\n{3,}`)
)

// Sanitize strips markdown constructs from model output: emphasis and header
// markers are unwrapped, fenced code blocks are dropped entirely, inline code
// and strikethrough markers are removed, links collapse to their label, and
// runs of blank lines shrink to one.
func Sanitize(text string) string {
	if text == "" {
		return text
	}

	text = reBold.ReplaceAllString(text, "$1")
	text = reBoldAlt.ReplaceAllString(text, "$1")

	text = reItalic.ReplaceAllString(text, "$1")
	text = reItalicAlt.ReplaceAllString(text, "$1")

	text = reHeader.ReplaceAllString(text, "$1")

	text = reFencedCode.ReplaceAllString(text, "")
	text = reInlineCode.ReplaceAllString(text, "$1")

	text = reLink.ReplaceAllString(text, "$1")

	text = reStrikethrough.ReplaceAllString(text, "$1")

	text = reBlankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
