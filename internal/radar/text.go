package radar

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://[^\s)"']+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks drops markdown link targets (keeping their text) and bare
// URLs from input.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// FirstURL returns the first HTTP(S) URL substring in text, or "".
func FirstURL(text string) string {
	return urlPattern.FindString(text)
}

// MarkdownToText flattens markdown (what the reader API returns) into a
// single line of plain text.
func MarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := htmlTagPattern.ReplaceAllString(string(output), " ")
	return strings.Join(strings.Fields(stripped), " ")
}
