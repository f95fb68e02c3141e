package ui

import (
	"regexp"
	"strings"
)

var (
	imgTagRe    = regexp.MustCompile(`(?is)<img[^>]*>`)
	breakTagRe  = regexp.MustCompile(`(?is)</(p|div|h[1-6]|li|blockquote)>|<br\s*/?>`)
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	blankLineRe = regexp.MustCompile(`\n{3,}`)
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
)

// entityReplacer handles the common HTML entities; anything rarer is
// left as-is rather than pulling in a full HTML parser.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&apos;", "'",
	"&mdash;", "—",
	"&hellip;", "…",
)

// RenderHTML converts item HTML into plain terminal text. Block-level
// closing tags become line breaks so paragraph structure survives.
// Images become an [image] marker when showImages is enabled and are
// dropped entirely otherwise.
func RenderHTML(html string, showImages bool) string {
	s := html

	if showImages {
		s = imgTagRe.ReplaceAllString(s, "[image]")
	} else {
		s = imgTagRe.ReplaceAllString(s, "")
	}

	s = breakTagRe.ReplaceAllString(s, "\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)

	s = spaceRunRe.ReplaceAllString(s, " ")
	s = blankLineRe.ReplaceAllString(s, "\n\n")

	// Trim per-line leading space left over from stripped indentation
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
