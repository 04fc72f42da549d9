// Package ingestion turns uploaded resume documents into the cleaned text
// the extraction pipeline consumes. It normalizes PDF extraction artifacts,
// promotes section headings to markdown form, and unifies bullet markers.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	// cidRe matches CID placeholders that PDF text extraction leaves behind.
	cidRe = regexp.MustCompile(`\(cid:[0-9]+\)`)

	// headingRe matches an all-caps line followed by a newline or colon, the
	// shape section headers take in extracted resume text.
	headingRe = regexp.MustCompile(`\n([A-Z][A-Z\s]+)(?:\n|:)`)

	// bulletRe matches the bullet markers different resume templates use.
	bulletRe = regexp.MustCompile(`[\*\+\-]\s`)

	multiSpaceRe   = regexp.MustCompile(` +`)
	multiNewlineRe = regexp.MustCompile(`\n+`)

	// pageNumberRe matches bare page numbers on their own line.
	pageNumberRe = regexp.MustCompile(`\n\s*\d+\s*\n`)

	// pageFooterRe matches "Page N of M" header/footer lines.
	pageFooterRe = regexp.MustCompile(`(?m)^\s*Page \d+ of \d+\s*$`)
)

// CleanText normalizes raw extracted resume text. Section headers become
// markdown headings ("## EDUCATION"), bullet markers become "•", runs of
// spaces and newlines collapse, and PDF artifacts such as CID placeholders
// and page numbers are removed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = cidRe.ReplaceAllString(content, "")
	content = headingRe.ReplaceAllString(content, "\n## $1\n")
	content = bulletRe.ReplaceAllString(content, "• ")
	content = multiSpaceRe.ReplaceAllString(content, " ")
	content = multiNewlineRe.ReplaceAllString(content, "\n")
	content = pageNumberRe.ReplaceAllString(content, "\n")
	content = pageFooterRe.ReplaceAllString(content, "")

	return strings.TrimSpace(content)
}
