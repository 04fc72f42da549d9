package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resumeContentSelectors lists the elements resume export tools wrap their
// content in, tried in order before falling back to the whole body.
var resumeContentSelectors = []string{
	"main",
	"article",
	".resume",
	"#resume",
	".content",
	"#content",
}

// ExtractHTMLText pulls visible text out of an HTML resume export. Script,
// style, and navigation elements are dropped, block elements contribute line
// breaks, and the result is ready for CleanText.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, script, style, noscript").Remove()

	var content *goquery.Selection
	for _, selector := range resumeContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	var sb strings.Builder
	content.Find("h1, h2, h3, h4, p, li, div, br, tr").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(ownText(s)); text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	if sb.Len() == 0 {
		return strings.TrimSpace(content.Text()), nil
	}
	return strings.TrimSpace(sb.String()), nil
}

// ownText collects the text of a node's direct text children, so nested
// block elements are not counted twice.
func ownText(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			sb.WriteString(c.Text())
		}
	})
	return sb.String()
}
