// Package parsing implements rule-based extraction of structured career
// information from cleaned resume text: section segmentation, education and
// experience extraction, education-level classification, and the field
// resolver that derives the authoritative degree summary.
package parsing

import (
	"regexp"
	"strings"
)

// Heading aliases for the sections the extractors care about.
var (
	SkillsAliases    = []string{"SKILLS", "SKILLS & INTERESTS", "TECHNICAL SKILLS", "PROFESSIONAL SKILLS"}
	EducationAliases = []string{"EDUCATION", "ACADEMIC BACKGROUND"}
)

// headingBodyRe matches a line made of capitalized tokens, the shape section
// headings take after text normalization.
var headingBodyRe = regexp.MustCompile(`^[A-Z][A-Z\s&/]*$`)

// Section returns the text of the first section whose heading line matches
// one of the aliases: everything from the line after the heading up to the
// next heading-looking line or the end of the document. The empty string is
// returned when no alias matches; a missing section is not an error.
// Recurring headings beyond the first occurrence are ignored.
func Section(text string, aliases []string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if headingMatches(line, aliases) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if isHeadingLine(lines[i]) {
			end = i
			break
		}
	}

	return strings.Join(lines[start:end], "\n")
}

// headingText strips markdown heading markers, surrounding whitespace, and a
// trailing colon from a line, leaving the bare heading text.
func headingText(line string) string {
	text := strings.TrimSpace(line)
	text = strings.TrimLeft(text, "#")
	text = strings.TrimSuffix(strings.TrimSpace(text), ":")
	return strings.TrimSpace(text)
}

// headingMatches reports whether the line is a heading for one of the given
// aliases. Matching is case-insensitive and prefix-based, so "EDUCATION"
// also claims headings like "EDUCATION & TRAINING".
func headingMatches(line string, aliases []string) bool {
	text := headingText(line)
	if text == "" {
		return false
	}
	for _, alias := range aliases {
		if len(text) >= len(alias) && strings.EqualFold(text[:len(alias)], alias) {
			return true
		}
	}
	return false
}

// isHeadingLine reports whether a line looks like a section boundary:
// an explicit markdown heading or a line of capitalized tokens.
func isHeadingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "#") {
		return true
	}
	return len(trimmed) >= 2 && headingBodyRe.MatchString(trimmed)
}
