package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// categoryGroupRe matches "Category: value, value, ..." groups inside a
	// skills section. Values run until the next bullet or heading marker.
	categoryGroupRe = regexp.MustCompile(`([A-Za-z\s]+):([^•#]+)`)

	// bulletSkillRe matches a single bulleted skill item.
	bulletSkillRe = regexp.MustCompile(`•\s*([^•\n]+)`)

	// skillSeparatorRe splits a category's value list into tokens.
	skillSeparatorRe = regexp.MustCompile(`[,\n•]`)
)

// list accumulates skills with case-insensitive uniqueness, keeping the
// casing of the first occurrence for display.
type list struct {
	skills []string
	seen   map[string]bool
}

func newList() *list {
	return &list{seen: make(map[string]bool)}
}

func (l *list) add(skill string) {
	key := strings.ToLower(skill)
	if l.seen[key] {
		return
	}
	l.seen[key] = true
	l.skills = append(l.skills, skill)
}

// Extract produces the record's skill list from a resume. section is the
// text of the skills section (may be empty when the resume has no such
// heading); text is the whole document. Skills found in the section come
// first, then lexicon skills discovered anywhere in the document.
func Extract(text, section string, lex *Lexicon) []string {
	out := newList()

	for _, skill := range ExtractFromSection(section) {
		out.add(skill)
	}
	for _, skill := range lex.Scan(text) {
		out.add(skill)
	}

	return out.skills
}

// ExtractFromSection parses the structured skills section: category groups
// ("Languages: Python, Go") followed by bare bullet lines. Tokens shorter
// than two characters are dropped.
func ExtractFromSection(section string) []string {
	if section == "" {
		return nil
	}

	out := newList()

	for _, group := range categoryGroupRe.FindAllStringSubmatch(section, -1) {
		for _, token := range skillSeparatorRe.Split(group[2], -1) {
			if skill := strings.TrimSpace(token); keepToken(skill) {
				out.add(skill)
			}
		}
	}

	for _, bullet := range bulletSkillRe.FindAllStringSubmatch(section, -1) {
		if skill := strings.TrimSpace(bullet[1]); keepToken(skill) {
			out.add(skill)
		}
	}

	return out.skills
}

func keepToken(skill string) bool {
	return utf8.RuneCountInString(skill) > 1
}
