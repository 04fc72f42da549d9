package skills

import "sort"

// Universe merges skill lists from many records into one ordered list:
// lexicon members first, in lexicon rank order, then every remaining skill
// sorted alphabetically. Membership here is exact-case, matching the
// display forms records carry.
func Universe(lex *Lexicon, skillLists ...[]string) []string {
	present := make(map[string]bool)
	for _, skillList := range skillLists {
		for _, skill := range skillList {
			present[skill] = true
		}
	}

	combined := make([]string, 0, len(present))
	for _, name := range lex.names {
		if present[name] {
			combined = append(combined, name)
			delete(present, name)
		}
	}

	rest := make([]string, 0, len(present))
	for skill := range present {
		rest = append(rest, skill)
	}
	sort.Strings(rest)

	return append(combined, rest...)
}
