package parsing

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Keyword tables driving education-level classification. Matching is by
// substring on the lowercased input, in priority order: degree keywords
// win over secondary, secondary over high school.
var (
	degreeKeywords = []string{
		"bachelor", "b.tech", "btech", "b. tech", "undergraduate", "ug", "be", "b.e.",
		"engineering", "computer science", "cse", "it", "information technology",
		"electrical", "mechanical", "civil", "electronics", "college",
	}

	secondaryKeywords = []string{
		"senior secondary", "12th", "12 th", "xii", "higher secondary", "intermediate",
		"junior college", "pre-university", "hsc", "intermediate", "10+2",
	}

	highSchoolKeywords = []string{
		"secondary", "high school", "10th", "10 th", "x", "ssc", "matriculation",
	}
)

// ClassifyEducationLevel classifies free-form degree or institution text.
// The first keyword table that matches decides the level; text that matches
// nothing but contains the literal word "degree" still counts as degree
// level. Classification is idempotent: feeding a classified entry's degree
// text back in yields the same level.
func ClassifyEducationLevel(text string) types.EducationLevel {
	if text == "" {
		return types.LevelUnknown
	}

	lower := strings.ToLower(text)

	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			return types.LevelDegree
		}
	}
	for _, keyword := range secondaryKeywords {
		if strings.Contains(lower, keyword) {
			return types.LevelSecondary
		}
	}
	for _, keyword := range highSchoolKeywords {
		if strings.Contains(lower, keyword) {
			return types.LevelHighSchool
		}
	}

	if strings.Contains(lower, "degree") {
		return types.LevelDegree
	}

	return types.LevelUnknown
}

// hasLevelKeyword reports whether a line contains any education-level
// keyword from any table. Used to pick the institution line of an entry.
func hasLevelKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, table := range [][]string{degreeKeywords, secondaryKeywords, highSchoolKeywords} {
		for _, keyword := range table {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// containsDegreeKeyword reports whether lowercased text contains a
// degree-table keyword. Used by the resolver's fallback scan.
func containsDegreeKeyword(lower string) bool {
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
