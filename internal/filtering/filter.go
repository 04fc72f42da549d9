// Package filtering implements multi-criteria screening of parsed resume
// records: skill containment, degree graduation year, and degree GPA
// threshold. Criteria a record carries no data for never reject it.
package filtering

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Criteria is one screening request. Zero values disable the corresponding
// check: an empty skill list, an empty year, and a nil (or non-positive)
// GPA threshold each match every record.
type Criteria struct {
	Skills       []string `json:"skills,omitempty"`
	Year         string   `json:"year,omitempty"`
	GPAThreshold *float64 `json:"degree_gpa,omitempty"`
}

// Match reports whether a record satisfies all active criteria.
//
// Skills require every requested skill to appear in the record,
// case-insensitively. The year check compares the record's resolved degree
// graduation year for string equality, and the GPA check compares the
// resolved degree GPA against the threshold; both are skipped when the
// record carries no resolved value, so missing degree facts never block a
// record.
func (c *Criteria) Match(rec *types.ResumeRecord) bool {
	for _, skill := range c.Skills {
		if !rec.HasSkill(skill) {
			return false
		}
	}

	year, gpa := parsing.DegreeFacts(rec)

	if c.Year != "" && year != "" && year != c.Year {
		return false
	}
	if c.GPAThreshold != nil && *c.GPAThreshold > 0 && gpa != nil && *gpa < *c.GPAThreshold {
		return false
	}

	return true
}

// Apply filters records, returning the indices of those that match in their
// original order.
func (c *Criteria) Apply(records []*types.ResumeRecord) []int {
	var matched []int
	for i, rec := range records {
		if c.Match(rec) {
			matched = append(matched, i)
		}
	}
	return matched
}

// DegreeYears collects the distinct resolved degree graduation years across
// records, sorted in descending string order for display. Records without a
// resolved year contribute nothing.
func DegreeYears(records []*types.ResumeRecord) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		if year, _ := parsing.DegreeFacts(rec); year != "" {
			seen[year] = true
		}
	}

	years := make([]string, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}
