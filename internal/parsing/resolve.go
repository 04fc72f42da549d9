package parsing

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// DegreeEducation selects the education entry that drives degree-level
// filtering: the first entry classified as degree level that carries a
// graduation year. When no classified entry qualifies, entries whose degree
// or institution text contains a degree keyword are considered, again
// requiring a graduation year. Selection never prefers a more recent entry
// or a better GPA over an earlier one.
func DegreeEducation(rec *types.ResumeRecord) *types.EducationEntry {
	for i := range rec.Education {
		entry := rec.Education[i]
		if entry.Level == types.LevelDegree && entry.GraduationYear != "" {
			return &entry
		}
	}

	for i := range rec.Education {
		entry := rec.Education[i]
		if entry.GraduationYear == "" {
			continue
		}
		if containsDegreeKeyword(strings.ToLower(entry.Degree)) ||
			containsDegreeKeyword(strings.ToLower(entry.Institution)) {
			return &entry
		}
	}

	return nil
}

// DegreeFacts resolves the record's degree-level graduation year and GPA
// through the ordered source chain: the top-level precomputed fields, the
// nested degree education entry, then the formatted degree info. The two
// facts are resolved independently, so the year and the GPA may come from
// different sources.
func DegreeFacts(rec *types.ResumeRecord) (year string, gpa *float64) {
	year = rec.DegreeGraduationYear
	if year == "" && rec.DegreeEducation != nil {
		year = rec.DegreeEducation.GraduationYear
	}
	if year == "" && rec.DegreeInfo != nil {
		year = rec.DegreeInfo.GraduationYear
	}

	gpa = rec.DegreeGPA
	if gpa == nil && rec.DegreeEducation != nil {
		gpa = rec.DegreeEducation.GPA
	}
	if gpa == nil && rec.DegreeInfo != nil {
		gpa = rec.DegreeInfo.DegreeGPA
	}

	return year, gpa
}

// Resolve returns a copy of the record with its degree source fields filled
// in and DegreeSummary derived from them. The input record is not modified.
// Records without any degree-level education end up with no summary at all.
func Resolve(rec types.ResumeRecord) types.ResumeRecord {
	resolved := rec

	if selected := DegreeEducation(&resolved); selected != nil {
		resolved.DegreeEducation = selected
		resolved.DegreeGraduationYear = selected.GraduationYear
		resolved.DegreeGPA = selected.GPA
	}
	if resolved.DegreeInfo == nil {
		resolved.DegreeInfo = formatDegreeInfo(&resolved)
	}

	year, gpa := DegreeFacts(&resolved)
	if year == "" && gpa == nil {
		resolved.DegreeSummary = nil
		return resolved
	}

	resolved.DegreeSummary = &types.DegreeSummary{
		GraduationYear: year,
		GPA:            gpa,
	}
	return resolved
}

// formatDegreeInfo builds the display-oriented degree view: the selected
// degree education when one exists, else the first degree-level entry even
// when it carries no graduation year (its GPA is still worth surfacing).
func formatDegreeInfo(rec *types.ResumeRecord) *types.DegreeInfo {
	if rec.DegreeEducation != nil {
		return &types.DegreeInfo{
			GraduationYear: rec.DegreeEducation.GraduationYear,
			DegreeGPA:      rec.DegreeEducation.GPA,
		}
	}
	for i := range rec.Education {
		if rec.Education[i].Level == types.LevelDegree {
			entry := rec.Education[i]
			return &types.DegreeInfo{
				GraduationYear: entry.GraduationYear,
				DegreeGPA:      entry.GPA,
			}
		}
	}
	return nil
}
