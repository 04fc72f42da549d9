// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// EducationLevel classifies an education entry. The empty string means the
// level could not be determined.
type EducationLevel string

// Recognized education levels, ordered from highest to lowest.
const (
	LevelDegree     EducationLevel = "degree"
	LevelSecondary  EducationLevel = "secondary"
	LevelHighSchool EducationLevel = "high_school"
	LevelUnknown    EducationLevel = ""
)

// EducationEntry represents a single educational qualification extracted from
// a resume. At most one of GraduationYear and CompletionYear is set:
// GraduationYear is reserved for degree-level entries, every other level
// stores its year as CompletionYear. Use SetYear to apply that policy.
type EducationEntry struct {
	Institution    string         `json:"institution"`
	Degree         string         `json:"degree,omitempty"`
	Level          EducationLevel `json:"education_level,omitempty"`
	GPA            *float64       `json:"gpa,omitempty"`
	GraduationYear string         `json:"graduation_year,omitempty"`
	CompletionYear string         `json:"completion_year,omitempty"`
}

// SetYear stores year in the field dictated by the entry's level:
// GraduationYear for degree-level entries, CompletionYear otherwise.
// An empty year leaves both fields unset.
func (e *EducationEntry) SetYear(year string) {
	if year == "" {
		return
	}
	if e.Level == LevelDegree {
		e.GraduationYear = year
		e.CompletionYear = ""
		return
	}
	e.CompletionYear = year
	e.GraduationYear = ""
}

// Year returns whichever year field is populated, or "" when neither is.
func (e *EducationEntry) Year() string {
	if e.GraduationYear != "" {
		return e.GraduationYear
	}
	return e.CompletionYear
}

// ExperienceKind identifies which resume section an experience entry came from.
type ExperienceKind string

// Recognized experience kinds.
const (
	KindExperience ExperienceKind = "experience"
	KindProject    ExperienceKind = "projects"
	KindInternship ExperienceKind = "internships"
)

// ExperienceEntry represents one work experience, project, or internship.
type ExperienceEntry struct {
	Company     string         `json:"company,omitempty"`
	Position    string         `json:"position,omitempty"`
	Date        string         `json:"date,omitempty"`
	Description string         `json:"description"`
	Kind        ExperienceKind `json:"type"`
}

// DegreeSummary is the single authoritative view of a record's degree-level
// graduation year and GPA, derived by the field resolver. It is absent when
// the record has no degree-level education.
type DegreeSummary struct {
	GraduationYear string   `json:"graduation_year,omitempty"`
	GPA            *float64 `json:"gpa,omitempty"`
}

// DegreeInfo is the display-oriented degree view produced when a record is
// formatted for storage. It is one of the locations the field resolver
// consults, kept for compatibility with records written by older versions.
type DegreeInfo struct {
	GraduationYear string   `json:"graduation_year,omitempty"`
	DegreeGPA      *float64 `json:"degree_gpa,omitempty"`
}

// ResumeRecord is the structured result of parsing one resume. Records are
// assembled once and never mutated; the field resolver returns a derived
// copy rather than editing in place.
type ResumeRecord struct {
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`

	// Resolver source fields. DegreeEducation is the selected degree-level
	// entry; DegreeGraduationYear and DegreeGPA are its precomputed facts;
	// DegreeInfo is the formatted fallback location.
	DegreeEducation      *EducationEntry `json:"degree_education,omitempty"`
	DegreeGraduationYear string          `json:"degree_graduation_year,omitempty"`
	DegreeGPA            *float64        `json:"degree_gpa,omitempty"`
	DegreeInfo           *DegreeInfo     `json:"degree_info,omitempty"`

	// DegreeSummary is derived by the field resolver and is the single
	// source of truth for degree-level filtering.
	DegreeSummary *DegreeSummary `json:"degree_summary,omitempty"`
}

// HasSkill reports whether the record lists the given skill,
// compared case-insensitively.
func (r *ResumeRecord) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// Float is a convenience for building optional GPA values.
func Float(v float64) *float64 { return &v }
