package parsing

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// CandidateRecord is the loosely-typed shape external extractors produce.
// Model output and third-party payloads put numbers where strings belong and
// vice versa, so the numeric and year fields accept any JSON scalar and are
// coerced during normalization.
type CandidateRecord struct {
	Skills     []string                `json:"skills"`
	Education  []CandidateEducation    `json:"education"`
	Experience []types.ExperienceEntry `json:"experience"`
}

// CandidateEducation mirrors types.EducationEntry with scalar fields left
// untyped.
type CandidateEducation struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	Level          string `json:"education_level,omitempty"`
	GPA            any    `json:"gpa,omitempty"`
	GraduationYear any    `json:"graduation_year,omitempty"`
	CompletionYear any    `json:"completion_year,omitempty"`
}

// DecodeCandidate parses a JSON document into a CandidateRecord.
func DecodeCandidate(data []byte) (*CandidateRecord, error) {
	var candidate CandidateRecord
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, &ParseError{Message: "decoding candidate record", Cause: err}
	}
	return &candidate, nil
}

// NormalizeCandidate converts a loosely-typed candidate into a well-formed
// record: skills are deduplicated case-insensitively, scalar fields are
// coerced or dropped, missing levels are classified from the degree text,
// and the year-field policy is enforced so degree entries carry only a
// graduation year and other entries only a completion year.
func NormalizeCandidate(candidate *CandidateRecord) *types.ResumeRecord {
	rec := &types.ResumeRecord{
		Skills:     dedupeSkills(candidate.Skills),
		Experience: candidate.Experience,
	}

	for _, ce := range candidate.Education {
		entry := types.EducationEntry{
			Institution: strings.TrimSpace(ce.Institution),
			Degree:      strings.TrimSpace(ce.Degree),
		}

		entry.Level = candidateLevel(ce.Level)
		if entry.Level == types.LevelUnknown {
			entry.Level = ClassifyEducationLevel(classificationSource(entry.Degree, entry.Institution))
		}

		if gpa, ok := coerceFloat(ce.GPA); ok {
			entry.GPA = &gpa
		}

		graduation := coerceYear(ce.GraduationYear)
		completion := coerceYear(ce.CompletionYear)
		if entry.Level == types.LevelDegree {
			if graduation == "" {
				graduation = completion
			}
			entry.GraduationYear = graduation
		} else {
			if graduation != "" {
				completion = graduation
			}
			entry.CompletionYear = completion
		}

		rec.Education = append(rec.Education, entry)
	}

	return rec
}

// candidateLevel validates an externally supplied level string. Anything
// outside the known set is treated as unset rather than trusted.
func candidateLevel(level string) types.EducationLevel {
	switch types.EducationLevel(strings.ToLower(strings.TrimSpace(level))) {
	case types.LevelDegree:
		return types.LevelDegree
	case types.LevelSecondary:
		return types.LevelSecondary
	case types.LevelHighSchool:
		return types.LevelHighSchool
	}
	return types.LevelUnknown
}

// dedupeSkills removes case-insensitive duplicates, keeping the first casing
// seen and the original order.
func dedupeSkills(raw []string) []string {
	var deduped []string
	seen := make(map[string]struct{}, len(raw))
	for _, skill := range raw {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, skill)
	}
	return deduped
}

// coerceFloat converts a JSON scalar into a float64, accepting numbers and
// numeric strings. Unparsable values are dropped.
func coerceFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	return 0, false
}

// coerceYear converts a JSON scalar into a year string. Numeric years lose
// any fractional part; everything else is stringified and trimmed.
func coerceYear(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.Itoa(int(val))
	case int:
		return strconv.Itoa(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return val.String()
	}
	return ""
}
