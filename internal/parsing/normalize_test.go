package parsing

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCandidate(t *testing.T) {
	data := []byte(`{
		"skills": ["Python", "python", "Go"],
		"education": [
			{"institution": "State College", "degree": "B.Tech", "gpa": 8.2, "graduation_year": 2023}
		],
		"experience": [
			{"company": "Initech", "position": "Engineer", "type": "experience"}
		]
	}`)

	candidate, err := DecodeCandidate(data)
	require.NoError(t, err)
	assert.Len(t, candidate.Skills, 3)
	assert.Len(t, candidate.Education, 1)
	assert.Len(t, candidate.Experience, 1)
}

func TestDecodeCandidateInvalidJSON(t *testing.T) {
	candidate, err := DecodeCandidate([]byte(`{"skills": [`))
	assert.Nil(t, candidate)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestNormalizeCandidate(t *testing.T) {
	candidate := &CandidateRecord{
		Skills: []string{"Python", "python", " Go ", "", "PYTHON"},
		Education: []CandidateEducation{
			{
				Institution:    "State College",
				Degree:         "B.Tech in Computer Science",
				GPA:            8.2,
				GraduationYear: float64(2023),
			},
			{
				Institution:    "Springfield School",
				Level:          "high_school",
				GPA:            "not a number",
				CompletionYear: "2017",
			},
		},
		Experience: []types.ExperienceEntry{
			{Company: "Initech", Kind: types.KindExperience},
		},
	}

	rec := NormalizeCandidate(candidate)

	assert.Equal(t, []string{"Python", "Go"}, rec.Skills)
	require.Len(t, rec.Education, 2)

	degree := rec.Education[0]
	assert.Equal(t, types.LevelDegree, degree.Level)
	assert.Equal(t, "2023", degree.GraduationYear)
	assert.Empty(t, degree.CompletionYear)
	require.NotNil(t, degree.GPA)
	assert.InDelta(t, 8.2, *degree.GPA, 1e-9)

	school := rec.Education[1]
	assert.Equal(t, types.LevelHighSchool, school.Level)
	assert.Equal(t, "2017", school.CompletionYear)
	assert.Nil(t, school.GPA)

	assert.Len(t, rec.Experience, 1)
}

// A graduation year reported on a non-degree entry moves to the completion
// year, and a completion year on a degree entry fills its graduation year.
func TestNormalizeCandidateYearPolicy(t *testing.T) {
	candidate := &CandidateRecord{
		Education: []CandidateEducation{
			{Institution: "Springfield School", Level: "secondary", GraduationYear: "2019", CompletionYear: "2018"},
			{Institution: "State College", Level: "degree", CompletionYear: "2023"},
		},
	}

	rec := NormalizeCandidate(candidate)
	require.Len(t, rec.Education, 2)

	assert.Equal(t, "2019", rec.Education[0].CompletionYear)
	assert.Empty(t, rec.Education[0].GraduationYear)

	assert.Equal(t, "2023", rec.Education[1].GraduationYear)
	assert.Empty(t, rec.Education[1].CompletionYear)
}

func TestNormalizeCandidateLevelValidation(t *testing.T) {
	candidate := &CandidateRecord{
		Education: []CandidateEducation{
			{Institution: "State College", Degree: "Bachelor of Arts", Level: "doctorate"},
			{Institution: "Somewhere", Level: "SECONDARY"},
		},
	}

	rec := NormalizeCandidate(candidate)
	require.Len(t, rec.Education, 2)

	// Unknown levels fall back to keyword classification of the degree text.
	assert.Equal(t, types.LevelDegree, rec.Education[0].Level)
	// Known levels are accepted case-insensitively.
	assert.Equal(t, types.LevelSecondary, rec.Education[1].Level)
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{"float", 8.2, 8.2, true},
		{"int", 9, 9, true},
		{"numeric string", "3.8", 3.8, true},
		{"padded string", " 7.5 ", 7.5, true},
		{"garbage string", "excellent", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceFloat(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}

func TestCoerceYear(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "2023", "2023"},
		{"padded string", " 2023 ", "2023"},
		{"float", float64(2023), "2023"},
		{"int", 2021, "2021"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceYear(tt.input))
		})
	}
}
