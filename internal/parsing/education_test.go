package parsing

import (
	"testing"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtractor() *Extractor {
	e := NewExtractor()
	e.now = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestExtractEducation(t *testing.T) {
	e := testExtractor()

	text := "## EDUCATION\n" +
		"Bachelor of Technology, State Institute of Technology\n" +
		"2019-2023 CGPA: 8.2\n" +
		"\n" +
		"Senior Secondary (XII), Springfield School\n" +
		"2019 Percentage: 91\n" +
		"## EXPERIENCE\n" +
		"Initech"

	entries := e.ExtractEducation(text)
	require.Len(t, entries, 2)

	degree := entries[0]
	assert.Equal(t, types.LevelDegree, degree.Level)
	assert.Equal(t, "2023", degree.GraduationYear)
	assert.Empty(t, degree.CompletionYear)
	require.NotNil(t, degree.GPA)
	assert.InDelta(t, 8.2, *degree.GPA, 1e-9)

	secondary := entries[1]
	assert.Equal(t, types.LevelSecondary, secondary.Level)
	assert.Equal(t, "2019", secondary.CompletionYear)
	assert.Empty(t, secondary.GraduationYear)
	assert.Nil(t, secondary.GPA)
}

func TestExtractEducationMissingSection(t *testing.T) {
	e := testExtractor()
	assert.Empty(t, e.ExtractEducation("## EXPERIENCE\nInitech"))
}

func TestExtractYear(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"full range", "2019-2023", "2023"},
		{"range with spaces", "2019 - 2023", "2023"},
		{"en dash range", "2019 – 2023", "2023"},
		{"two digit end", "2017-21", "2021"},
		{"open range present", "2021 - Present", "2025"},
		{"open range ongoing", "2021-ongoing", "2025"},
		{"bare year", "Graduated in 2022", "2022"},
		{"range wins over bare year", "Class of 2018, studied 2019-2023", "2023"},
		{"no year", "State University", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.extractYear(tt.text))
		})
	}
}

func TestFindGPA(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		ok       bool
	}{
		{"gpa label", "GPA: 3.8", 3.8, true},
		{"cgpa label", "CGPA 8.75/10", 8.75, true},
		{"cpi label", "CPI: 9.1", 9.1, true},
		{"label with filler", "GPA is 3.5", 3.5, true},
		{"unparsable value dropped", "GPA: 3.8.1", 0, false},
		{"no label", "Percentage: 91", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpa, ok := findGPA(gpaRe, tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, gpa, 1e-9)
			}
		})
	}
}

// The institution line is the first line carrying a level keyword. A
// keyword-free line holds the slot provisionally, and later keyword lines
// never displace the first one.
func TestEducationInstitutionSelection(t *testing.T) {
	e := testExtractor()

	text := "## EDUCATION\n" +
		"Honors graduate\n" +
		"State Institute of Technology\n" +
		"Another College of Engineering\n" +
		"2019-2023"

	entries := e.ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "State Institute of Technology", entries[0].Institution)
	assert.Equal(t, types.LevelDegree, entries[0].Level)
}

func TestEducationLineScanFallback(t *testing.T) {
	e := testExtractor()

	section := "B.Tech, Springfield University\nCGPA: 8.0\n\nSenior Secondary, Springfield School\n2018"

	entries := e.educationLineScan(section)
	require.Len(t, entries, 2)

	assert.Equal(t, types.LevelDegree, entries[0].Level)
	assert.Equal(t, "B.Tech", entries[0].Degree)
	assert.Equal(t, "University", entries[0].Institution)
	require.NotNil(t, entries[0].GPA)
	assert.InDelta(t, 8.0, *entries[0].GPA, 1e-9)
	assert.Empty(t, entries[0].GraduationYear)

	assert.Equal(t, types.LevelSecondary, entries[1].Level)
	assert.Equal(t, "2018", entries[1].CompletionYear)
	assert.Nil(t, entries[1].GPA)
}
