package parsing

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassifyEducationLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.EducationLevel
	}{
		{"bachelor title", "Bachelor of Technology in Computer Science", types.LevelDegree},
		{"btech abbreviation", "B.Tech, Electronics", types.LevelDegree},
		{"college name", "Springfield College of Arts", types.LevelDegree},
		{"senior secondary", "Senior Secondary (XII), CBSE", types.LevelSecondary},
		{"twelfth standard", "12th Standard", types.LevelSecondary},
		{"higher secondary", "Higher Secondary Certificate", types.LevelSecondary},
		{"high school", "Springfield High School", types.LevelHighSchool},
		{"tenth standard", "10th Standard, State Board", types.LevelHighSchool},
		{"matriculation", "Matriculation", types.LevelHighSchool},
		{"literal degree fallback", "Associate Degree in Nursing", types.LevelDegree},
		{"unclassifiable", "Online Bootcamp", types.LevelUnknown},
		{"empty text", "", types.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyEducationLevel(tt.text))
		})
	}
}

// Degree keywords outrank secondary ones, so text naming both levels
// classifies as degree.
func TestClassifyEducationLevelPriority(t *testing.T) {
	assert.Equal(t, types.LevelDegree, ClassifyEducationLevel("Bachelor after Senior Secondary"))
	assert.Equal(t, types.LevelSecondary, ClassifyEducationLevel("Senior Secondary School"))
}

func TestClassifyEducationLevelIdempotent(t *testing.T) {
	for _, text := range []string{
		"Bachelor of Engineering",
		"Senior Secondary (XII)",
		"Springfield High School",
	} {
		level := ClassifyEducationLevel(text)
		assert.Equal(t, level, ClassifyEducationLevel(text))
	}
}
