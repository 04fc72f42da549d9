package filtering

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func degreeRecord(skills []string, year string, gpa *float64) *types.ResumeRecord {
	return &types.ResumeRecord{
		Skills:               skills,
		DegreeGraduationYear: year,
		DegreeGPA:            gpa,
	}
}

func TestCriteriaMatchSkills(t *testing.T) {
	rec := degreeRecord([]string{"Python", "Machine Learning"}, "2023", nil)

	tests := []struct {
		name     string
		skills   []string
		expected bool
	}{
		{"no skills requested", nil, true},
		{"single match", []string{"Python"}, true},
		{"case insensitive match", []string{"PYTHON"}, true},
		{"all must match", []string{"Python", "Machine Learning"}, true},
		{"one missing rejects", []string{"Python", "Go"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Skills: tt.skills}
			assert.Equal(t, tt.expected, c.Match(rec))
		})
	}
}

func TestCriteriaMatchYear(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		rec      *types.ResumeRecord
		expected bool
	}{
		{"equal year", "2023", degreeRecord(nil, "2023", nil), true},
		{"different year", "2022", degreeRecord(nil, "2023", nil), false},
		{"criterion absent", "", degreeRecord(nil, "2023", nil), true},
		{"record year absent is non blocking", "2023", degreeRecord(nil, "", nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Year: tt.year}
			assert.Equal(t, tt.expected, c.Match(tt.rec))
		})
	}
}

func TestCriteriaMatchGPA(t *testing.T) {
	tests := []struct {
		name      string
		threshold *float64
		rec       *types.ResumeRecord
		expected  bool
	}{
		{"above threshold", types.Float(8.0), degreeRecord(nil, "", types.Float(8.5)), true},
		{"exactly threshold", types.Float(8.0), degreeRecord(nil, "", types.Float(8.0)), true},
		{"below threshold", types.Float(8.0), degreeRecord(nil, "", types.Float(7.9)), false},
		{"no threshold", nil, degreeRecord(nil, "", types.Float(2.0)), true},
		{"zero threshold disables check", types.Float(0), degreeRecord(nil, "", types.Float(2.0)), true},
		{"record gpa absent is non blocking", types.Float(8.0), degreeRecord(nil, "", nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{GPAThreshold: tt.threshold}
			assert.Equal(t, tt.expected, c.Match(tt.rec))
		})
	}
}

// Degree facts resolve through the source chain, so a record that only
// carries a nested degree entry still participates in year filtering.
func TestCriteriaMatchResolvesFacts(t *testing.T) {
	rec := &types.ResumeRecord{
		DegreeEducation: &types.EducationEntry{
			Level:          types.LevelDegree,
			GraduationYear: "2023",
			GPA:            types.Float(7.0),
		},
	}

	pass := Criteria{Year: "2023"}
	assert.True(t, pass.Match(rec))

	fail := Criteria{Year: "2022"}
	assert.False(t, fail.Match(rec))

	gpaFail := Criteria{GPAThreshold: types.Float(8.0)}
	assert.False(t, gpaFail.Match(rec))
}

func TestCriteriaApply(t *testing.T) {
	records := []*types.ResumeRecord{
		degreeRecord([]string{"Python"}, "2023", types.Float(8.5)),
		degreeRecord([]string{"Go"}, "2023", types.Float(9.0)),
		degreeRecord([]string{"Python"}, "2022", types.Float(6.0)),
		degreeRecord([]string{"Python"}, "", nil),
	}

	c := Criteria{Skills: []string{"Python"}, Year: "2023", GPAThreshold: types.Float(7.0)}

	assert.Equal(t, []int{0, 3}, c.Apply(records))
}

func TestCriteriaApplyEmptyCriteria(t *testing.T) {
	records := []*types.ResumeRecord{
		degreeRecord(nil, "", nil),
		degreeRecord([]string{"Python"}, "2023", nil),
	}

	c := Criteria{}
	assert.Equal(t, []int{0, 1}, c.Apply(records))
}

func TestDegreeYears(t *testing.T) {
	records := []*types.ResumeRecord{
		degreeRecord(nil, "2023", nil),
		degreeRecord(nil, "2021", nil),
		degreeRecord(nil, "2023", nil),
		degreeRecord(nil, "", nil),
		{DegreeInfo: &types.DegreeInfo{GraduationYear: "2019"}},
	}

	assert.Equal(t, []string{"2023", "2021", "2019"}, DegreeYears(records))
}

func TestDegreeYearsEmpty(t *testing.T) {
	assert.Empty(t, DegreeYears(nil))
	assert.Empty(t, DegreeYears([]*types.ResumeRecord{degreeRecord(nil, "", nil)}))
}
