package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			name: "complete candidate",
			json: `{
				"skills": ["Python", "Go"],
				"education": [
					{"institution": "State College", "degree": "B.Tech", "education_level": "degree", "gpa": 8.2, "graduation_year": 2023}
				],
				"experience": [
					{"company": "Initech", "position": "Engineer", "type": "experience", "description": "built services"}
				]
			}`,
		},
		{
			name: "empty lists",
			json: `{"skills": [], "education": [], "experience": []}`,
		},
		{
			name: "string gpa and year",
			json: `{"skills": [], "education": [{"institution": "X", "gpa": "9.1", "graduation_year": "2022"}], "experience": []}`,
		},
		{
			name: "null gpa",
			json: `{"skills": [], "education": [{"institution": "X", "gpa": null}], "experience": []}`,
		},
		{
			name:    "missing skills",
			json:    `{"education": [], "experience": []}`,
			wantErr: true,
		},
		{
			name:    "education entry without institution",
			json:    `{"skills": [], "education": [{"degree": "B.Tech"}], "experience": []}`,
			wantErr: true,
		},
		{
			name:    "skills with non-string entries",
			json:    `{"skills": [1, 2], "education": [], "experience": []}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.json)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCandidateFieldErrors(t *testing.T) {
	err := ValidateCandidate(`{"skills": [], "education": [{"degree": "B.Tech"}], "experience": []}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "institution")
}

func TestValidateCandidateInvalidJSON(t *testing.T) {
	err := ValidateCandidate("not json at all")
	assert.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "jane"}`))
	assert.Error(t, ValidateJSONString(schema, `{}`))
}
