package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/schemas"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "Resume")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeSchema returns the extraction schema for resume documents. The field
// descriptions encode the level vocabulary and the year-field policy so the
// model's output needs as little repair as possible.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "Resume",
		Description: `You are a resume parsing expert. Extract skills, education, and experience from the resume below.

Skills: every technical and soft skill mentioned, as a flat list of names.

Education: every educational qualification. Classify education_level as:
- 'degree' for Bachelor's degrees, B.Tech, Engineering degrees, College education
- 'secondary' for Senior Secondary, 12th, Intermediate, 10+2
- 'high_school' for Secondary, 10th, High School
Only degree-level entries carry 'graduation_year'; other levels use 'completion_year' instead.
Report GPA as a number on the scale the resume uses, or null when absent.

Experience: every work experience, internship, and project. Set 'type' to
'experience', 'internships', or 'projects' based on where it appears.`,
		Fields: []SchemaField{
			{
				Name:     "skills",
				Type:     `["string"]`,
				Required: true,
			},
			{
				Name:        "education",
				Type:        `[{"institution", "degree", "education_level", "gpa", "graduation_year", "completion_year"}]`,
				Description: "one object per qualification",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        `[{"company", "position", "date", "description", "type"}]`,
				Description: "one object per position, internship, or project",
				Required:    true,
			},
		},
	}
}

// ExtractResume runs model-based extraction over cleaned resume text and
// decodes the response into a loosely-typed candidate record. The caller is
// expected to normalize the candidate before using it.
func ExtractResume(ctx context.Context, client Client, text string) (*parsing.CandidateRecord, error) {
	prompt := BuildExtractionPrompt(ResumeSchema(), text)

	jsonResp, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume extraction: %w", err)
	}

	cleaned := CleanJSONBlock(jsonResp)
	if err := schemas.ValidateCandidate(cleaned); err != nil {
		return nil, fmt.Errorf("resume extraction: %w", err)
	}

	candidate, err := parsing.DecodeCandidate([]byte(cleaned))
	if err != nil {
		return nil, fmt.Errorf("resume extraction: %w", err)
	}
	return candidate, nil
}
