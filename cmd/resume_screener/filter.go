package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/filtering"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter stored resumes by skills, graduation year, and GPA",
	Long:  "Screen every stored resume against the given criteria. All requested skills must be present, the degree graduation year must match exactly, and the degree GPA must meet the threshold. Resumes without a resolved fact are never rejected by that criterion.",
	RunE:  runFilter,
}

var (
	filterSkills  []string
	filterYear    string
	filterGPA     float64
	filterVerbose bool
)

func init() {
	filterCmd.Flags().StringSliceVar(&filterSkills, "skills", nil, "Required skills (comma-separated, case-insensitive)")
	filterCmd.Flags().StringVar(&filterYear, "year", "", "Required degree graduation year")
	filterCmd.Flags().Float64Var(&filterGPA, "gpa", 0, "Minimum degree GPA")
	filterCmd.Flags().BoolVarP(&filterVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(filterCmd)
}

// filterResult is one matched resume in the CLI output.
type filterResult struct {
	ID              string              `json:"id"`
	Filename        string              `json:"filename"`
	Skills          []string            `json:"skills"`
	DegreeInfo      types.DegreeSummary `json:"degree_info"`
	ExperienceCount int                 `json:"experience_count"`
}

func runFilter(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	resumes, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}

	criteria := filtering.Criteria{
		Skills: filterSkills,
		Year:   filterYear,
	}
	if filterGPA > 0 {
		criteria.GPAThreshold = &filterGPA
	}

	matches := []filterResult{}
	var filenames []string
	for _, resume := range resumes {
		if resume.Record == nil || !criteria.Match(resume.Record) {
			continue
		}
		year, gpa := parsing.DegreeFacts(resume.Record)
		matches = append(matches, filterResult{
			ID:              resume.ID.String(),
			Filename:        resume.Filename,
			Skills:          resume.Record.Skills,
			DegreeInfo:      types.DegreeSummary{GraduationYear: year, GPA: gpa},
			ExperienceCount: len(resume.Record.Experience),
		})
		filenames = append(filenames, resume.Filename)
	}

	if filterVerbose {
		observability.NewPrinter(os.Stderr).PrintMatches(filenames, len(resumes))
	}

	jsonBytes, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
