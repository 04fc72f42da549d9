package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/filtering"
	"github.com/jonathan/resume-screener/internal/types"
)

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the distinct degree graduation years across stored resumes",
	RunE:  runYears,
}

func init() {
	rootCmd.AddCommand(yearsCmd)
}

func runYears(_ *cobra.Command, _ []string) error {
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

	records := make([]*types.ResumeRecord, 0, len(resumes))
	for _, resume := range resumes {
		if resume.Record != nil {
			records = append(records, resume.Record)
		}
	}

	jsonBytes, err := json.MarshalIndent(filtering.DegreeYears(records), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal years: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
