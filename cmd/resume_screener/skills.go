package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the known-skill lexicon",
	Long:  "List the full known-skill lexicon. With --stored, list the distinct skills present across stored resumes instead, known lexicon skills first.",
	RunE:  runSkills,
}

var skillsStored bool

func init() {
	skillsCmd.Flags().BoolVar(&skillsStored, "stored", false, "List the distinct skills across stored resumes")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	lexicon := skills.Default()

	names := lexicon.Names()
	if skillsStored {
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

		skillLists := make([][]string, 0, len(resumes))
		for _, resume := range resumes {
			if resume.Record != nil {
				skillLists = append(skillLists, resume.Record.Skills)
			}
		}
		names = skills.Universe(lexicon, skillLists...)
	}

	jsonBytes, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
