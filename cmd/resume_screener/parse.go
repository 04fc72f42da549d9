package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume document into a structured record",
	Long:  "Parse a resume document (.txt, .md, .html) into a structured record with skills, classified education, experience, and resolved degree facts.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile string
	parseSave       bool
	parseVerbose    bool
	parseLLM        bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Write the record JSON to a file instead of stdout")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "Save the parsed record to the configured store")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	parseCmd.Flags().BoolVar(&parseLLM, "llm", false, "Use model-based extraction (requires GEMINI_API_KEY)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if parseLLM {
		if cfg.APIKey == "" {
			return fmt.Errorf("--llm requires an API key (set GEMINI_API_KEY or the api_key config field)")
		}
	} else {
		// Rule-based parsing unless the model path is asked for.
		cfg.APIKey = ""
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	parser, err := buildParser(ctx, cfg, log)
	if err != nil {
		return err
	}

	record, meta, err := parser.ParseFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMetadata(meta)
		printer.PrintRecord(record)
	}

	if parseSave {
		st, err := buildStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		resume := store.NewStoredResume(meta.Filename, meta, record)
		if err := st.Save(ctx, resume); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved as %s\n", resume.ID)
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}
