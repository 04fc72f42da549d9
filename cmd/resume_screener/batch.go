package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Parse every supported resume in a directory",
	Long:  "Parse every supported resume document in a directory concurrently and save the resulting records to the configured store.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var batchWorkers int

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Number of concurrent parsers (0 uses the configured default)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	paths, err := supportedFiles(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported resume documents in %s", args[0])
	}

	parser, err := buildParser(ctx, cfg, log)
	if err != nil {
		return err
	}

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	workers := batchWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	results := parser.ParseBatch(ctx, paths, workers)

	saved := 0
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", result.Path, result.Err)
			continue
		}

		resume := store.NewStoredResume(filepath.Base(result.Path), result.Metadata, result.Record)
		if err := st.Save(ctx, resume); err != nil {
			log.Error("failed to save record", zap.String("path", result.Path), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", result.Path, err)
			continue
		}
		saved++
	}

	fmt.Printf("Parsed and saved %d of %d resumes\n", saved, len(paths))
	return nil
}

// supportedFiles lists the parseable documents in a directory, sorted by name.
func supportedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if ingestion.SupportedFile(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
