package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes REST endpoints for uploading, listing, and filtering resumes.",
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	parser, err := buildParser(ctx, cfg, log)
	if err != nil {
		st.Close()
		return err
	}

	srv, err := server.New(server.Config{
		ListenAddr: cfg.ListenAddr,
		Store:      st,
		Parser:     parser,
		Logger:     log,
	})
	if err != nil {
		st.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
