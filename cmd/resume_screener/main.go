// Package main provides the resume screener CLI: parsing resume documents
// into structured records, storing them, and filtering the stored pool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume parsing and screening toolkit",
	Long:  "Resume Screener parses resume documents into structured records (skills, education, experience) and filters candidate pools by skills, graduation year, and GPA.",
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
