// Package cmd provides CLI commands for the glenglat curation engine.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "glenglat",
	Short: "Curate person identities and citations for the glenglat dataset",
	Long: `glenglat curates the multi-script person and bibliography metadata of the
global englacial temperature database.

It parses the dataset's compact person strings (e.g. "杉山 慎 [Sugiyama Shin]
(0000-0001-5323-9558)"), resolves them against the curated person registry,
and renders them into CSL-JSON, ESSD submission metadata, author lists, and
Zenodo deposition records.

Examples:
  glenglat convert csl -i data/source.csv
  glenglat convert essd -i data/source.csv -o build/source.json
  glenglat convert zenodo -i data/source.csv --datapackage datapackage.yaml
  glenglat authors -i data/source.csv --people data/person.csv
  glenglat validate -i data/source.csv --people data/person.csv`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// .env is optional; environment variables win when both are set.
	_ = godotenv.Load()
	setupLogger()
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatsCmd)
}
