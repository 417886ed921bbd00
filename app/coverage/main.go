package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"glowAdvisor/business/catalog"
	"glowAdvisor/business/coverage"
	"glowAdvisor/pkg/logger"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	catalogPath string
	profiles    int
	seed        int64
	jsonOut     string
)

var rootCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Replays synthetic questionnaires against a catalog export",
	Long: `coverage generates randomized questionnaire submissions, runs each one
through the recommendation engine against a catalog CSV export, and reports
how well the catalog covers the profile space: category fill rates, critical
routine gaps and how often the resolver had to relax constraints.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog CSV export (required)")
	rootCmd.Flags().IntVar(&profiles, "profiles", 1000, "number of synthetic profiles to run")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "random seed for profile generation")
	rootCmd.Flags().StringVar(&jsonOut, "out", "", "optional path to write the report as JSON")
	rootCmd.MarkFlagRequired("catalog")
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init("development")

	file, err := os.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog export: %w", err)
	}
	defer file.Close()

	items, skipped, err := catalog.ParseCSV(file)
	if err != nil {
		return fmt.Errorf("failed to parse catalog export: %w", err)
	}
	if skipped > 0 {
		logger.Warn("skipped unparseable catalog rows", "skipped", skipped)
	}
	if len(items) == 0 {
		return fmt.Errorf("catalog export %q contains no usable rows", catalogPath)
	}

	logger.Info("catalog loaded", "items", len(items), "profiles", profiles, "seed", seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bar := progressbar.Default(int64(profiles), "scoring profiles")

	runner := coverage.NewRunner(items, seed)
	report, err := runner.Run(ctx, profiles, func() {
		bar.Add(1)
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(report.Summary())

	if jsonOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(jsonOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", "path", jsonOut)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
