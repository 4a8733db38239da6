// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/haritsf/pr-report/internal/config"
	"github.com/haritsf/pr-report/internal/gateway"
	"github.com/haritsf/pr-report/internal/report"
	"github.com/haritsf/pr-report/internal/usecase"
)

// dateLayout is the creation-date granularity of the search filter.
const dateLayout = "2006-01-02"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Collects pull-request activity and writes the Excel report",
	Long: `Collects the pull requests the configured authors created in the
configured organization and date window, enriches them with per-file change
statistics, and writes the two-sheet Excel report into the output directory.
All inputs come from the environment (or a .env file): GITHUB_TOKEN,
GITHUB_ORG, GITHUB_AUTHORS, REPORT_START_DATE, REPORT_END_DATE and optionally
REPORT_OUTPUT_DIR and REPORT_EXCLUDED_FILE_PATTERNS.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// The search filter wants machine-readable inclusive bounds,
		// independent of the report's display dates.
		// Note: The leading space is important for concatenation.
		dateRange := fmt.Sprintf(" created:%s..%s",
			cfg.StartDate.Format(dateLayout), cfg.EndDate.Format(dateLayout))

		// Inject dependencies and run the pipeline.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		collector := usecase.NewCollector(githubGateway, logger)
		enricher := usecase.NewEnricher(githubGateway, logger, cfg.ExcludedFilePatterns)
		aggregator := usecase.NewAggregator(logger)
		renderer := report.NewRenderer(cfg.OutputDir, logger)

		records := collector.Collect(ctx, cfg.Organization, cfg.Authors, dateRange)
		enriched := enricher.Enrich(ctx, records)
		summary := aggregator.Summarize(enriched, cfg.Authors)

		path, err := renderer.Render(enriched, summary, cfg.StartDate, cfg.EndDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}
		logger.Infof("report written to %s", path)

		// Print the final path to standard output for scripting.
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
