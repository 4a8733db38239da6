// Package config loads the environment-sourced configuration of a report run.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// dateLayout is the machine-readable format of the report window bounds.
const dateLayout = "2006-01-02"

// DefaultExcludedFilePatterns are the file-path patterns excluded from change
// totals when REPORT_EXCLUDED_FILE_PATTERNS is not set. Patterns starting
// with "." match filename suffixes, patterns ending with "/" match directory
// segments, anything else is a plain substring match.
var DefaultExcludedFilePatterns = []string{
	".min.js",
	".min.css",
	".lock",
	".svg",
	".snap",
	"dist/",
	"build/",
	"vendor/",
	"node_modules/",
	"package-lock.json",
	"yarn.lock",
	"go.sum",
}

// Config is the explicit configuration value of one report run, passed into
// each component instead of being read from process-wide state.
type Config struct {
	Token                string
	Organization         string
	Authors              []string
	StartDate            time.Time
	EndDate              time.Time
	OutputDir            string
	ExcludedFilePatterns []string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present; variables already set in the
// process environment take precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Token:                os.Getenv("GITHUB_TOKEN"),
		Organization:         os.Getenv("GITHUB_ORG"),
		Authors:              splitList(os.Getenv("GITHUB_AUTHORS")),
		OutputDir:            getEnv("REPORT_OUTPUT_DIR", "reports"),
		ExcludedFilePatterns: DefaultExcludedFilePatterns,
	}
	if patterns := os.Getenv("REPORT_EXCLUDED_FILE_PATTERNS"); patterns != "" {
		cfg.ExcludedFilePatterns = splitList(patterns)
	}

	if cfg.Token == "" {
		return Config{}, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	if cfg.Organization == "" {
		return Config{}, fmt.Errorf("GITHUB_ORG environment variable is not set")
	}
	if len(cfg.Authors) == 0 {
		return Config{}, fmt.Errorf("GITHUB_AUTHORS environment variable is not set")
	}

	var err error
	cfg.StartDate, err = parseDate("REPORT_START_DATE")
	if err != nil {
		return Config{}, err
	}
	cfg.EndDate, err = parseDate("REPORT_END_DATE")
	if err != nil {
		return Config{}, err
	}
	if cfg.EndDate.Before(cfg.StartDate) {
		return Config{}, fmt.Errorf("REPORT_END_DATE %s is before REPORT_START_DATE %s",
			cfg.EndDate.Format(dateLayout), cfg.StartDate.Format(dateLayout))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated value, trimming whitespace and dropping
// empty entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseDate(key string) (time.Time, error) {
	value := os.Getenv(key)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s environment variable is not set", key)
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD: %w", key, value, err)
	}
	return date, nil
}
