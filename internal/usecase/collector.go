// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/haritsf/pr-report/internal/domain"
	"github.com/haritsf/pr-report/internal/gateway"
)

// Collector fetches the pull requests of all tracked authors.
type Collector struct {
	fetcher gateway.Fetcher
	logger  *logrus.Logger
}

// NewCollector creates a new Collector instance.
func NewCollector(fetcher gateway.Fetcher, logger *logrus.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Collect searches for the pull requests each author created, one request per
// author, all in flight at once. A failed or malformed response costs only
// that author's slice: it is logged and the siblings are unaffected, which is
// why Collect has no error to return. Results are concatenated in author
// order; an author cannot appear twice for the same PR, so no cross-author
// deduplication is needed.
func (c *Collector) Collect(ctx context.Context, org string, authors []string, dateRange string) []*domain.PullRequestRecord {
	c.logger.Infof("collecting pull requests of %d authors in %s", len(authors), org)

	// One result slot per author; each goroutine writes only its own slot.
	results := make([][]*domain.PullRequestRecord, len(authors))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, author := range authors {
		eg.Go(func() error {
			records, err := c.fetcher.SearchPullRequests(egCtx, org, author, dateRange)
			if err != nil {
				c.logger.Warnf("search failed for author %s, contributing no records: %v", author, err)
				return nil
			}
			results[i] = records
			return nil
		})
	}
	// The goroutines swallow their errors, so the group cannot fail.
	_ = eg.Wait()

	var collected []*domain.PullRequestRecord
	for _, records := range results {
		collected = append(collected, records...)
	}
	c.logger.Infof("collected %d pull requests", len(collected))
	return collected
}
