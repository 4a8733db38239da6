package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/haritsf/pr-report/internal/domain"
	"github.com/haritsf/pr-report/internal/gateway"
)

// Enricher attaches repository, branch and change-count data to the partial
// records coming out of the search step, and drops the records the report
// must not contain.
type Enricher struct {
	fetcher          gateway.Fetcher
	logger           *logrus.Logger
	excludedPatterns []string
}

// NewEnricher creates a new Enricher instance. excludedPatterns are the
// file-path patterns whose changes do not count towards a PR's totals.
func NewEnricher(fetcher gateway.Fetcher, logger *logrus.Logger, excludedPatterns []string) *Enricher {
	return &Enricher{
		fetcher:          fetcher,
		logger:           logger,
		excludedPatterns: excludedPatterns,
	}
}

// Enrich processes all records at once, one request flow per record. Two
// different things remove a record from the output and must not be confused:
// policy exclusions (closed-and-unmerged state, sync-branch pairs) discard it
// deliberately, while fetch failures keep it with whatever data was attached
// before the failure (fail-soft). Input order is preserved for the survivors.
func (e *Enricher) Enrich(ctx context.Context, records []*domain.PullRequestRecord) []*domain.PullRequestRecord {
	e.logger.Infof("enriching %d pull requests", len(records))

	// One slot per record; nil marks a policy discard.
	slots := make([]*domain.PullRequestRecord, len(records))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, record := range records {
		eg.Go(func() error {
			slots[i] = e.enrichOne(egCtx, record)
			return nil
		})
	}
	// enrichOne never fails the group: failures degrade the record instead.
	_ = eg.Wait()

	enriched := make([]*domain.PullRequestRecord, 0, len(records))
	for _, record := range slots {
		if record != nil {
			enriched = append(enriched, record)
		}
	}
	e.logger.Infof("kept %d of %d pull requests after enrichment", len(enriched), len(records))
	return enriched
}

// enrichOne runs the enrichment steps for a single record. It mutates the
// record as each step succeeds, so on failure everything attached so far
// survives on the returned record.
func (e *Enricher) enrichOne(ctx context.Context, record *domain.PullRequestRecord) *domain.PullRequestRecord {
	owner, repo, err := parseRepoURL(record.URL)
	if err != nil {
		e.logger.Warnf("keeping %s#%d unenriched: %v", record.Author, record.Number, err)
		return record
	}
	record.Repo = repo

	detail, err := e.fetcher.FetchPullRequestDetail(ctx, owner, repo, record.Number)
	if err != nil {
		e.logger.Warnf("keeping %s/%s#%d partially enriched: %v", owner, repo, record.Number, err)
		return record
	}
	// Only open or merged PRs are reportable; closed-and-unmerged ones are not.
	if detail.State != "open" && detail.MergedAt == nil {
		e.logger.Debugf("dropping %s/%s#%d: closed without merge", owner, repo, record.Number)
		return nil
	}

	record.HeadBranch = strings.ToLower(detail.HeadBranch)
	record.BaseBranch = strings.ToLower(detail.BaseBranch)
	if domain.IsSyncBranchPair(record.HeadBranch, record.BaseBranch) {
		e.logger.Debugf("dropping %s/%s#%d: branch sync %s into %s", owner, repo, record.Number, record.HeadBranch, record.BaseBranch)
		return nil
	}

	files, err := e.fetcher.FetchPullRequestFiles(ctx, owner, repo, record.Number)
	if err != nil {
		e.logger.Warnf("keeping %s/%s#%d partially enriched: %v", owner, repo, record.Number, err)
		return record
	}
	additions, deletions := 0, 0
	for _, file := range files {
		if domain.IsExcludedPath(file.Filename, e.excludedPatterns) {
			continue
		}
		additions += file.Additions
		deletions += file.Deletions
	}
	record.SetChangeCounts(additions, deletions)
	return record
}

// parseRepoURL extracts owner and repository from a pull request's web URL.
// This is a positional parse of the fixed shape
// https://<host>/<owner>/<repo>/pull/<number>, not a general URL parser.
func parseRepoURL(rawURL string) (owner, repo string, err error) {
	segments := strings.Split(rawURL, "/")
	if len(segments) < 5 || segments[3] == "" || segments[4] == "" {
		return "", "", fmt.Errorf("cannot parse owner/repo from URL %q", rawURL)
	}
	return segments[3], segments[4], nil
}
