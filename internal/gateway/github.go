// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/haritsf/pr-report/internal/domain"
)

// userAgent identifies this tool on every outbound request.
const userAgent = "pr-report"

// PullRequestDetail holds the fields of a single PR detail response that the
// enrichment pipeline needs: the inclusion test (state/merged-at) and the
// branch refs.
type PullRequestDetail struct {
	State      string
	MergedAt   *time.Time
	HeadBranch string
	BaseBranch string
}

// FileChange holds the change statistics of one file of a pull request. It is
// ephemeral: produced per PR, consumed by the change-total calculation, and
// not retained afterwards.
type FileChange struct {
	Filename  string
	Additions int
	Deletions int
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// SearchPullRequests returns the partial records of all pull requests the
	// author created in the organization, filtered by the dateRange fragment.
	SearchPullRequests(ctx context.Context, org, author, dateRange string) ([]*domain.PullRequestRecord, error)
	// FetchPullRequestDetail returns the state, merge timestamp and branch
	// refs of a single pull request.
	FetchPullRequestDetail(ctx context.Context, owner, repo string, number int) (*PullRequestDetail, error)
	// FetchPullRequestFiles returns the changed files of a single pull request.
	FetchPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]FileChange, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *logrus.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The client authenticates every request with the supplied token and waits out
// secondary rate limits at the transport level.
func NewGitHubGateway(token string, logger *logrus.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	return &GitHubGateway{
		restClient: client,
		logger:     logger,
	}, nil
}

// SearchPullRequests issues one search request for the author. Only the first
// page is fetched: result sets beyond per_page are silently truncated.
func (g *GitHubGateway) SearchPullRequests(ctx context.Context, org, author, dateRange string) ([]*domain.PullRequestRecord, error) {
	query := fmt.Sprintf("org:%s author:%s is:pr%s", org, author, dateRange)
	g.logger.Debugf("searching pull requests: %s", query)

	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 100}}
	result, _, err := g.restClient.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search pull requests for %s: %w", author, err)
	}

	records := make([]*domain.PullRequestRecord, 0, len(result.Issues))
	for _, issue := range result.Issues {
		record := &domain.PullRequestRecord{
			Number:      issue.GetNumber(),
			Title:       issue.GetTitle(),
			Description: issue.GetBody(),
			Author:      issue.GetUser().GetLogin(),
			URL:         issue.GetHTMLURL(),
			CreatedAt:   issue.GetCreatedAt().Time,
		}
		if issue.ClosedAt != nil {
			closedAt := issue.ClosedAt.Time
			record.MergedAt = &closedAt
		}
		records = append(records, record)
	}
	g.logger.Debugf("found %d pull requests for %s", len(records), author)
	return records, nil
}

// FetchPullRequestDetail fetches the full detail of one pull request.
func (g *GitHubGateway) FetchPullRequestDetail(ctx context.Context, owner, repo string, number int) (*PullRequestDetail, error) {
	pr, _, err := g.restClient.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch detail of %s/%s#%d: %w", owner, repo, number, err)
	}

	detail := &PullRequestDetail{
		State:      pr.GetState(),
		HeadBranch: pr.GetHead().GetRef(),
		BaseBranch: pr.GetBase().GetRef(),
	}
	if pr.MergedAt != nil {
		mergedAt := pr.MergedAt.Time
		detail.MergedAt = &mergedAt
	}
	return detail, nil
}

// FetchPullRequestFiles fetches the changed files of one pull request. A nil
// ListOptions keeps the API's default page size; PRs with more changed files
// than one page under-count, which is an accepted scope limitation.
func (g *GitHubGateway) FetchPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]FileChange, error) {
	files, _, err := g.restClient.PullRequests.ListFiles(ctx, owner, repo, number, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch files of %s/%s#%d: %w", owner, repo, number, err)
	}

	changes := make([]FileChange, 0, len(files))
	for _, file := range files {
		changes = append(changes, FileChange{
			Filename:  file.GetFilename(),
			Additions: file.GetAdditions(),
			Deletions: file.GetDeletions(),
		})
	}
	return changes, nil
}
