package domain

// AuthorStat holds the aggregated activity of a single tracked author.
// Every configured author gets an entry, including authors with no
// pull requests in the report window.
type AuthorStat struct {
	Author       string `json:"author"`
	PullRequests int    `json:"pull_requests"`
	Additions    int    `json:"additions"`
	Deletions    int    `json:"deletions"`
	TotalChanges int    `json:"total_changes"`
}

// RepoStat holds the combined change volume of a single repository.
type RepoStat struct {
	Name         string `json:"name"`
	TotalChanges int    `json:"total_changes"`
}

// OverallStats holds the report-wide totals shown at the top of the summary
// sheet. Average and median change volume consider only records that carry
// change counts.
type OverallStats struct {
	PullRequests       int     `json:"pull_requests"`
	MergedPullRequests int     `json:"merged_pull_requests"`
	OpenPullRequests   int     `json:"open_pull_requests"`
	Additions          int     `json:"additions"`
	Deletions          int     `json:"deletions"`
	TotalChanges       int     `json:"total_changes"`
	AverageChanges     float64 `json:"average_changes"`
	MedianChanges      float64 `json:"median_changes"`
}

// Summary is the aggregated view of one report run, recomputed fresh from the
// final record collection.
type Summary struct {
	Overall         OverallStats         `json:"overall"`
	AuthorStats     []*AuthorStat        `json:"author_stats"`
	TopPullRequests []*PullRequestRecord `json:"top_pull_requests"`
	TopRepos        []*RepoStat          `json:"top_repos"`
}
