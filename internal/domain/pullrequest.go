// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// PullRequestRecord is the core entity of the report: one pull request opened
// by a tracked author. The search step creates it partially filled; the
// enrichment step attaches the repository name, normalized branch names and
// change counts. After enrichment the record is read-only.
//
// Additions and Deletions are pointers because "no data" (a failed or skipped
// enrichment) is distinct from a genuine zero count. They are always set
// together: a record has either both counts or neither.
type PullRequestRecord struct {
	Repo        string     `json:"repo,omitempty"`
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Author      string     `json:"author"`
	URL         string     `json:"url"`
	Additions   *int       `json:"additions,omitempty"`
	Deletions   *int       `json:"deletions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	MergedAt    *time.Time `json:"merged_at,omitempty"`
	HeadBranch  string     `json:"head_branch,omitempty"`
	BaseBranch  string     `json:"base_branch,omitempty"`
}

// HasChangeCounts reports whether enrichment attached both change counts.
func (r *PullRequestRecord) HasChangeCounts() bool {
	return r.Additions != nil && r.Deletions != nil
}

// TotalChanges is the combined change volume, treating absent counts as zero.
func (r *PullRequestRecord) TotalChanges() int {
	total := 0
	if r.Additions != nil {
		total += *r.Additions
	}
	if r.Deletions != nil {
		total += *r.Deletions
	}
	return total
}

// SetChangeCounts attaches both counts at once, keeping the
// both-or-neither invariant in one place.
func (r *PullRequestRecord) SetChangeCounts(additions, deletions int) {
	r.Additions = &additions
	r.Deletions = &deletions
}
