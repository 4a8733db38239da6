package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"

	"github.com/haritsf/pr-report/internal/domain"
)

// topN is how many entries the top-PR and top-repository rankings keep.
const topN = 5

// Aggregator turns the final record collection into the report summary.
type Aggregator struct {
	logger *logrus.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(logger *logrus.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Summarize computes per-author totals, overall totals and the top-N
// rankings. All sorts are stable: ties keep configured-author order,
// input order and first-encountered repository order respectively.
func (a *Aggregator) Summarize(records []*domain.PullRequestRecord, authors []string) *domain.Summary {
	summary := &domain.Summary{
		Overall:         a.overallStats(records),
		AuthorStats:     a.authorStats(records, authors),
		TopPullRequests: a.topPullRequests(records),
		TopRepos:        a.topRepos(records),
	}
	a.logger.Debugf("summarized %d pull requests for %d authors", len(records), len(authors))
	return summary
}

// authorStats yields one entry per configured author, in descending order of
// total change volume. Authors without a single PR in the window still appear
// with zero counts.
func (a *Aggregator) authorStats(records []*domain.PullRequestRecord, authors []string) []*domain.AuthorStat {
	byAuthor := make(map[string]*domain.AuthorStat, len(authors))
	authorStats := make([]*domain.AuthorStat, 0, len(authors))
	for _, author := range authors {
		stat := &domain.AuthorStat{Author: author}
		byAuthor[author] = stat
		authorStats = append(authorStats, stat)
	}

	for _, record := range records {
		stat, ok := byAuthor[record.Author]
		if !ok {
			// Records only come from configured-author searches.
			continue
		}
		stat.PullRequests++
		if record.Additions != nil {
			stat.Additions += *record.Additions
		}
		if record.Deletions != nil {
			stat.Deletions += *record.Deletions
		}
	}
	for _, stat := range authorStats {
		stat.TotalChanges = stat.Additions + stat.Deletions
	}

	sort.SliceStable(authorStats, func(i, j int) bool {
		return authorStats[i].TotalChanges > authorStats[j].TotalChanges
	})
	return authorStats
}

// topPullRequests ranks records by change volume. Records missing their
// change counts (the fail-soft leftovers) cannot be ranked and are left out.
func (a *Aggregator) topPullRequests(records []*domain.PullRequestRecord) []*domain.PullRequestRecord {
	ranked := make([]*domain.PullRequestRecord, 0, len(records))
	for _, record := range records {
		if record.HasChangeCounts() {
			ranked = append(ranked, record)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalChanges() > ranked[j].TotalChanges()
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// topRepos groups records by repository name and ranks the groups by summed
// change volume, absent counts contributing zero. Records without a repository
// name (never enriched) have nothing to group under and are skipped.
func (a *Aggregator) topRepos(records []*domain.PullRequestRecord) []*domain.RepoStat {
	byRepo := make(map[string]*domain.RepoStat)
	repoStats := make([]*domain.RepoStat, 0)
	for _, record := range records {
		if record.Repo == "" {
			continue
		}
		stat, ok := byRepo[record.Repo]
		if !ok {
			stat = &domain.RepoStat{Name: record.Repo}
			byRepo[record.Repo] = stat
			repoStats = append(repoStats, stat)
		}
		stat.TotalChanges += record.TotalChanges()
	}

	sort.SliceStable(repoStats, func(i, j int) bool {
		return repoStats[i].TotalChanges > repoStats[j].TotalChanges
	})
	if len(repoStats) > topN {
		repoStats = repoStats[:topN]
	}
	return repoStats
}

// overallStats computes the report-wide totals. Mean and median change volume
// consider only records carrying counts, so a run of unenriched records does
// not drag the averages to zero.
func (a *Aggregator) overallStats(records []*domain.PullRequestRecord) domain.OverallStats {
	overall := domain.OverallStats{PullRequests: len(records)}

	changeTotals := make([]float64, 0, len(records))
	for _, record := range records {
		if record.MergedAt != nil {
			overall.MergedPullRequests++
		} else {
			overall.OpenPullRequests++
		}
		if record.Additions != nil {
			overall.Additions += *record.Additions
		}
		if record.Deletions != nil {
			overall.Deletions += *record.Deletions
		}
		if record.HasChangeCounts() {
			changeTotals = append(changeTotals, float64(record.TotalChanges()))
		}
	}
	overall.TotalChanges = overall.Additions + overall.Deletions

	if len(changeTotals) > 0 {
		overall.AverageChanges, _ = stats.Mean(changeTotals)
		overall.MedianChanges, _ = stats.Median(changeTotals)
	}
	return overall
}
