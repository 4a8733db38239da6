package domain

import (
	"path"
	"strings"
)

// branchPair is an unordered, lowercased pair of branch names.
type branchPair struct {
	a, b string
}

func newBranchPair(head, base string) branchPair {
	head = strings.ToLower(head)
	base = strings.ToLower(base)
	if head > base {
		head, base = base, head
	}
	return branchPair{a: head, b: base}
}

// syncBranchPairs lists the head/base combinations of routine
// branch-synchronization PRs. Membership is unordered: each pair excludes
// both directions.
var syncBranchPairs = map[branchPair]struct{}{
	newBranchPair("develop", "master"):      {},
	newBranchPair("main", "develop"):        {},
	newBranchPair("main", "deploy-to-main"): {},
}

// IsSyncBranchPair reports whether a head/base combination is a known
// branch-synchronization pattern. Matching is case-insensitive and symmetric:
// master→develop and develop→master are the same pair.
func IsSyncBranchPair(head, base string) bool {
	_, ok := syncBranchPairs[newBranchPair(head, base)]
	return ok
}

// IsExcludedPath reports whether a changed file is excluded from change
// totals. Each pattern is tried under one of three rules:
//
//   - a pattern starting with "." is a suffix match against the filename,
//     e.g. ".min.js" excludes "dist/bundle.min.js";
//   - a pattern ending with "/" matches when the path contains that
//     directory segment anywhere, e.g. "vendor/" excludes "a/vendor/b.go";
//   - any other pattern is a plain substring match on the whole path.
//
// A file matching any pattern by any rule is excluded.
func IsExcludedPath(filePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		switch {
		case strings.HasPrefix(pattern, "."):
			if strings.HasSuffix(path.Base(filePath), pattern) {
				return true
			}
		case strings.HasSuffix(pattern, "/"):
			if strings.Contains(filePath, pattern) {
				return true
			}
		default:
			if strings.Contains(filePath, pattern) {
				return true
			}
		}
	}
	return false
}
