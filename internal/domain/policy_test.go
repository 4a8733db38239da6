package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSyncBranchPair(t *testing.T) {
	testCases := []struct {
		name     string
		head     string
		base     string
		expected bool
	}{
		{name: "develop into master", head: "develop", base: "master", expected: true},
		{name: "master into develop - reversed direction still matches", head: "master", base: "develop", expected: true},
		{name: "develop into main", head: "develop", base: "main", expected: true},
		{name: "main into develop", head: "main", base: "develop", expected: true},
		{name: "deploy-to-main into main", head: "deploy-to-main", base: "main", expected: true},
		{name: "main into deploy-to-main", head: "main", base: "deploy-to-main", expected: true},
		{name: "matching is case-insensitive", head: "DEVELOP", base: "Master", expected: true},
		{name: "feature branch into main is not a sync", head: "feature-x", base: "main", expected: false},
		{name: "feature branch into develop is not a sync", head: "feature-x", base: "develop", expected: false},
		{name: "master into main is not a known pair", head: "master", base: "main", expected: false},
		{name: "empty branches are not a pair", head: "", base: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSyncBranchPair(tc.head, tc.base))
		})
	}
}

func TestIsExcludedPath(t *testing.T) {
	testCases := []struct {
		name     string
		filePath string
		patterns []string
		expected bool
	}{
		{
			name:     "dot pattern matches the filename suffix",
			filePath: "dist/bundle.min.js",
			patterns: []string{".min.js"},
			expected: true,
		},
		{
			name:     "dot pattern is a suffix match, not a substring match",
			filePath: "assets/x.min.js.map",
			patterns: []string{".min.js"},
			expected: false,
		},
		{
			name:     "dot pattern matches a bare lockfile name",
			filePath: "yarn.lock",
			patterns: []string{".lock"},
			expected: true,
		},
		{
			name:     "directory pattern matches anywhere in the path",
			filePath: "pkg/a/vendor/b.go",
			patterns: []string{"vendor/"},
			expected: true,
		},
		{
			name:     "directory pattern needs the trailing slash in the path",
			filePath: "pkg/vendor.go",
			patterns: []string{"vendor/"},
			expected: false,
		},
		{
			name:     "directory pattern matches the minified bundle by its directory",
			filePath: "dist/bundle.min.js",
			patterns: []string{"dist/"},
			expected: true,
		},
		{
			name:     "plain pattern is a substring match",
			filePath: "web/package-lock.json",
			patterns: []string{"package-lock.json"},
			expected: true,
		},
		{
			name:     "unmatched source file stays included",
			filePath: "internal/app/main.go",
			patterns: []string{".min.js", "dist/", "package-lock.json"},
			expected: false,
		},
		{
			name:     "empty patterns are skipped",
			filePath: "internal/app/main.go",
			patterns: []string{""},
			expected: false,
		},
		{
			name:     "no patterns excludes nothing",
			filePath: "dist/bundle.min.js",
			patterns: nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsExcludedPath(tc.filePath, tc.patterns))
		})
	}
}
