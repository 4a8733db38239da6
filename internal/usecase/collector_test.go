package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haritsf/pr-report/internal/domain"
	"github.com/haritsf/pr-report/internal/gateway"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) SearchPullRequests(ctx context.Context, org, author, dateRange string) ([]*domain.PullRequestRecord, error) {
	args := m.Called(ctx, org, author, dateRange)
	// We need to handle the case where the returned slice is nil (e.g., when an error occurs).
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PullRequestRecord), args.Error(1)
}

func (m *mockFetcher) FetchPullRequestDetail(ctx context.Context, owner, repo string, number int) (*gateway.PullRequestDetail, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PullRequestDetail), args.Error(1)
}

func (m *mockFetcher) FetchPullRequestFiles(ctx context.Context, owner, repo string, number int) ([]gateway.FileChange, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gateway.FileChange), args.Error(1)
}

// TestCollector_Collect uses a table-driven approach to test the collector.
func TestCollector_Collect(t *testing.T) {
	const dateRange = " created:2024-01-01..2024-01-31"

	testCases := []struct {
		name        string
		authors     []string
		mockRecords map[string][]*domain.PullRequestRecord
		mockErrs    map[string]error
		expected    []*domain.PullRequestRecord
	}{
		{
			name:    "happy path - concatenates per-author results in author order",
			authors: []string{"alice", "bob"},
			mockRecords: map[string][]*domain.PullRequestRecord{
				"alice": {{Number: 1, Author: "alice"}, {Number: 2, Author: "alice"}},
				"bob":   {{Number: 3, Author: "bob"}},
			},
			expected: []*domain.PullRequestRecord{
				{Number: 1, Author: "alice"},
				{Number: 2, Author: "alice"},
				{Number: 3, Author: "bob"},
			},
		},
		{
			name:    "error case - one failed search does not affect the others",
			authors: []string{"alice", "bob"},
			mockRecords: map[string][]*domain.PullRequestRecord{
				"bob": {{Number: 3, Author: "bob"}},
			},
			mockErrs: map[string]error{
				"alice": errors.New("github api error"),
			},
			expected: []*domain.PullRequestRecord{
				{Number: 3, Author: "bob"},
			},
		},
		{
			name:    "error case - every search fails",
			authors: []string{"alice", "bob"},
			mockErrs: map[string]error{
				"alice": errors.New("github api error"),
				"bob":   errors.New("github api error"),
			},
			expected: nil,
		},
		{
			name:     "empty case - no authors configured",
			authors:  []string{},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			fetcher := new(mockFetcher)
			for _, author := range tc.authors {
				fetcher.On("SearchPullRequests", mock.Anything, "acme", author, dateRange).
					Return(tc.mockRecords[author], tc.mockErrs[author])
			}

			collector := NewCollector(fetcher, logger)
			records := collector.Collect(context.Background(), "acme", tc.authors, dateRange)

			assert.Equal(t, tc.expected, records)
			fetcher.AssertExpectations(t)
		})
	}
}
