package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullRequestRecord_ChangeCounts(t *testing.T) {
	record := &PullRequestRecord{Repo: "widget", Number: 7}

	// A record fresh from the search carries no counts at all.
	assert.False(t, record.HasChangeCounts())
	assert.Equal(t, 0, record.TotalChanges())

	record.SetChangeCounts(3, 4)

	assert.True(t, record.HasChangeCounts())
	assert.Equal(t, 7, record.TotalChanges())
	require.NotNil(t, record.Additions)
	require.NotNil(t, record.Deletions)
	assert.Equal(t, 3, *record.Additions)
	assert.Equal(t, 4, *record.Deletions)
}

func TestPullRequestRecord_ZeroCountsAreStillCounts(t *testing.T) {
	record := &PullRequestRecord{Repo: "widget", Number: 7}
	record.SetChangeCounts(0, 0)

	// Counted-as-zero is not the same as never counted.
	assert.True(t, record.HasChangeCounts())
	assert.Equal(t, 0, record.TotalChanges())
}
