package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLongDate(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "monday in january",
			date:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			expected: "Senin, 5 Januari 2026",
		},
		{
			name:     "saturday in august",
			date:     time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC),
			expected: "Sabtu, 17 Agustus 2024",
		},
		{
			name:     "thursday in december",
			date:     time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			expected: "Kamis, 25 Desember 2024",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatLongDate(tc.date))
		})
	}
}

func TestFormatLongDateTime(t *testing.T) {
	date := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "Senin, 5 Januari 2026 14:30", FormatLongDateTime(date))
}
