package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "2024/12/12",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024/01/01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateString(tt.date))
		})
	}
}

func TestElapsedString(t *testing.T) {
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{
			name:     "midnight",
			at:       start,
			expected: "00:00:00",
		},
		{
			name:     "afternoon",
			at:       time.Date(2024, 6, 15, 14, 5, 9, 0, time.UTC),
			expected: "14:05:09",
		},
		{
			name:     "next day keeps counting hours",
			at:       time.Date(2024, 6, 16, 1, 0, 0, 0, time.UTC),
			expected: "25:00:00",
		},
		{
			name:     "before start clamps to zero",
			at:       start.Add(-time.Minute),
			expected: "00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ElapsedString(start, tt.at))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, 6, 15, 14, 5, 9, 123, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), StartOfDay(at))
}

func TestLeaderboardEntry_String(t *testing.T) {
	e := LeaderboardEntry{UserID: 42, Username: "alpha", Numbers: 7}
	assert.Equal(t, "alpha (42) — 7", e.String())
}

func TestCallRecord_Key(t *testing.T) {
	pw := "x"
	rec := CallRecord{UserID: 1, Phone: "123", Password: &pw}

	key := rec.Key()
	assert.True(t, key.Equal(NewPhonebookKey("123", &pw)))

	pw = "changed"
	assert.Equal(t, "x", *key.Password)
}
