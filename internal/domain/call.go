package domain

import (
	"fmt"
	"time"
)

// CallRecord is one /call attempt
type CallRecord struct {
	UserID   int64
	CalledAt time.Time
	Phone    string
	Password *string
}

// Key returns the phonebook key that was dialed
func (c CallRecord) Key() PhonebookKey {
	return NewPhonebookKey(c.Phone, c.Password)
}

// LeaderboardEntry is one captain's line on the leaderboard
type LeaderboardEntry struct {
	UserID   int64
	Username string
	Numbers  int // distinct existing numbers reached
}

// String formats entry as "username (user_id) — numbers"
func (e LeaderboardEntry) String() string {
	return fmt.Sprintf("%s (%d) — %d", e.Username, e.UserID, e.Numbers)
}

// ProgressEntry is the first call a captain made to a given key
type ProgressEntry struct {
	Phone    string
	Password *string
	CalledAt time.Time
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateString returns date in YYYY/MM/DD format
func DateString(t time.Time) string {
	return t.Format("2006/01/02")
}

// ElapsedString returns time since start as HH:MM:SS.
// Hours are not wrapped at 24.
func ElapsedString(start, t time.Time) string {
	total := int(t.Sub(start).Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// Alias is a human-readable name for an important number
type Alias struct {
	Phone string
	Name  string
}
