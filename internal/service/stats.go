package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"phonequest/internal/domain"
	"phonequest/internal/repository"

	"go.uber.org/zap"
)

// AliasNamer resolves display names for numbers
type AliasNamer interface {
	Name(phone string) (string, bool)
}

// StatsService handles the call log and progress reporting
type StatsService struct {
	callRepo repository.CallLogRepository
	aliases  AliasNamer
	location *time.Location
	logger   *zap.Logger
}

// NewStatsService creates a new stats service.
// Progress times are reported relative to midnight in location.
func NewStatsService(callRepo repository.CallLogRepository, aliases AliasNamer, location *time.Location, logger *zap.Logger) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		callRepo: callRepo,
		aliases:  aliases,
		location: location,
		logger:   logger,
	}
}

// LogCall records a call attempt
func (s *StatsService) LogCall(rec domain.CallRecord) error {
	if err := s.callRepo.LogCall(rec); err != nil {
		s.logger.Error("Failed to log call", zap.Error(err), zap.Int64("user_id", rec.UserID))
		return fmt.Errorf("failed to log call: %w", err)
	}
	return nil
}

// Status returns the number of calls the user has made
func (s *StatsService) Status(userID int64) (int, error) {
	return s.callRepo.CountCalls(userID)
}

// Leaderboard returns the leaderboard, one captain per line
func (s *StatsService) Leaderboard() (string, error) {
	entries, err := s.callRepo.Leaderboard()
	if err != nil {
		return "", fmt.Errorf("failed to build leaderboard: %w", err)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n"), nil
}

// ProgressReport is a captain's progress since the day of their first call
type ProgressReport struct {
	Start time.Time
	Rows  [][]string
}

// Empty reports whether the captain has made no calls
func (r ProgressReport) Empty() bool {
	return len(r.Rows) == 0
}

// Table renders rows as left-aligned, space-separated columns
func (r ProgressReport) Table() string {
	var widths []int
	for _, row := range r.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	lines := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// Progress builds the progress report for a captain
func (s *StatsService) Progress(userID int64) (ProgressReport, error) {
	entries, err := s.callRepo.Progress(userID)
	if err != nil {
		return ProgressReport{}, fmt.Errorf("failed to load progress: %w", err)
	}
	if len(entries) == 0 {
		return ProgressReport{}, nil
	}

	first := entries[0].CalledAt
	for _, e := range entries[1:] {
		if e.CalledAt.Before(first) {
			first = e.CalledAt
		}
	}
	start := domain.StartOfDay(first.In(s.location))

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		alias := " "
		if name, ok := s.aliases.Name(e.Phone); ok {
			alias = name
		}
		password := " "
		if e.Password != nil {
			password = *e.Password
		}
		rows = append(rows, []string{alias, e.Phone, password, "—", domain.ElapsedString(start, e.CalledAt)})
	}

	return ProgressReport{Start: start, Rows: rows}, nil
}
