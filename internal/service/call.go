package service

import (
	"errors"
	"time"

	"phonequest/internal/domain"
)

// ErrNetworkPaused is returned for calls made while the game is paused
var ErrNetworkPaused = errors.New("phone network is paused")

// PhonebookReader resolves dialed keys
type PhonebookReader interface {
	Lookup(phone string, password *string) (domain.Reply, bool)
}

// PauseChecker reports whether calls are disabled
type PauseChecker interface {
	IsPaused() bool
}

// CallLogger records call attempts
type CallLogger interface {
	LogCall(rec domain.CallRecord) error
}

// CallService answers captains' calls
type CallService struct {
	phonebook PhonebookReader
	pause     PauseChecker
	calls     CallLogger
}

// NewCallService creates a new call service
func NewCallService(phonebook PhonebookReader, pause PauseChecker, calls CallLogger) *CallService {
	return &CallService{
		phonebook: phonebook,
		pause:     pause,
		calls:     calls,
	}
}

// Call logs the attempt and returns the reply stored for the dialed key.
// found is false when nobody answers. Paused calls are neither logged nor answered.
func (s *CallService) Call(userID int64, at time.Time, phone string, password *string) (reply domain.Reply, found bool, err error) {
	if s.pause.IsPaused() {
		return domain.Reply{}, false, ErrNetworkPaused
	}

	if err := s.calls.LogCall(domain.CallRecord{
		UserID:   userID,
		CalledAt: at,
		Phone:    phone,
		Password: password,
	}); err != nil {
		return domain.Reply{}, false, err
	}

	reply, found = s.phonebook.Lookup(phone, password)
	return reply, found, nil
}
