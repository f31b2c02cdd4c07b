package service

import (
	"fmt"
	"sync"

	"phonequest/internal/domain"

	"go.uber.org/zap"
)

// NumberWriter persists phonebook replies; an empty reply deletes the entry
type NumberWriter interface {
	Upsert(phone string, password *string, reply domain.Reply) error
}

// userSession is one registry slot. mu serializes all operations on session.
type userSession struct {
	mu      sync.Mutex
	session *domain.Session
}

// SessionService is the registry of per-user administrative sessions.
// Different users proceed in parallel; one user's operations are serialized.
type SessionService struct {
	numbers NumberWriter
	logger  *zap.Logger

	slots   map[int64]*userSession
	slotMux sync.Mutex
}

// NewSessionService creates an empty session registry
func NewSessionService(numbers NumberWriter, logger *zap.Logger) *SessionService {
	return &SessionService{
		numbers: numbers,
		logger:  logger,
		slots:   make(map[int64]*userSession),
	}
}

// slot returns the user's slot, creating it if create is set.
// Slots are never removed; an idle session is simply inert.
func (s *SessionService) slot(userID int64, create bool) *userSession {
	s.slotMux.Lock()
	defer s.slotMux.Unlock()

	slot, exists := s.slots[userID]
	if !exists && create {
		slot = &userSession{session: domain.NewSession()}
		s.slots[userID] = slot
	}
	return slot
}

func (s *SessionService) withSession(userID int64, create bool, fn func(*domain.Session) error) error {
	slot := s.slot(userID, create)
	if slot == nil {
		return domain.ErrNoActiveSession
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	return fn(slot.session)
}

// StartAddNumber starts collecting the reply for (phone, password)
func (s *SessionService) StartAddNumber(userID int64, phone string, password *string) error {
	err := s.withSession(userID, true, func(sess *domain.Session) error {
		return sess.StartAddNumber(domain.NewPhonebookKey(phone, password))
	})
	if err == nil {
		s.logger.Info("Add number session started",
			zap.Int64("user_id", userID),
			zap.String("phone", phone),
		)
	}
	return err
}

// StartBroadcast starts collecting an announcement for captains
func (s *SessionService) StartBroadcast(userID int64) error {
	err := s.withSession(userID, true, func(sess *domain.Session) error {
		return sess.StartBroadcast()
	})
	if err == nil {
		s.logger.Info("Broadcast session started", zap.Int64("user_id", userID))
	}
	return err
}

// Append adds part to the user's active session
func (s *SessionService) Append(userID int64, part domain.ContentPart) error {
	return s.withSession(userID, false, func(sess *domain.Session) error {
		return sess.Append(part)
	})
}

// Finish completes the user's active session.
// Finishing AddNumber writes the phonebook before returning; finishing
// Broadcast returns the reply and leaves delivery to the caller.
func (s *SessionService) Finish(userID int64) (domain.FinishOutcome, error) {
	var outcome domain.FinishOutcome
	err := s.withSession(userID, false, func(sess *domain.Session) error {
		var err error
		outcome, err = sess.Finish(func(key domain.PhonebookKey, reply domain.Reply) error {
			return s.numbers.Upsert(key.Phone, key.Password, reply)
		})
		return err
	})
	if err != nil {
		return domain.FinishOutcome{}, fmt.Errorf("finish session: %w", err)
	}

	s.logger.Info("Session finished",
		zap.Int64("user_id", userID),
		zap.Int("outcome", int(outcome.Kind)),
	)
	return outcome, nil
}

// Cancel abandons the user's active session
func (s *SessionService) Cancel(userID int64) error {
	err := s.withSession(userID, false, func(sess *domain.Session) error {
		return sess.Cancel()
	})
	if err == nil {
		s.logger.Info("Session cancelled", zap.Int64("user_id", userID))
	}
	return err
}

// State returns the user's session state; users never seen are idle
func (s *SessionService) State(userID int64) domain.SessionState {
	state := domain.StateIdle
	_ = s.withSession(userID, false, func(sess *domain.Session) error {
		state = sess.State()
		return nil
	})
	return state
}

// Len returns the number of users with a registry slot
func (s *SessionService) Len() int {
	s.slotMux.Lock()
	defer s.slotMux.Unlock()
	return len(s.slots)
}
