package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionBusy is returned when a session is started while another one is active
	ErrSessionBusy = errors.New("another operation is in progress")
	// ErrNoActiveSession is returned when there is nothing to append to, finish or cancel
	ErrNoActiveSession = errors.New("no operation in progress")
)

// SessionAction is the kind of multi-message administrative action
type SessionAction int

const (
	ActionAddNumber SessionAction = iota + 1
	ActionBroadcast
)

func (a SessionAction) String() string {
	switch a {
	case ActionAddNumber:
		return "add_number"
	case ActionBroadcast:
		return "broadcast"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// SessionState is the observable state of a session
type SessionState string

const (
	StateIdle         SessionState = "idle"
	StateAddingNumber SessionState = "adding_number"
	StateBroadcasting SessionState = "broadcasting"
)

// OutcomeKind tells the caller what finishing a session did
type OutcomeKind int

const (
	OutcomeNumberAdded OutcomeKind = iota + 1
	OutcomeNumberDeleted
	OutcomeBroadcastReady
)

// FinishOutcome is the result of a successful Finish.
// Key is set for number outcomes, Reply for OutcomeBroadcastReady.
type FinishOutcome struct {
	Kind  OutcomeKind
	Key   PhonebookKey
	Reply Reply
}

// PersistFunc stores reply under key; an empty reply deletes the entry
type PersistFunc func(key PhonebookKey, reply Reply) error

// Session tracks one user's in-progress administrative action.
// A nil action means idle. Session is not safe for concurrent use;
// callers serialize access per user.
type Session struct {
	action    *SessionAction
	targetKey *PhonebookKey
	buffer    []ContentPart
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{}
}

// State returns the current state
func (s *Session) State() SessionState {
	s.checkInvariants()
	if s.action == nil {
		return StateIdle
	}
	switch *s.action {
	case ActionAddNumber:
		return StateAddingNumber
	case ActionBroadcast:
		return StateBroadcasting
	}
	panic(fmt.Sprintf("session: unknown action %v", *s.action))
}

// Action returns the active action, if any
func (s *Session) Action() (SessionAction, bool) {
	if s.action == nil {
		return 0, false
	}
	return *s.action, true
}

// TargetKey returns the phonebook key being edited by an AddNumber session
func (s *Session) TargetKey() (PhonebookKey, bool) {
	if s.targetKey == nil {
		return PhonebookKey{}, false
	}
	return *s.targetKey, true
}

// Buffered returns the number of parts collected so far
func (s *Session) Buffered() int {
	return len(s.buffer)
}

// Reply assembles the collected parts
func (s *Session) Reply() Reply {
	return NewReply(s.buffer...)
}

// StartAddNumber begins collecting the reply for key
func (s *Session) StartAddNumber(key PhonebookKey) error {
	if s.action != nil {
		return ErrSessionBusy
	}
	action := ActionAddNumber
	key = NewPhonebookKey(key.Phone, key.Password)
	s.action = &action
	s.targetKey = &key
	s.buffer = nil
	s.checkInvariants()
	return nil
}

// StartBroadcast begins collecting an announcement
func (s *Session) StartBroadcast() error {
	if s.action != nil {
		return ErrSessionBusy
	}
	action := ActionBroadcast
	s.action = &action
	s.targetKey = nil
	s.buffer = nil
	s.checkInvariants()
	return nil
}

// Append adds part to the end of the buffer
func (s *Session) Append(part ContentPart) error {
	if s.action == nil {
		return ErrNoActiveSession
	}
	s.buffer = append(s.buffer, part)
	return nil
}

// Finish completes the active action and returns the session to idle.
// For AddNumber the collected reply is handed to persist; if persist fails
// the session is left untouched so the caller may retry or cancel.
// For Broadcast the reply is returned for the caller to deliver.
func (s *Session) Finish(persist PersistFunc) (FinishOutcome, error) {
	s.checkInvariants()
	if s.action == nil {
		return FinishOutcome{}, ErrNoActiveSession
	}

	reply := s.Reply()
	switch *s.action {
	case ActionAddNumber:
		key := *s.targetKey
		if err := persist(key, reply); err != nil {
			return FinishOutcome{}, err
		}
		s.reset()
		if reply.IsEmpty() {
			return FinishOutcome{Kind: OutcomeNumberDeleted, Key: key}, nil
		}
		return FinishOutcome{Kind: OutcomeNumberAdded, Key: key}, nil
	case ActionBroadcast:
		s.reset()
		return FinishOutcome{Kind: OutcomeBroadcastReady, Reply: reply}, nil
	}
	panic(fmt.Sprintf("session: unknown action %v", *s.action))
}

// Cancel abandons the active action without any persistence effect
func (s *Session) Cancel() error {
	if s.action == nil {
		return ErrNoActiveSession
	}
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.action = nil
	s.targetKey = nil
	s.buffer = nil
	s.checkInvariants()
}

// checkInvariants panics on states no sequence of operations can produce
func (s *Session) checkInvariants() {
	isAddNumber := s.action != nil && *s.action == ActionAddNumber
	if (s.targetKey != nil) != isAddNumber {
		panic("session: target key set iff action is add_number")
	}
	if s.action == nil && len(s.buffer) != 0 {
		panic("session: idle session with buffered content")
	}
}
