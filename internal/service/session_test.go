package service

import (
	"fmt"
	"sync"
	"testing"

	"phonequest/internal/domain"
	"phonequest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const adminID int64 = 1

func newSessionFixture(t *testing.T, entries ...domain.PhonebookEntry) (*SessionService, *PhonebookService, *testutil.MemoryPhonebookRepository) {
	t.Helper()
	phonebook, repo := newMemoryPhonebook(t, entries...)
	return NewSessionService(phonebook, testutil.NewTestLogger()), phonebook, repo
}

func TestSessionService_AddNumberRoundTrip(t *testing.T) {
	sessions, phonebook, _ := newSessionFixture(t)

	require.NoError(t, sessions.StartAddNumber(adminID, "100", nil))
	require.NoError(t, sessions.Append(adminID, domain.Text("hi")))

	outcome, err := sessions.Finish(adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNumberAdded, outcome.Kind)

	got, ok := phonebook.Lookup("100", nil)
	assert.True(t, ok)
	assert.Equal(t, domain.NewReply(domain.Text("hi")), got)
	assert.Equal(t, domain.StateIdle, sessions.State(adminID))
}

func TestSessionService_EmptyFinishDeletes(t *testing.T) {
	sessions, phonebook, _ := newSessionFixture(t, domain.PhonebookEntry{
		Key:   domain.NewPhonebookKey("100", nil),
		Reply: domain.NewReply(domain.Text("old")),
	})

	require.NoError(t, sessions.StartAddNumber(adminID, "100", nil))

	outcome, err := sessions.Finish(adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNumberDeleted, outcome.Kind)

	_, ok := phonebook.Lookup("100", nil)
	assert.False(t, ok)
}

func TestSessionService_CancelLeavesPhonebookUnchanged(t *testing.T) {
	sessions, phonebook, repo := newSessionFixture(t, domain.PhonebookEntry{
		Key:   domain.NewPhonebookKey("100", nil),
		Reply: domain.NewReply(domain.Text("old")),
	})
	before, err := repo.LoadAll()
	require.NoError(t, err)

	require.NoError(t, sessions.StartAddNumber(adminID, "100", nil))
	for i := 0; i < 5; i++ {
		require.NoError(t, sessions.Append(adminID, domain.Text(fmt.Sprintf("part %d", i))))
	}
	require.NoError(t, sessions.Cancel(adminID))

	after, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 0, repo.Writes)

	got, ok := phonebook.Lookup("100", nil)
	assert.True(t, ok)
	assert.Equal(t, domain.NewReply(domain.Text("old")), got)
}

func TestSessionService_BusyLeavesSessionUntouched(t *testing.T) {
	sessions, _, _ := newSessionFixture(t)

	require.NoError(t, sessions.StartAddNumber(adminID, "100", nil))
	require.NoError(t, sessions.Append(adminID, domain.Text("keep me")))

	assert.ErrorIs(t, sessions.StartBroadcast(adminID), domain.ErrSessionBusy)
	assert.ErrorIs(t, sessions.StartAddNumber(adminID, "200", nil), domain.ErrSessionBusy)
	assert.Equal(t, domain.StateAddingNumber, sessions.State(adminID))

	outcome, err := sessions.Finish(adminID)
	require.NoError(t, err)
	assert.True(t, outcome.Key.Equal(domain.NewPhonebookKey("100", nil)))
}

func TestSessionService_IdleOperations(t *testing.T) {
	sessions, _, _ := newSessionFixture(t)

	assert.ErrorIs(t, sessions.Append(adminID, domain.Text("hi")), domain.ErrNoActiveSession)
	assert.ErrorIs(t, sessions.Cancel(adminID), domain.ErrNoActiveSession)
	_, err := sessions.Finish(adminID)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	assert.Equal(t, domain.StateIdle, sessions.State(adminID))
	assert.Equal(t, 0, sessions.Len())
}

func TestSessionService_SlotsPersistAfterIdle(t *testing.T) {
	sessions, _, _ := newSessionFixture(t)

	require.NoError(t, sessions.StartBroadcast(adminID))
	require.NoError(t, sessions.Cancel(adminID))

	assert.Equal(t, 1, sessions.Len())
	assert.ErrorIs(t, sessions.Append(adminID, domain.Text("late")), domain.ErrNoActiveSession)
}

func TestSessionService_UsersAreIndependent(t *testing.T) {
	sessions, _, _ := newSessionFixture(t)

	require.NoError(t, sessions.StartBroadcast(1))
	require.NoError(t, sessions.StartAddNumber(2, "100", nil))
	require.NoError(t, sessions.Append(1, domain.Text("for captains")))

	assert.Equal(t, domain.StateBroadcasting, sessions.State(1))
	assert.Equal(t, domain.StateAddingNumber, sessions.State(2))

	outcome, err := sessions.Finish(1)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeBroadcastReady, outcome.Kind)
	assert.Equal(t, domain.NewReply(domain.Text("for captains")), outcome.Reply)
	assert.Equal(t, domain.StateAddingNumber, sessions.State(2))
}

func TestSessionService_FinishStorageErrorKeepsSession(t *testing.T) {
	mockRepo := new(testutil.MockPhonebookRepository)
	mockRepo.On("Replace", mock.Anything, mock.Anything).Return(fmt.Errorf("db error"))

	phonebook := NewPhonebookService(mockRepo, testutil.NewTestLogger())
	sessions := NewSessionService(phonebook, testutil.NewTestLogger())

	require.NoError(t, sessions.StartAddNumber(adminID, "100", nil))
	require.NoError(t, sessions.Append(adminID, domain.Text("hi")))

	_, err := sessions.Finish(adminID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Equal(t, domain.StateAddingNumber, sessions.State(adminID))
	mockRepo.AssertExpectations(t)
}

// TestSessionServiceConcurrentOperationsProperty fires random operations for
// one user from many goroutines and checks the registry ends in a consistent state
func TestSessionServiceConcurrentOperationsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := testutil.NewMemoryPhonebookRepository()
		phonebook := NewPhonebookService(repo, testutil.NewTestLogger())
		sessions := NewSessionService(phonebook, testutil.NewTestLogger())

		ops := rapid.SliceOfN(rapid.SampledFrom([]string{"add", "broadcast", "append", "finish", "cancel"}), 2, 50).Draw(t, "ops")

		var wg sync.WaitGroup
		wg.Add(len(ops))
		for i, op := range ops {
			go func(i int, op string) {
				defer wg.Done()
				switch op {
				case "add":
					_ = sessions.StartAddNumber(adminID, "100", nil)
				case "broadcast":
					_ = sessions.StartBroadcast(adminID)
				case "append":
					_ = sessions.Append(adminID, domain.Text(fmt.Sprintf("part %d", i)))
				case "finish":
					_, _ = sessions.Finish(adminID)
				case "cancel":
					_ = sessions.Cancel(adminID)
				}
			}(i, op)
		}
		wg.Wait()

		// State panics if the invariants were broken
		state := sessions.State(adminID)
		if state != domain.StateIdle && state != domain.StateAddingNumber && state != domain.StateBroadcasting {
			t.Fatalf("unexpected state %q", state)
		}

		// Any cancel or finish brings the user back to idle with an empty buffer
		_ = sessions.Cancel(adminID)
		if sessions.State(adminID) != domain.StateIdle {
			t.Fatalf("session not idle after cancel")
		}
		if err := sessions.Append(adminID, domain.Text("x")); err == nil {
			t.Fatalf("append accepted by idle session")
		}
	})
}
