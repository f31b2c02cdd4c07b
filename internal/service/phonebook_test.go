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
)

func newMemoryPhonebook(t *testing.T, entries ...domain.PhonebookEntry) (*PhonebookService, *testutil.MemoryPhonebookRepository) {
	t.Helper()
	repo := testutil.NewMemoryPhonebookRepository(entries...)
	svc := NewPhonebookService(repo, testutil.NewTestLogger())
	require.NoError(t, svc.Reload())
	return svc, repo
}

func TestPhonebookService_Reload(t *testing.T) {
	reply := domain.NewReply(domain.Text("hello"))
	svc, _ := newMemoryPhonebook(t, domain.PhonebookEntry{Key: domain.NewPhonebookKey("100", nil), Reply: reply})

	got, ok := svc.Lookup("100", nil)
	assert.True(t, ok)
	assert.Equal(t, reply, got)
	assert.Equal(t, 1, svc.Snapshot().Len())
}

func TestPhonebookService_ReloadError(t *testing.T) {
	mockRepo := new(testutil.MockPhonebookRepository)
	mockRepo.On("LoadAll").Return(nil, fmt.Errorf("db error"))

	svc := NewPhonebookService(mockRepo, testutil.NewTestLogger())

	assert.Error(t, svc.Reload())
	assert.Equal(t, 0, svc.Snapshot().Len())
	mockRepo.AssertExpectations(t)
}

func TestPhonebookService_PasswordDiscrimination(t *testing.T) {
	svc, _ := newMemoryPhonebook(t)
	r1 := domain.NewReply(domain.Text("with password"))
	r2 := domain.NewReply(domain.Text("without password"))

	require.NoError(t, svc.Upsert("5", testutil.StrPtr("pw"), r1))
	require.NoError(t, svc.Upsert("5", nil, r2))

	got, ok := svc.Lookup("5", testutil.StrPtr("pw"))
	assert.True(t, ok)
	assert.Equal(t, r1, got)

	got, ok = svc.Lookup("5", nil)
	assert.True(t, ok)
	assert.Equal(t, r2, got)

	_, ok = svc.Lookup("5", testutil.StrPtr("other"))
	assert.False(t, ok)
}

func TestPhonebookService_UpsertReplaces(t *testing.T) {
	svc, _ := newMemoryPhonebook(t)

	require.NoError(t, svc.Upsert("1", nil, domain.NewReply(domain.Text("old"), domain.Photo("p"))))
	require.NoError(t, svc.Upsert("1", nil, domain.NewReply(domain.Text("new"))))

	got, ok := svc.Lookup("1", nil)
	assert.True(t, ok)
	assert.Equal(t, domain.NewReply(domain.Text("new")), got)
	assert.Equal(t, 1, svc.Snapshot().Len())
}

func TestPhonebookService_UpsertEmptyDeletes(t *testing.T) {
	svc, _ := newMemoryPhonebook(t, domain.PhonebookEntry{
		Key:   domain.NewPhonebookKey("1", nil),
		Reply: domain.NewReply(domain.Text("hi")),
	})

	require.NoError(t, svc.Upsert("1", nil, domain.NewReply()))

	_, ok := svc.Lookup("1", nil)
	assert.False(t, ok)
}

func TestPhonebookService_RemoveIsIdempotent(t *testing.T) {
	svc, _ := newMemoryPhonebook(t, domain.PhonebookEntry{
		Key:   domain.NewPhonebookKey("2", nil),
		Reply: domain.NewReply(domain.Text("stay")),
	})
	before := svc.Snapshot()

	require.NoError(t, svc.Remove("1", nil))
	require.NoError(t, svc.Remove("1", nil))

	assert.Equal(t, before.Len(), svc.Snapshot().Len())
	got, ok := svc.Lookup("2", nil)
	assert.True(t, ok)
	assert.Equal(t, domain.NewReply(domain.Text("stay")), got)
}

func TestPhonebookService_StorageErrorKeepsSnapshot(t *testing.T) {
	reply := domain.NewReply(domain.Text("hi"))
	key := domain.NewPhonebookKey("1", nil)

	mockRepo := new(testutil.MockPhonebookRepository)
	mockRepo.On("LoadAll").Return([]domain.PhonebookEntry{{Key: key, Reply: reply}}, nil).Once()
	mockRepo.On("Replace", mock.Anything, mock.Anything).Return(fmt.Errorf("db error"))

	svc := NewPhonebookService(mockRepo, testutil.NewTestLogger())
	require.NoError(t, svc.Reload())

	err := svc.Upsert("1", nil, domain.NewReply(domain.Text("new")))
	assert.Error(t, err)

	got, ok := svc.Lookup("1", nil)
	assert.True(t, ok)
	assert.Equal(t, reply, got)
	mockRepo.AssertExpectations(t)
}

func TestPhonebookService_UpsertUsesRepositoryByReplyContent(t *testing.T) {
	key := domain.NewPhonebookKey("7", testutil.StrPtr("pw"))
	reply := domain.NewReply(domain.Voice("v"))

	mockRepo := new(testutil.MockPhonebookRepository)
	mockRepo.On("Replace", key, reply).Return(nil).Once()
	mockRepo.On("Delete", key).Return(nil).Once()
	mockRepo.On("LoadAll").Return([]domain.PhonebookEntry{}, nil).Twice()

	svc := NewPhonebookService(mockRepo, testutil.NewTestLogger())

	require.NoError(t, svc.Upsert("7", testutil.StrPtr("pw"), reply))
	require.NoError(t, svc.Remove("7", testutil.StrPtr("pw")))

	mockRepo.AssertExpectations(t)
}

// Readers racing with writers must only ever observe complete snapshots:
// both keys are always written together, so a reader sees both or neither
// of the same generation.
func TestPhonebookService_ConcurrentReadersSeeCompleteSnapshots(t *testing.T) {
	repo := testutil.NewMemoryPhonebookRepository()
	svc := NewPhonebookService(repo, testutil.NewTestLogger())
	require.NoError(t, svc.Reload())

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 1)

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				pb := svc.Snapshot()
				a, okA := pb.Lookup(domain.NewPhonebookKey("a", nil))
				b, okB := pb.Lookup(domain.NewPhonebookKey("b", nil))
				if okA != okB || (okA && a.Parts()[0] != b.Parts()[0]) {
					select {
					case errs <- "torn snapshot observed":
					default:
					}
					return
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		gen := domain.Text(fmt.Sprintf("gen-%d", i))
		_ = repo.Replace(domain.NewPhonebookKey("a", nil), domain.NewReply(gen))
		require.NoError(t, svc.Upsert("b", nil, domain.NewReply(gen)))
	}
	close(stop)
	wg.Wait()

	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}
}
