package service

import (
	"fmt"
	"testing"

	"phonequest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPauseService_Load(t *testing.T) {
	mockRepo := new(testutil.MockPauseRepository)
	mockRepo.On("IsPaused").Return(true, nil)

	service := NewPauseService(mockRepo, testutil.NewTestLogger())
	require.NoError(t, service.Load())
	assert.True(t, service.IsPaused())
}

func TestPauseService_PauseResume(t *testing.T) {
	mockRepo := new(testutil.MockPauseRepository)
	mockRepo.On("SetPaused", true).Return(nil).Once()
	mockRepo.On("SetPaused", false).Return(nil).Once()

	service := NewPauseService(mockRepo, testutil.NewTestLogger())

	changed, err := service.Pause()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, service.IsPaused())

	changed, err = service.Pause()
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = service.Resume()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, service.IsPaused())

	changed, err = service.Resume()
	require.NoError(t, err)
	assert.False(t, changed)

	mockRepo.AssertExpectations(t)
}

func TestPauseService_StorageError(t *testing.T) {
	mockRepo := new(testutil.MockPauseRepository)
	mockRepo.On("SetPaused", mock.Anything).Return(fmt.Errorf("db error"))

	service := NewPauseService(mockRepo, testutil.NewTestLogger())

	_, err := service.Pause()
	assert.Error(t, err)
	assert.False(t, service.IsPaused())
}
