package service

import (
	"fmt"
	"testing"

	"phonequest/internal/domain"
	"phonequest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAliasService_Reload(t *testing.T) {
	mockRepo := new(testutil.MockAliasRepository)
	mockRepo.On("ListAliases").Return([]domain.Alias{{Phone: "102", Name: "Police"}}, nil)

	service := NewAliasService(mockRepo, testutil.NewTestLogger())
	require.NoError(t, service.Reload())

	name, ok := service.Name("102")
	assert.True(t, ok)
	assert.Equal(t, "Police", name)

	_, ok = service.Name("103")
	assert.False(t, ok)
}

func TestAliasService_Set(t *testing.T) {
	tests := []struct {
		name          string
		phone         string
		alias         string
		mockError     error
		expectedError bool
		expectSet     bool
	}{
		{
			name:      "alias is trimmed",
			phone:     "102",
			alias:     "  Police ",
			expectSet: true,
		},
		{
			name:          "blank alias",
			phone:         "102",
			alias:         "   ",
			expectedError: true,
		},
		{
			name:          "database error",
			phone:         "102",
			alias:         "Police",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
			expectSet:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAliasRepository)
			if tt.expectSet {
				mockRepo.On("SetAlias", tt.phone, "Police").Return(tt.mockError)
			}
			mockRepo.On("ListAliases").Return([]domain.Alias{}, nil)

			service := NewAliasService(mockRepo, testutil.NewTestLogger())
			err := service.Set(tt.phone, tt.alias)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if !tt.expectSet {
				mockRepo.AssertNotCalled(t, "SetAlias", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAliasService_Remove(t *testing.T) {
	mockRepo := new(testutil.MockAliasRepository)
	mockRepo.On("ListAliases").Return([]domain.Alias{{Phone: "102", Name: "Police"}}, nil).Once()
	mockRepo.On("RemoveAlias", "102").Return(nil)
	mockRepo.On("ListAliases").Return([]domain.Alias{}, nil).Once()

	service := NewAliasService(mockRepo, testutil.NewTestLogger())
	require.NoError(t, service.Reload())
	require.NoError(t, service.Remove("102"))

	_, ok := service.Name("102")
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}
