package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "propal/internal/errors"
	"propal/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ReadAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) WriteAll(ctx context.Context, users []model.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func storedUsers() []model.User {
	return []model.User{
		{ID: "1", Username: "alice", Email: "alice@example.com", Password: "password123", Role: model.RoleAdmin},
		{ID: "2", Username: "bob", Email: "bob@example.com", Password: "hunter22", PhoneNumber: "+15550100"},
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
			},
			expectedRole: model.RoleAdmin,
		},
		{
			name:     "missing role is projected as user",
			email:    "bob@example.com",
			password: "hunter22",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "hunter22",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "email match is case sensitive",
			email:    "Alice@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "empty store",
			email:    "alice@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return([]model.User{}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo)
			user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.expectedRole, user.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ReadAll", mock.Anything).Return(nil, errors.New("redis: connection refused"))

	user, err := NewAuthService(mockRepo).Login(context.Background(), "alice@example.com", "password123")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		current       string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:    "password changed",
			userID:  "2",
			current: "hunter22",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
				m.On("WriteAll", mock.Anything, mock.MatchedBy(func(users []model.User) bool {
					return len(users) == 2 &&
						users[0].Password == "password123" &&
						users[1].Password == "newpass1"
				})).Return(nil)
			},
		},
		{
			name:    "unknown user",
			userID:  "99",
			current: "hunter22",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:    "wrong current password leaves store untouched",
			userID:  "2",
			current: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
			},
			expectedError: apperrors.ErrIncorrectPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			err := NewAuthService(mockRepo).ChangePassword(context.Background(), tt.userID, tt.current, "newpass1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "WriteAll", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword_WriteError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ReadAll", mock.Anything).Return(storedUsers(), nil)
	mockRepo.On("WriteAll", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := NewAuthService(mockRepo).ChangePassword(context.Background(), "1", "password123", "newpass1")

	assert.Error(t, err)
	assert.True(t, apperrors.IsServerError(err))
}
