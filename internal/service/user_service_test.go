package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"userhub/internal/auth"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

func TestUserService_CreateUser(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   bool
	}{
		{
			name:     "all fields present",
			userName: "Taro",
			email:    "taro@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:      "missing name",
			email:     "taro@example.com",
			password:  "password123",
			setupMock: func(m *MockUserRepository) {},
			wantErr:   true,
		},
		{
			name:      "missing password",
			userName:  "Taro",
			email:     "taro@example.com",
			setupMock: func(m *MockUserRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, hasher, nil)
			user, err := svc.CreateUser(context.Background(), tt.userName, tt.email, tt.password)

			if tt.wantErr {
				var validation *apperrors.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Equal(t, "All fields are required", validation.Reason)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				ok, err := hasher.Verify(tt.password, user.PasswordHash)
				assert.NoError(t, err)
				assert.True(t, ok)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser_RequiresAField(t *testing.T) {
	svc := NewUserService(new(MockUserRepository), auth.NewPasswordHasher(), nil)

	_, err := svc.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), UserUpdateParams{})

	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "At least one field is required", validation.Reason)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	hasher := auth.NewPasswordHasher()
	oldHash, err := hasher.Hash("old-password")
	assert.NoError(t, err)

	id := primitive.NewObjectID()
	var captured repository.UserUpdate
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByIDAndUpdate", mock.Anything, id.Hex(), mock.AnythingOfType("repository.UserUpdate")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(repository.UserUpdate)
		}).
		Return(&model.User{ID: id, Email: "taro@example.com"}, nil)

	svc := NewUserService(mockRepo, hasher, nil)
	_, err = svc.UpdateUser(context.Background(), id.Hex(), UserUpdateParams{Password: "new-password"})
	assert.NoError(t, err)

	assert.NotEmpty(t, captured.PasswordHash)
	assert.NotEqual(t, "new-password", captured.PasswordHash)
	assert.NotEqual(t, oldHash, captured.PasswordHash)

	// The new password verifies against the stored hash; the old one no
	// longer does.
	ok, err := hasher.Verify("new-password", captured.PasswordHash)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Verify("old-password", captured.PasswordHash)
	assert.NoError(t, err)
	assert.False(t, ok)

	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	id := primitive.NewObjectID().Hex()
	mockRepo.On("FindByIDAndUpdate", mock.Anything, id, mock.AnythingOfType("repository.UserUpdate")).
		Return(nil, apperrors.ErrUserNotFound)

	svc := NewUserService(mockRepo, auth.NewPasswordHasher(), nil)
	_, err := svc.UpdateUser(context.Background(), id, UserUpdateParams{Name: "New Name"})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{
		{ID: primitive.NewObjectID(), Name: "Taro", Email: "taro@example.com"},
		{ID: primitive.NewObjectID(), Name: "Hanako", Email: "hanako@example.com"},
	}, nil)

	svc := NewUserService(mockRepo, auth.NewPasswordHasher(), nil)
	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	mockRepo.AssertExpectations(t)
}
