package services_test

import (
	"testing"

	"slopescout/internal/apperror"
	"slopescout/internal/models"
	"slopescout/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{Username: "rider", Email: "rider@example.com", Password: "password123"}

	mockRepo.On("GetByUsername", "rider").Return(nil, apperror.NotFound("user", "rider")).Once()
	mockRepo.On("GetByEmail", "rider@example.com").Return(nil, apperror.NotFound("user", "rider@example.com")).Once()
	mockRepo.On("Create", mock.Anything).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)

	// The stored password is a bcrypt hash, not the plaintext
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "user-1", Username: "rider"}
	mockRepo.On("GetByUsername", "rider").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Username: "rider", Email: "new@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "rider", Password: string(hashed)}

	mockRepo.On("GetByUsername", "rider").Return(user, nil)

	token, err := service.LoginUser("rider", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "rider", claims["username"])
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "rider", Password: string(hashed)}

	mockRepo.On("GetByUsername", "rider").Return(user, nil).Once()
	_, err = service.LoginUser("rider", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	// Unknown usernames produce the same error, not a different one
	mockRepo.On("GetByUsername", "nobody").Return(nil, apperror.NotFound("user", "nobody")).Once()
	_, err = service.LoginUser("nobody", "password123")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "secret-a")
	otherService := services.NewAuthService(mockRepo, "secret-b")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "rider", Password: string(hashed)}
	mockRepo.On("GetByUsername", "rider").Return(user, nil)

	token, err := service.LoginUser("rider", "password123")
	assert.NoError(t, err)

	_, err = otherService.ValidateToken(token)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}
