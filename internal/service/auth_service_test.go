package service

import (
	"context"
	"testing"
	"time"

	"github.com/AlexJCturbo/just-tech-news/internal/config"
	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:        "test-secret",
		AccessTokenDuration: time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	input := models.NewUser{Username: "ada", Email: "ada@example.com", Password: "secret"}
	repo.On("CreateUser", mock.Anything, input).Return(&models.User{ID: "u1", Username: "ada", Email: "ada@example.com"}, nil)

	user, err := NewAuthService(repo, testConfig()).Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil, models.ErrDuplicateEmail)

	_, err := NewAuthService(repo, testConfig()).Register(context.Background(), models.NewUser{})

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAuthService_LoginIssuesParsableToken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("VerifyPassword", mock.Anything, "ada@example.com", "secret").
		Return(&models.User{ID: "u1", Username: "ada", Email: "ada@example.com"}, nil)

	svc := NewAuthService(repo, testConfig())

	user, token, err := svc.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)

	userID, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("VerifyPassword", mock.Anything, mock.Anything, mock.Anything).Return(nil, models.ErrInvalidCredentials)

	_, token, err := NewAuthService(repo, testConfig()).Login(context.Background(), models.Credentials{Email: "x@example.com", Password: "y"})

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_ParseAccessTokenRejects(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), testConfig())

	sign := func(claims jwt.MapClaims, key string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong key", token: sign(jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(time.Hour).Unix()}, "other-secret")},
		{name: "expired", token: sign(jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix()}, "test-secret")},
		{name: "no user id", token: sign(jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}, "test-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
