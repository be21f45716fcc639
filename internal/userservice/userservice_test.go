package userservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/lmbotha/lea/internal/interfaces/mocks"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/pkg/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_RegisterUser(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	logger := zerolog.NewZerologLogger("test")

	var storedUser models.User
	repo.On("AddUser", mock.Anything, mock.AnythingOfType("models.User")).
		Run(func(args mock.Arguments) {
			storedUser = args.Get(1).(models.User)
		}).
		Return("user-id-1", nil)

	svc := NewUserService(repo, logger)
	userID, err := svc.RegisterUser(context.Background(), "ext-001", "Thandi Nkosi", "thandi@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "user-id-1", userID)

	// The stored hash must verify against the original plaintext and must not
	// be the plaintext itself.
	assert.Equal(t, "ext-001", storedUser.ExternalUserID)
	assert.Equal(t, "thandi@example.com", storedUser.Email)
	assert.NotEqual(t, "s3cretpass", storedUser.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedUser.PasswordHash), []byte("s3cretpass")))
}

func TestUserService_RegisterUser_RepoError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	logger := zerolog.NewZerologLogger("test")

	repo.On("AddUser", mock.Anything, mock.AnythingOfType("models.User")).
		Return("", fmt.Errorf("connection refused"))

	svc := NewUserService(repo, logger)
	_, err := svc.RegisterUser(context.Background(), "ext-001", "Thandi Nkosi", "thandi@example.com", "s3cretpass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrFailedToRegisterUser)
}

func TestUserService_AuthenticateUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		user     *models.User
		repoErr  error
		want     bool
		wantErr  bool
	}{
		{
			name:     "correct credentials",
			email:    "thandi@example.com",
			password: "correct-pass",
			user:     &models.User{ID: "user-id-1", Email: "thandi@example.com", PasswordHash: string(hashed)},
			want:     true,
		},
		{
			name:     "wrong password",
			email:    "thandi@example.com",
			password: "wrong-pass",
			user:     &models.User{ID: "user-id-1", Email: "thandi@example.com", PasswordHash: string(hashed)},
			want:     false,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-pass",
			user:     nil,
			want:     false,
		},
		{
			name:     "malformed stored hash",
			email:    "thandi@example.com",
			password: "correct-pass",
			user:     &models.User{ID: "user-id-1", Email: "thandi@example.com", PasswordHash: "not-a-bcrypt-hash"},
			want:     false,
		},
		{
			name:     "store failure",
			email:    "thandi@example.com",
			password: "correct-pass",
			repoErr:  fmt.Errorf("connection refused"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			logger := zerolog.NewZerologLogger("test")
			repo.On("GetUserByEmail", mock.Anything, tt.email).Return(tt.user, tt.repoErr)

			svc := NewUserService(repo, logger)
			got, err := svc.AuthenticateUser(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBcryptRoundTrip(t *testing.T) {
	for _, password := range []string{"a", "s3cretpass", "пароль", "correct horse battery staple"} {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		require.NoError(t, err)

		assert.NoError(t, bcrypt.CompareHashAndPassword(hashed, []byte(password)))
		assert.Error(t, bcrypt.CompareHashAndPassword(hashed, []byte(password+"x")))
	}
}
