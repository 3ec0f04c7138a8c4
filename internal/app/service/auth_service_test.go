package service

import (
	"testing"
	"time"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/app/repository"
	"github.com/granitdvor/monument-backend/internal/db"
	"github.com/granitdvor/monument-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret"

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	svc := NewAuthService(userRepo, testJWTSecret, 15*time.Minute, 7*24*time.Hour)
	return svc, testDB
}

func createTestAdmin(t *testing.T, testDB *gorm.DB, email, password string) *model.User {
	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Администратор",
		Role:         model.RoleAdmin,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func TestAuthService_Login(t *testing.T) {
	svc, testDB := setupAuthServiceTest(t)
	defer db.CleanupTestDB(testDB)
	createTestAdmin(t, testDB, "admin@granitdvor.by", "password123")

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			email:    "admin@granitdvor.by",
			password: "password123",
		},
		{
			name:     "Wrong password",
			email:    "admin@granitdvor.by",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@granitdvor.by",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := svc.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tokens)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tokens)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)
			assert.Equal(t, tt.email, user.Email)

			claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, string(model.RoleAdmin), claims.Role)
		})
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	svc, testDB := setupAuthServiceTest(t)
	defer db.CleanupTestDB(testDB)
	admin := createTestAdmin(t, testDB, "admin@granitdvor.by", "password123")

	found, err := svc.GetUserByID(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, found.Email)

	_, err = svc.GetUserByID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
