package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/repository/postgres"
	"github.com/rgalvan/jobtracker-api/internal/service"
	"github.com/rgalvan/jobtracker-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, service.NewBcryptHasher(), cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		wantEmail string
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Email:    "newuser@example.com",
				Password: "password123",
				UserName: "New User",
			},
			wantEmail: "newuser@example.com",
		},
		{
			name: "email is normalized before storing",
			input: service.RegisterInput{
				Email:    "  MixedCase@Example.COM ",
				Password: "password123",
				UserName: "Mixed",
			},
			wantEmail: "mixedcase@example.com",
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "existing@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
		{
			name: "duplicate email differing only by case and whitespace",
			input: service.RegisterInput{
				Email:    " EXISTING@example.com ",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, service.NewBcryptHasher(), cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("loginuser@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "login with unnormalized email",
			input: service.LoginInput{
				Email:    " LoginUser@Example.com ",
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "non-existent user yields the same error as a wrong password",
			input: service.LoginInput{
				Email:    "nonexistent@example.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, session, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.NotEmpty(t, session.Token)
			assert.True(t, session.ExpiresAt.After(time.Now()))
		})
	}
}

func TestAuthService_Login_CreatesFreshSession(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, service.NewBcryptHasher(), cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, first, err := authService.Login(ctx, service.LoginInput{Email: user.Email, Password: rawPassword})
	require.NoError(t, err)
	_, second, err := authService.Login(ctx, service.LoginInput{Email: user.Email, Password: rawPassword})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	// The first session still resolves; a second login does not evict it
	resolved, err := authService.CurrentUser(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthService_CurrentUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, service.NewBcryptHasher(), cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().Build(t, testDB.DB)
	_, session, err := authService.Login(ctx, service.LoginInput{Email: user.Email, Password: rawPassword})
	require.NoError(t, err)

	t.Run("valid session resolves the user", func(t *testing.T) {
		got, err := authService.CurrentUser(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := authService.CurrentUser(ctx, "")
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := authService.CurrentUser(ctx, "not-a-real-token")
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("expired session is unauthenticated", func(t *testing.T) {
		expired := &domain.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			Token:     "expired-token",
			ExpiresAt: time.Now().Add(-time.Minute),
			CreatedAt: time.Now().Add(-2 * time.Hour),
		}
		require.NoError(t, testDB.DB.Create(expired).Error)

		_, err := authService.CurrentUser(ctx, expired.Token)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})

	t.Run("session for a removed user is unauthenticated", func(t *testing.T) {
		ghost, ghostPassword := testutil.NewUserBuilder().Build(t, testDB.DB)
		_, ghostSession, err := authService.Login(ctx, service.LoginInput{Email: ghost.Email, Password: ghostPassword})
		require.NoError(t, err)

		require.NoError(t, testDB.DB.Delete(&domain.User{}, "id = ?", ghost.ID).Error)

		_, err = authService.CurrentUser(ctx, ghostSession.Token)
		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestAuthService_Logout(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, service.NewBcryptHasher(), cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().Build(t, testDB.DB)
	_, session, err := authService.Login(ctx, service.LoginInput{Email: user.Email, Password: rawPassword})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, session.Token))

	// Logout takes effect immediately
	_, err = authService.CurrentUser(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	// Logout is idempotent
	require.NoError(t, authService.Logout(ctx, session.Token))
	require.NoError(t, authService.Logout(ctx, ""))
}
