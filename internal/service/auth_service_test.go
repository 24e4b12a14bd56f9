package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Izanmg/streamevents/internal/config"
	"github.com/Izanmg/streamevents/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Env:       "test",
		Port:      "8460",
		JWTSecret: "test-secret-that-is-at-least-32-chars",
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:        "streamer_amy",
		Email:           "amy@example.com",
		Password:        "Str0ng!Passphrase",
		PasswordConfirm: "Str0ng!Passphrase",
		FirstName:       "Amy",
		LastName:        "Chen",
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("success stores lowercase email and hashed password", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var created *models.User
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		}
		svc := NewAuthService(repo, testAuthConfig())

		in := validRegisterInput()
		in.Email = "Amy@Example.COM"
		user, token, err := svc.Register(context.Background(), in)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "amy@example.com", user.Email)
		assert.Equal(t, models.RoleMember, user.Role)

		require.NotNil(t, created)
		assert.NotEqual(t, in.Password, created.Password, "password must be hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte(in.Password)))
	})

	t.Run("invalid username rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testAuthConfig())
		in := validRegisterInput()
		in.Username = "bad name!"
		_, _, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, "INVALID_USERNAME")
	})

	t.Run("password mismatch rejected before strength check", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testAuthConfig())
		in := validRegisterInput()
		in.PasswordConfirm = "different"
		_, _, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, "PASSWORD_MISMATCH")
	})

	t.Run("weak password carries every failed rule", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testAuthConfig())
		in := validRegisterInput()
		in.Password = "short"
		in.PasswordConfirm = "short"
		_, _, err := svc.Register(context.Background(), in)
		assertAppErrorCode(t, err, "WEAK_PASSWORD")

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		require.NotNil(t, appErr.Err)
		assert.Contains(t, appErr.Err.Error(), "12 characters")
		assert.Contains(t, appErr.Err.Error(), "uppercase")
	})

	t.Run("duplicate email detected case-insensitively", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 2, Email: "amy@example.com"}, nil
		}
		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Register(context.Background(), validRegisterInput())
		assertAppErrorCode(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("repo create error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("insert failed")
		repo := noopUserRepo()
		repo.createFn = func(context.Context, *models.User) error { return repoErr }
		svc := NewAuthService(repo, testAuthConfig())
		_, _, err := svc.Register(context.Background(), validRegisterInput())
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestAuthService_ResolveLoginIdentifier(t *testing.T) {
	t.Parallel()

	t.Run("plain username passes through", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testAuthConfig())
		got, err := svc.ResolveLoginIdentifier(context.Background(), "streamer_amy")
		require.NoError(t, err)
		assert.Equal(t, "streamer_amy", got)
	})

	t.Run("known email resolves to username", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{Username: "streamer_amy", Email: "amy@example.com"}, nil
		}
		svc := NewAuthService(repo, testAuthConfig())
		got, err := svc.ResolveLoginIdentifier(context.Background(), "amy@example.com")
		require.NoError(t, err)
		assert.Equal(t, "streamer_amy", got)
	})

	t.Run("unknown email passes through untouched", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testAuthConfig())
		got, err := svc.ResolveLoginIdentifier(context.Background(), "ghost@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ghost@example.com", got)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	password := "Str0ng!Passphrase"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.User{ID: 1, Username: "streamer_amy", Email: "amy@example.com", Password: string(hashed)}

	t.Run("success by username", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			if username == account.Username {
				return account, nil
			}
			return nil, nil
		}
		svc := NewAuthService(repo, testAuthConfig())
		user, token, err := svc.Login(context.Background(), LoginInput{Identifier: "streamer_amy", Password: password})
		require.NoError(t, err)
		assert.Equal(t, account.ID, user.ID)
		assert.NotEmpty(t, token)

		// Token carries the user ID as its subject.
		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte(testAuthConfig().JWTSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "1", claims["sub"])
		assert.Equal(t, "streamevents-api", claims["iss"])
	})

	t.Run("success by email identifier", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return account, nil
		}
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			if username == account.Username {
				return account, nil
			}
			return nil, nil
		}
		svc := NewAuthService(repo, testAuthConfig())
		user, _, err := svc.Login(context.Background(), LoginInput{Identifier: "amy@example.com", Password: password})
		require.NoError(t, err)
		assert.Equal(t, account.Username, user.Username)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
			if username == account.Username {
				return account, nil
			}
			return nil, nil
		}
		svc := NewAuthService(repo, testAuthConfig())

		_, _, errUnknown := svc.Login(context.Background(), LoginInput{Identifier: "nobody", Password: password})
		_, _, errWrongPw := svc.Login(context.Background(), LoginInput{Identifier: "streamer_amy", Password: "wrong"})

		assertAppErrorCode(t, errUnknown, "UNAUTHORIZED")
		assertAppErrorCode(t, errWrongPw, "UNAUTHORIZED")
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}
