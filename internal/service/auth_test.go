package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/materials/internal/entity"
	"github.com/samandr77/materials/internal/service"
)

func TestService_LoginAndAuthenticate(t *testing.T) {
	t.Parallel()

	d := newDeps(t)

	hash, err := service.HashPassword("password123")
	require.NoError(t, err)

	user := entity.User{ID: 42, Name: "Jane", Email: "jane@example.com", PasswordHash: hash, Role: entity.RoleEmployee}

	d.repo.EXPECT().UserByEmail(gomock.Any(), "jane@example.com").Return(user, nil).Times(2)

	_, _, err = d.svc.Login(context.Background(), "jane@example.com", "wrong-password")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, token, err := d.svc.Login(context.Background(), " JANE@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	promoted := user
	promoted.Role = entity.RoleValidator
	d.repo.EXPECT().TokenRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
	d.repo.EXPECT().UserByID(gomock.Any(), int64(42)).Return(promoted, nil)

	got, err := d.svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, entity.RoleValidator, got.User.Role)
	require.NotEmpty(t, got.TokenID)
	require.True(t, got.ExpiresAt.After(time.Now()))

	_, err = d.svc.Authenticate(context.Background(), token+"x")
	require.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	t.Run("revoked token is rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		user := entity.User{ID: 42, Role: entity.RoleEmployee}
		d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(user, nil)

		_, token, err := d.svc.Register(context.Background(), entity.NewUser{
			Name:     "Jane",
			Email:    "jane@example.com",
			Password: "password123",
		})
		require.NoError(t, err)

		d.repo.EXPECT().TokenRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
		d.repo.EXPECT().UserByID(gomock.Any(), int64(42)).Return(user, nil)

		sess, err := d.svc.Authenticate(context.Background(), token)
		require.NoError(t, err)

		d.repo.EXPECT().RevokeToken(gomock.Any(), entity.RevokedToken{
			ID:        sess.TokenID,
			UserID:    42,
			ExpiresAt: sess.ExpiresAt,
		}).Return(nil)

		require.NoError(t, d.svc.Logout(entity.SetSessionToContext(context.Background(), sess)))

		d.repo.EXPECT().TokenRevoked(gomock.Any(), sess.TokenID).Return(true, nil)

		_, err = d.svc.Authenticate(context.Background(), token)
		require.ErrorIs(t, err, entity.ErrInvalidToken)
	})

	t.Run("no session", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		require.ErrorIs(t, d.svc.Logout(context.Background()), entity.ErrUnauthorized)
	})

	t.Run("session without token id", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		require.ErrorIs(t, d.svc.Logout(ctxAs(42, entity.RoleEmployee)), entity.ErrUnauthorized)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		errDB := errors.New("db down")

		ctx := entity.SetSessionToContext(context.Background(), entity.Session{
			User:    entity.User{ID: 42, Role: entity.RoleEmployee},
			TokenID: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		})

		d.repo.EXPECT().RevokeToken(gomock.Any(), gomock.Any()).Return(errDB)

		require.ErrorIs(t, d.svc.Logout(ctx), errDB)
	})
}

func TestService_LoginUnknownEmail(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repo.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(entity.User{}, entity.ErrNotFound)

	_, _, err := d.svc.Login(context.Background(), "nobody@example.com", "password123")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
			require.Equal(t, entity.RoleEmployee, u.Role)
			u.ID = 5

			return u, nil
		})

	user, token, err := d.svc.Register(context.Background(), entity.NewUser{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleEmployee, user.Role)
	require.NotEmpty(t, token)

	_, _, err = d.svc.Register(context.Background(), entity.NewUser{Name: "Jane", Email: "jane@example.com", Password: "short"})
	require.ErrorIs(t, err, entity.ErrPasswordTooShort)
}

func TestService_EnsureAdmin(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repo.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(entity.User{}, entity.ErrNotFound)
	d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
			require.Equal(t, entity.RoleAdmin, u.Role)
			return u, nil
		})

	require.NoError(t, d.svc.EnsureAdmin(context.Background(), "Admin", "admin@example.com", "password123"))
	require.NoError(t, d.svc.EnsureAdmin(context.Background(), "", "", ""))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		errFn require.ErrorAssertionFunc
	}{
		{"Valid email", "user@example.com", require.NoError},
		{"Valid email with plus", "user+tag@example.co", require.NoError},
		{"Invalid: no domain zone", "abc@mail", require.Error},
		{"Invalid: double @ symbol", "user@@example.com", require.Error},
		{"Invalid: two consecutive dots", "user@example..com", require.Error},
		{"Invalid: exceeds length limit", strings.Repeat("x", service.EmailMaxLen) + "@example.com", require.Error},
		{"Invalid: empty email", "", require.Error},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			test.errFn(t, service.ValidateEmail(test.email))
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for range 50 {
		p := service.GeneratePassword()
		require.Len(t, p, 12)
		require.NoError(t, service.ValidatePassword(p))

		seen[p] = struct{}{}
	}

	require.Len(t, seen, 50)
}
