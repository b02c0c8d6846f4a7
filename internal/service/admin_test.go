package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/materials/internal/entity"
)

func TestService_Stocks(t *testing.T) {
	t.Parallel()

	t.Run("validator may not manage stock", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := d.svc.CreateStock(ctxAs(2, entity.RoleValidator), entity.Stock{Name: "Paper", Quantity: 10})
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("negative quantity", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := d.svc.CreateStock(ctxAs(1, entity.RoleAdmin), entity.Stock{Name: "Paper", Quantity: -1})
		require.ErrorIs(t, err, entity.ErrStockQuantity)
	})

	t.Run("create and update", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		ctx := ctxAs(1, entity.RoleAdmin)

		d.repo.EXPECT().CreateStock(ctx, entity.Stock{Name: "Paper", Quantity: 0}).
			Return(entity.Stock{ID: 1, Name: "Paper"}, nil)
		d.repo.EXPECT().UpdateStock(ctx, entity.Stock{ID: 1, Name: "Paper A4", Quantity: 5}).
			Return(entity.Stock{ID: 1, Name: "Paper A4", Quantity: 5}, nil)

		_, err := d.svc.CreateStock(ctx, entity.Stock{Name: " Paper "})
		require.NoError(t, err)

		stock, err := d.svc.UpdateStock(ctx, entity.Stock{ID: 1, Name: "Paper A4", Quantity: 5})
		require.NoError(t, err)
		require.Equal(t, 5, stock.Quantity)
	})
}

func TestService_Users(t *testing.T) {
	t.Parallel()

	t.Run("update re-hashes password", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		d.repo.EXPECT().UpdateUser(gomock.Any(), int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, upd entity.UserUpdate) (entity.User, error) {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*upd.Password), []byte("new-password")))
				return entity.User{ID: 4}, nil
			})

		_, err := d.svc.UpdateUser(ctxAs(1, entity.RoleAdmin), 4, entity.UserUpdate{Password: ptr("new-password")})
		require.NoError(t, err)
	})

	t.Run("role change is a single user write", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		role := entity.RoleValidator

		d.repo.EXPECT().UpdateUser(gomock.Any(), int64(42), entity.UserUpdate{Role: &role}).
			Return(entity.User{ID: 42, Role: role}, nil)

		user, err := d.svc.UpdateUser(ctxAs(1, entity.RoleAdmin), 42, entity.UserUpdate{Role: &role})
		require.NoError(t, err)
		require.Equal(t, entity.RoleValidator, user.Role)
	})

	t.Run("admin may not delete own account", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		require.ErrorIs(t, d.svc.DeleteUser(ctxAs(1, entity.RoleAdmin), 1), entity.ErrForbidden)
	})

	t.Run("create publishes account event", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		d.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
				u.ID = 8
				return u, nil
			})
		d.publisher.EXPECT().Publish(gomock.Any(), "send-notifications", entity.AccountCreated{
			UserID: 8,
			Name:   "Val",
			Email:  "val@example.com",
		}).Return(nil)

		user, err := d.svc.CreateUser(ctxAs(1, entity.RoleAdmin), entity.NewUser{
			Name:     "Val",
			Email:    "val@example.com",
			Password: "password123",
			Role:     entity.RoleValidator,
		})
		require.NoError(t, err)
		require.Equal(t, entity.RoleValidator, user.Role)
	})
}
