package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/materials/internal/entity"
	"github.com/samandr77/materials/internal/repository"
	"github.com/samandr77/materials/pkg/postgres"
)

type RepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.Repository
}

func TestRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	suite.Run(t, &RepositoryTestSuite{})
}

func (ts *RepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_POSTGRES_DSN")

	ts.Require().NoError(postgres.UpMigrations(context.Background(), dsn))

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	ts.Require().NoError(err)

	ts.pool = pool
	ts.repo = repository.New(pool)
}

func (ts *RepositoryTestSuite) TearDownSuite() {
	ts.pool.Close()
}

func (ts *RepositoryTestSuite) newUser(role entity.Role) entity.User {
	user, err := ts.repo.CreateUser(context.Background(), entity.User{
		Name:         "Test " + role.String(),
		Email:        uuid.Must(uuid.NewV4()).String() + "@example.com",
		PasswordHash: "hash",
		Role:         role,
	})
	ts.Require().NoError(err)

	return user
}

func (ts *RepositoryTestSuite) TestUserByEmail() {
	ctx := context.Background()
	want := ts.newUser(entity.RoleValidator)

	got, err := ts.repo.UserByEmail(ctx, want.Email)
	ts.Require().NoError(err)
	ts.Require().Equal(want.ID, got.ID)
	ts.Require().Equal(entity.RoleValidator, got.Role)

	_, err = ts.repo.CreateUser(ctx, entity.User{Name: "dup", Email: want.Email, PasswordHash: "x", Role: entity.RoleEmployee})
	ts.Require().ErrorIs(err, entity.ErrAlreadyExists)

	_, err = ts.repo.UserByEmail(ctx, "missing-"+want.Email)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestEmployeeLifecycle() {
	ctx := context.Background()
	user := ts.newUser(entity.RoleEmployee)
	department := "IT"

	emp, err := ts.repo.CreateEmployee(ctx, entity.Employee{
		UserID:     user.ID,
		Department: &department,
	})
	ts.Require().NoError(err)
	ts.Require().Regexp(`^EMP\d{6}\d{4,}$`, emp.Matricule)
	ts.Require().Equal(user.Email, emp.Email)
	ts.Require().Equal(&department, emp.Department)

	position := "Lead"
	err = ts.repo.UpdateEmployee(ctx, emp.ID, entity.EmployeeUpdate{Position: &position})
	ts.Require().NoError(err)

	role := entity.RoleValidator
	_, err = ts.repo.UpdateUser(ctx, user.ID, entity.UserUpdate{Role: &role})
	ts.Require().NoError(err)

	got, err := ts.repo.EmployeeByID(ctx, emp.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.RoleValidator, got.Role)
	ts.Require().Equal(&position, got.Position)

	err = ts.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := ts.repo.DeleteEmployee(ctx, emp.ID); err != nil {
			return err
		}

		return ts.repo.DeleteUser(ctx, user.ID)
	})
	ts.Require().NoError(err)

	_, err = ts.repo.EmployeeByID(ctx, emp.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	_, err = ts.repo.UserByID(ctx, user.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestEmployeesList_FollowsUserRole() {
	ctx := context.Background()
	user := ts.newUser(entity.RoleEmployee)

	emp, err := ts.repo.CreateEmployee(ctx, entity.Employee{UserID: user.ID})
	ts.Require().NoError(err)

	contains := func() bool {
		list, _, err := ts.repo.EmployeesList(ctx, entity.Page{Page: 1, Limit: 100})
		ts.Require().NoError(err)

		for _, e := range list {
			if e.ID == emp.ID {
				return true
			}
		}

		return false
	}

	ts.Require().True(contains())

	admin := entity.RoleAdmin
	_, err = ts.repo.UpdateUser(ctx, user.ID, entity.UserUpdate{Role: &admin})
	ts.Require().NoError(err)

	ts.Require().False(contains())
}

func (ts *RepositoryTestSuite) TestWithinTx_RollsBack() {
	ctx := context.Background()
	user := ts.newUser(entity.RoleEmployee)

	emp, err := ts.repo.CreateEmployee(ctx, entity.Employee{UserID: user.ID})
	ts.Require().NoError(err)

	errBoom := errors.New("boom")

	err = ts.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := ts.repo.DeleteEmployee(ctx, emp.ID); err != nil {
			return err
		}

		return errBoom
	})
	ts.Require().ErrorIs(err, errBoom)

	got, err := ts.repo.EmployeeByID(ctx, emp.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(emp.ID, got.ID)
}

func (ts *RepositoryTestSuite) TestMaterialRequests() {
	ctx := context.Background()
	user := ts.newUser(entity.RoleEmployee)

	created, err := ts.repo.CreateMaterialRequest(ctx, entity.MaterialRequest{
		MaterialName:  "Laptop",
		Quantity:      1,
		Justification: "need for travel",
		UserID:        user.ID,
		Status:        entity.StatusPending,
	})
	ts.Require().NoError(err)
	ts.Require().Equal(entity.StatusPending, created.Status)
	ts.Require().Equal(user.Name, created.RequesterName)

	delivery := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created.Status = entity.StatusApproved
	created.DeliveryDate = &delivery

	updated, err := ts.repo.UpdateMaterialRequestStatus(ctx, created)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.StatusApproved, updated.Status)
	ts.Require().True(delivery.Equal(*updated.DeliveryDate))
	ts.Require().Nil(updated.RejectionReason)

	status := entity.StatusApproved
	list, total, err := ts.repo.MaterialRequestsList(ctx, entity.MaterialRequestsFilter{
		Page:   entity.Page{Page: 1, Limit: 10},
		Status: &status,
		UserID: &user.ID,
	})
	ts.Require().NoError(err)
	ts.Require().Equal(1, total)
	ts.Require().Len(list, 1)
	ts.Require().Equal(created.ID, list[0].ID)

	ts.Require().NoError(ts.repo.DeleteMaterialRequest(ctx, created.ID))
	ts.Require().ErrorIs(ts.repo.DeleteMaterialRequest(ctx, created.ID), entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestNotifications() {
	ctx := context.Background()
	user := ts.newUser(entity.RoleEmployee)

	n, err := ts.repo.CreateNotification(ctx, entity.Notification{
		UserID: user.ID,
		Data: entity.NotificationPayload{
			RequestID:    7,
			MaterialName: "Laptop",
			Status:       entity.StatusRejected,
		},
	})
	ts.Require().NoError(err)
	ts.Require().False(n.Read)
	ts.Require().Equal("Laptop", n.Data.MaterialName)

	_, err = ts.repo.CreateNotification(ctx, entity.Notification{UserID: user.ID})
	ts.Require().NoError(err)

	ts.Require().NoError(ts.repo.MarkNotificationRead(ctx, n.ID))

	updated, err := ts.repo.MarkAllNotificationsRead(ctx, user.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), updated)

	list, err := ts.repo.NotificationsByUserID(ctx, user.ID)
	ts.Require().NoError(err)
	ts.Require().Len(list, 2)

	for _, v := range list {
		ts.Require().True(v.Read)
	}
}

func (ts *RepositoryTestSuite) TestStocks() {
	ctx := context.Background()
	description := "A4 paper"

	s, err := ts.repo.CreateStock(ctx, entity.Stock{Name: "Paper", Quantity: 10, Description: &description})
	ts.Require().NoError(err)

	s.Quantity = 0

	updated, err := ts.repo.UpdateStock(ctx, s)
	ts.Require().NoError(err)
	ts.Require().Equal(0, updated.Quantity)

	ts.Require().NoError(ts.repo.DeleteStock(ctx, s.ID))

	_, err = ts.repo.StockByID(ctx, s.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestRevokedTokens() {
	ctx := context.Background()
	user := ts.newUser(entity.RoleEmployee)
	id := uuid.Must(uuid.NewV4()).String()

	revoked, err := ts.repo.TokenRevoked(ctx, id)
	ts.Require().NoError(err)
	ts.Require().False(revoked)

	token := entity.RevokedToken{ID: id, UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	ts.Require().NoError(ts.repo.RevokeToken(ctx, token))
	ts.Require().NoError(ts.repo.RevokeToken(ctx, token))

	revoked, err = ts.repo.TokenRevoked(ctx, id)
	ts.Require().NoError(err)
	ts.Require().True(revoked)

	stale := uuid.Must(uuid.NewV4()).String()
	ts.Require().NoError(ts.repo.RevokeToken(ctx, entity.RevokedToken{
		ID:        stale,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	ts.Require().NoError(ts.repo.RevokeToken(ctx, entity.RevokedToken{
		ID:        uuid.Must(uuid.NewV4()).String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	revoked, err = ts.repo.TokenRevoked(ctx, stale)
	ts.Require().NoError(err)
	ts.Require().False(revoked)
}
