package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/materials/internal/api"
	"github.com/samandr77/materials/internal/entity"
	"github.com/samandr77/materials/internal/mocks"
	"github.com/samandr77/materials/internal/service"
)

var users = map[string]entity.User{
	"admin":     {ID: 1, Name: "Admin", Role: entity.RoleAdmin},
	"validator": {ID: 2, Name: "Val", Role: entity.RoleValidator},
	"employee":  {ID: 42, Name: "Emp", Role: entity.RoleEmployee},
}

type tokenAuth struct{}

func (tokenAuth) Authenticate(_ context.Context, token string) (entity.Session, error) {
	u, ok := users[token]
	if !ok {
		return entity.Session{}, entity.ErrInvalidToken
	}

	return entity.Session{User: u, TokenID: token}, nil
}

type testAPI struct {
	repo    *mocks.MockRepository
	handler http.Handler
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	return buildTestAPI(t, false)
}

// newJWTTestAPI authenticates with the service itself instead of the
// static tokens.
func newJWTTestAPI(t *testing.T) testAPI {
	t.Helper()

	return buildTestAPI(t, true)
}

func buildTestAPI(t *testing.T, jwtAuth bool) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	svc := service.New(service.Options{
		JWTSecret:       "secret",
		JWTTTL:          time.Hour,
		DefaultPageSize: 10,
		AccountTopic:    "send-notifications",
	}, repo, publisher, nil)

	var auth api.Authenticator = tokenAuth{}
	if jwtAuth {
		auth = svc
	}

	return testAPI{
		repo:    repo,
		handler: api.NewRouter(api.NewHandler(svc), api.NewMiddleware(auth)),
	}
}

func (a testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func (a testAPI) expectTx() {
	a.repo.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandler_Unauthenticated(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/api/material-requests", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/material-requests", "bogus", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_CreateMaterialRequest(t *testing.T) {
	t.Parallel()

	t.Run("quantity defaults to one", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.repo.EXPECT().CreateMaterialRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entity.MaterialRequest) (entity.MaterialRequest, error) {
				req.ID = 1
				return req, nil
			})

		rec := a.do(t, http.MethodPost, "/api/material-requests", "employee",
			`{"material_name":"Laptop","justification":"need for travel"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		got := decode[entity.MaterialRequest](t, rec)
		require.Equal(t, entity.StatusPending, got.Status)
		require.Equal(t, 1, got.Quantity)
		require.Equal(t, int64(42), got.UserID)
	})

	t.Run("zero quantity", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/material-requests", "employee",
			`{"material_name":"Laptop","quantity":0,"justification":"x"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		got := decode[api.ResponseError](t, rec)
		require.Equal(t, entity.ErrQuantityTooSmall.Error(), got.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/material-requests", "employee", `{"material_name":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UpdateMaterialRequestStatus(t *testing.T) {
	t.Parallel()

	req := entity.MaterialRequest{ID: 7, MaterialName: "Laptop", Quantity: 1, UserID: 42, Status: entity.StatusPending}

	t.Run("reject", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.expectTx()
		a.repo.EXPECT().MaterialRequestByID(gomock.Any(), int64(7)).Return(req, nil)
		a.repo.EXPECT().UpdateMaterialRequestStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m entity.MaterialRequest) (entity.MaterialRequest, error) {
				return m, nil
			})
		a.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(entity.Notification{ID: 1}, nil)

		rec := a.do(t, http.MethodPatch, "/api/material-requests/7", "validator",
			`{"status":"rejected","rejection_reason":"Out of budget"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[entity.MaterialRequest](t, rec)
		require.Equal(t, entity.StatusRejected, got.Status)
		require.Equal(t, "Out of budget", *got.RejectionReason)
	})

	t.Run("approve with plain date", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.expectTx()
		a.repo.EXPECT().MaterialRequestByID(gomock.Any(), int64(7)).Return(req, nil)
		a.repo.EXPECT().UpdateMaterialRequestStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m entity.MaterialRequest) (entity.MaterialRequest, error) {
				return m, nil
			})
		a.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(entity.Notification{ID: 1}, nil)

		rec := a.do(t, http.MethodPut, "/api/material-requests/7", "admin",
			`{"status":"approved","delivery_date":"2024-05-10"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[entity.MaterialRequest](t, rec)
		require.Equal(t, entity.StatusApproved, got.Status)
		require.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), got.DeliveryDate.UTC())
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPut, "/api/material-requests/7", "employee", `{"status":"approved"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.expectTx()
		a.repo.EXPECT().MaterialRequestByID(gomock.Any(), int64(8)).Return(entity.MaterialRequest{}, entity.ErrNotFound)

		rec := a.do(t, http.MethodPut, "/api/material-requests/8", "admin", `{"status":"delivered"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_MaterialRequests(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.repo.EXPECT().MaterialRequestsList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.MaterialRequestsFilter) ([]entity.MaterialRequest, int, error) {
			require.Equal(t, int64(42), *f.UserID)
			require.Equal(t, entity.StatusPending, *f.Status)

			return []entity.MaterialRequest{{ID: 1, UserID: 42}}, 11, nil
		})

	rec := a.do(t, http.MethodGet, "/api/material-requests?status=pending&page=2", "employee", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[api.ListResponse[entity.MaterialRequest]](t, rec)
	require.Len(t, got.Data, 1)
	require.Equal(t, 11, got.Total)
	require.Equal(t, uint64(2), got.Page)
	require.Equal(t, uint64(10), got.Limit)
}

func TestHandler_Employees(t *testing.T) {
	t.Parallel()

	t.Run("validator may not create", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodPost, "/api/employees", "validator",
			`{"name":"Jane","email":"jane@example.com","role":"employee"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.expectTx()
		a.repo.EXPECT().EmployeeByID(gomock.Any(), int64(3)).Return(entity.Employee{ID: 3, UserID: 10}, nil)
		a.repo.EXPECT().DeleteEmployee(gomock.Any(), int64(3)).Return(nil)
		a.repo.EXPECT().DeleteUser(gomock.Any(), int64(10)).Return(nil)

		rec := a.do(t, http.MethodDelete, "/api/employees/3", "admin", "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/api/employees/abc", "admin", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Notifications(t *testing.T) {
	t.Parallel()

	t.Run("foreign notification", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.repo.EXPECT().NotificationByID(gomock.Any(), int64(9)).Return(entity.Notification{ID: 9, UserID: 42}, nil)

		rec := a.do(t, http.MethodPut, "/api/notifications/9/read", "validator", "")
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("read all", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.repo.EXPECT().MarkAllNotificationsRead(gomock.Any(), int64(42)).Return(int64(2), nil)

		rec := a.do(t, http.MethodPut, "/api/notifications/read-all", "employee", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int64(2), decode[api.MarkAllReadResponse](t, rec).Updated)
	})
}

func TestHandler_CurrentUser(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/api/user", "employee", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.CurrentUserResponse](t, rec)
	require.Equal(t, int64(42), got.ID)
	require.Equal(t, []entity.Action{entity.ActionCreateRequest}, got.Permissions)
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()

	a := newJWTTestAPI(t)

	hash, err := service.HashPassword("password123")
	require.NoError(t, err)

	user := entity.User{ID: 42, Name: "Emp", Email: "emp@example.com", PasswordHash: hash, Role: entity.RoleEmployee}

	a.repo.EXPECT().UserByEmail(gomock.Any(), "emp@example.com").Return(user, nil)

	rec := a.do(t, http.MethodPost, "/api/login", "", `{"email":"emp@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	token := decode[api.TokenResponse](t, rec).Token
	require.NotEmpty(t, token)

	var revoked entity.RevokedToken

	gomock.InOrder(
		a.repo.EXPECT().TokenRevoked(gomock.Any(), gomock.Any()).Return(false, nil),
		a.repo.EXPECT().TokenRevoked(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (bool, error) {
				require.Equal(t, revoked.ID, id)
				return true, nil
			}),
	)
	a.repo.EXPECT().UserByID(gomock.Any(), int64(42)).Return(user, nil)
	a.repo.EXPECT().RevokeToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rt entity.RevokedToken) error {
			require.NotEmpty(t, rt.ID)
			require.Equal(t, int64(42), rt.UserID)
			require.True(t, rt.ExpiresAt.After(time.Now()))

			revoked = rt

			return nil
		})

	rec = a.do(t, http.MethodPost, "/api/logout", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/user", token, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_EmptyLists(t *testing.T) {
	t.Parallel()

	t.Run("stocks", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.repo.EXPECT().StocksList(gomock.Any()).Return(nil, nil)

		rec := a.do(t, http.MethodGet, "/api/stocks", "admin", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("notifications", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.repo.EXPECT().NotificationsByUserID(gomock.Any(), int64(42)).Return(nil, nil)

		rec := a.do(t, http.MethodGet, "/api/notifications", "employee", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("employees", func(t *testing.T) {
		t.Parallel()

		a := newTestAPI(t)
		a.repo.EXPECT().EmployeesList(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

		rec := a.do(t, http.MethodGet, "/api/employees", "admin", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":10}`, rec.Body.String())
	})
}
