package api

import (
	"context"
	"net/http"

	"github.com/samandr77/materials/internal/entity"
)

type Service interface {
	NormalizePage(page entity.Page) entity.Page

	Register(ctx context.Context, in entity.NewUser) (entity.User, string, error)
	Login(ctx context.Context, email, password string) (entity.User, string, error)
	Logout(ctx context.Context) error

	CreateMaterialRequest(ctx context.Context, in entity.NewMaterialRequest) (entity.MaterialRequest, error)
	MaterialRequest(ctx context.Context, id int64) (entity.MaterialRequest, error)
	MaterialRequests(ctx context.Context, filter entity.MaterialRequestsFilter) ([]entity.MaterialRequest, int, error)
	UpdateMaterialRequestStatus(ctx context.Context, id int64, change entity.StatusChange) (entity.MaterialRequest, error)
	DeleteMaterialRequest(ctx context.Context, id int64) error

	CreateEmployee(ctx context.Context, in entity.NewEmployee) (entity.Employee, error)
	Employee(ctx context.Context, id int64) (entity.Employee, error)
	Employees(ctx context.Context, page entity.Page) ([]entity.Employee, int, error)
	UpdateEmployee(ctx context.Context, id int64, upd entity.EmployeeUpdate) (entity.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error

	CreateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error)
	Stock(ctx context.Context, id int64) (entity.Stock, error)
	Stocks(ctx context.Context) ([]entity.Stock, error)
	UpdateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error)
	DeleteStock(ctx context.Context, id int64) error

	CreateUser(ctx context.Context, in entity.NewUser) (entity.User, error)
	User(ctx context.Context, id int64) (entity.User, error)
	Users(ctx context.Context, page entity.Page) ([]entity.User, int, error)
	UpdateUser(ctx context.Context, id int64, upd entity.UserUpdate) (entity.User, error)
	DeleteUser(ctx context.Context, id int64) error

	Notifications(ctx context.Context) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
}

// @title Materials API
// @version 1.0
// @description Material requests, employees, stock and notifications.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Service unavailable")
	}
}
