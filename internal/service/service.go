package service

import (
	"context"
	"time"

	"github.com/samandr77/materials/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=../mocks/service.go -package=mocks github.com/samandr77/materials/internal/service Repository,Publisher,Mailer

const maxPageSize = 100

type UserRepository interface {
	CreateUser(ctx context.Context, user entity.User) (entity.User, error)
	UserByID(ctx context.Context, id int64) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UsersList(ctx context.Context, page entity.Page) ([]entity.User, int, error)
	UpdateUser(ctx context.Context, id int64, upd entity.UserUpdate) (entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, emp entity.Employee) (entity.Employee, error)
	EmployeeByID(ctx context.Context, id int64) (entity.Employee, error)
	EmployeesList(ctx context.Context, page entity.Page) ([]entity.Employee, int, error)
	UpdateEmployee(ctx context.Context, id int64, upd entity.EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, id int64) error
}

type MaterialRequestRepository interface {
	CreateMaterialRequest(ctx context.Context, req entity.MaterialRequest) (entity.MaterialRequest, error)
	MaterialRequestByID(ctx context.Context, id int64) (entity.MaterialRequest, error)
	MaterialRequestsList(ctx context.Context, filter entity.MaterialRequestsFilter) ([]entity.MaterialRequest, int, error)
	UpdateMaterialRequestStatus(ctx context.Context, req entity.MaterialRequest) (entity.MaterialRequest, error)
	DeleteMaterialRequest(ctx context.Context, id int64) error
}

type StockRepository interface {
	CreateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error)
	StockByID(ctx context.Context, id int64) (entity.Stock, error)
	StocksList(ctx context.Context) ([]entity.Stock, error)
	UpdateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error)
	DeleteStock(ctx context.Context, id int64) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n entity.Notification) (entity.Notification, error)
	NotificationByID(ctx context.Context, id int64) (entity.Notification, error)
	NotificationsByUserID(ctx context.Context, userID int64) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error)
}

type TokenRepository interface {
	RevokeToken(ctx context.Context, token entity.RevokedToken) error
	TokenRevoked(ctx context.Context, id string) (bool, error)
}

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	UserRepository
	EmployeeRepository
	MaterialRequestRepository
	StockRepository
	NotificationRepository
	TokenRepository
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

type Mailer interface {
	SendMessage(subject, html, plain string, recipients ...string) error
}

type Options struct {
	JWTSecret       string
	JWTTTL          time.Duration
	DefaultPageSize uint64
	AccountTopic    string
	FrontendURL     string
}

type Service struct {
	opts      Options
	repo      Repository
	publisher Publisher
	mailer    Mailer
	now       func() time.Time
}

// New builds the service. mailer may be nil when account mails are not
// delivered by this instance.
func New(opts Options, repo Repository, publisher Publisher, mailer Mailer) *Service {
	return &Service{
		opts:      opts,
		repo:      repo,
		publisher: publisher,
		mailer:    mailer,
		now:       time.Now,
	}
}

// NormalizePage applies the default page size and caps the limit.
func (s *Service) NormalizePage(page entity.Page) entity.Page {
	if page.Page == 0 {
		page.Page = 1
	}

	if page.Limit == 0 {
		page.Limit = s.opts.DefaultPageSize
	}

	if page.Limit > maxPageSize {
		page.Limit = maxPageSize
	}

	return page
}

func ptr[T any](v T) *T {
	return &v
}
