package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/materials/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.WithIP, mw.Log, mw.Recover, mw.Cors)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/user", h.CurrentUser)
			r.Post("/logout", h.Logout)

			r.Route("/material-requests", func(r chi.Router) {
				r.Get("/", h.MaterialRequests)
				r.Post("/", h.CreateMaterialRequest)
				r.Get("/{id}", h.MaterialRequest)
				r.Put("/{id}", h.UpdateMaterialRequestStatus)
				r.Patch("/{id}", h.UpdateMaterialRequestStatus)
				r.Delete("/{id}", h.DeleteMaterialRequest)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employees)
				r.Post("/", h.CreateEmployee)
				r.Get("/{id}", h.Employee)
				r.Put("/{id}", h.UpdateEmployee)
				r.Delete("/{id}", h.DeleteEmployee)
			})

			r.Route("/stocks", func(r chi.Router) {
				r.Get("/", h.Stocks)
				r.Post("/", h.CreateStock)
				r.Get("/{id}", h.Stock)
				r.Put("/{id}", h.UpdateStock)
				r.Delete("/{id}", h.DeleteStock)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.Users)
				r.Post("/", h.CreateUser)
				r.Get("/{id}", h.User)
				r.Put("/{id}", h.UpdateUser)
				r.Delete("/{id}", h.DeleteUser)
			})

			r.Get("/notifications", h.Notifications)
			r.Put("/notifications/read-all", h.MarkAllNotificationsRead)
			r.Put("/notifications/{id}/read", h.MarkNotificationRead)
		})
	})

	return router
}
