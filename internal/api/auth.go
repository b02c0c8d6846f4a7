package api

import (
	"net/http"

	"github.com/samandr77/materials/internal/entity"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CurrentUserResponse struct {
	entity.User
	Permissions []entity.Action `json:"permissions"`
}

type TokenResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Register godoc
// @Summary      Self-service sign up
// @Description  Creates an account with the employee role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account"
// @Success      201 {object} TokenResponse
// @Failure      400 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	user, token, err := h.s.Register(ctx, entity.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "User")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, TokenResponse{Token: token, User: user})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} TokenResponse
// @Failure      401 {object} ResponseError
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	user, token, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err, "User")
		return
	}

	SendJSON(ctx, w, http.StatusOK, TokenResponse{Token: token, User: user})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the bearer token used for the request.
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} ResponseError
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.s.Logout(ctx); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser godoc
// @Summary      Authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} CurrentUserResponse
// @Failure      401 {object} ResponseError
// @Router       /user [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CurrentUserResponse{
		User:        sess.User,
		Permissions: entity.PermissionsByRole(sess.User.Role),
	})
}
