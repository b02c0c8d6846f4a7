package api

import (
	"net/http"

	"github.com/samandr77/materials/internal/entity"
)

type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *entity.Role `json:"role"`
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequest true "User"
// @Success      201 {object} entity.User
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	user, err := h.s.CreateUser(ctx, entity.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entityRole(req.Role),
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "User")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, user)
}

// Users godoc
// @Summary      List users
// @Description  Admin accounts are not listed
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} ListResponse[entity.User]
// @Failure      403 {object} ResponseError
// @Router       /users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r.URL.Query())

	users, total, err := h.s.Users(ctx, page)
	if err != nil {
		SendServiceErr(ctx, w, err, "Users")
		return
	}

	page = h.s.NormalizePage(page)

	SendJSON(ctx, w, http.StatusOK, ListResponse[entity.User]{
		Data:  nonNil(users),
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// User godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Success      200 {object} entity.User
// @Failure      404 {object} ResponseError
// @Router       /users/{id} [get]
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	user, err := h.s.User(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "User")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int               true "User id"
// @Param        request body UpdateUserRequest true "Changed fields"
// @Success      200 {object} entity.User
// @Failure      404 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	var req UpdateUserRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if req.Role != nil {
		role := entityRole(*req.Role)
		req.Role = &role
	}

	user, err := h.s.UpdateUser(ctx, id, entity.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "User")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if err := h.s.DeleteUser(ctx, id); err != nil {
		SendServiceErr(ctx, w, err, "User")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
