package api

import (
	"net/http"

	"github.com/samandr77/materials/internal/entity"
)

type CreateEmployeeRequest struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	Role       entity.Role `json:"role"`
	Matricule  string      `json:"matricule"`
	Department *string     `json:"department"`
	Position   *string     `json:"position"`
}

type UpdateEmployeeRequest struct {
	Name       *string      `json:"name"`
	Email      *string      `json:"email"`
	Role       *entity.Role `json:"role"`
	Matricule  *string      `json:"matricule"`
	Department *string      `json:"department"`
	Position   *string      `json:"position"`
}

// CreateEmployee godoc
// @Summary      Create an employee and its account
// @Description  Admin only. A one-time password is mailed when none is given.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateEmployeeRequest true "Employee"
// @Success      201 {object} entity.Employee
// @Failure      403 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /employees [post]
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEmployeeRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	emp, err := h.s.CreateEmployee(ctx, entity.NewEmployee{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       entityRole(req.Role),
		Matricule:  req.Matricule,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Employee")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, emp)
}

// Employees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page"
// @Param        limit query int false "Page size"
// @Success      200 {object} ListResponse[entity.Employee]
// @Failure      403 {object} ResponseError
// @Router       /employees [get]
func (h *Handler) Employees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePage(r.URL.Query())

	employees, total, err := h.s.Employees(ctx, page)
	if err != nil {
		SendServiceErr(ctx, w, err, "Employees")
		return
	}

	page = h.s.NormalizePage(page)

	SendJSON(ctx, w, http.StatusOK, ListResponse[entity.Employee]{
		Data:  nonNil(employees),
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// Employee godoc
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Employee id"
// @Success      200 {object} entity.Employee
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /employees/{id} [get]
func (h *Handler) Employee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	emp, err := h.s.Employee(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Employee")
		return
	}

	SendJSON(ctx, w, http.StatusOK, emp)
}

// UpdateEmployee godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                   true "Employee id"
// @Param        request body UpdateEmployeeRequest true "Changed fields"
// @Success      200 {object} entity.Employee
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /employees/{id} [put]
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	var req UpdateEmployeeRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if req.Role != nil {
		role := entityRole(*req.Role)
		req.Role = &role
	}

	emp, err := h.s.UpdateEmployee(ctx, id, entity.EmployeeUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Matricule:  req.Matricule,
		Department: req.Department,
		Position:   req.Position,
		Role:       req.Role,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Employee")
		return
	}

	SendJSON(ctx, w, http.StatusOK, emp)
}

// DeleteEmployee godoc
// @Summary      Delete an employee and its account
// @Tags         employees
// @Security     BearerAuth
// @Param        id path int true "Employee id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /employees/{id} [delete]
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if err := h.s.DeleteEmployee(ctx, id); err != nil {
		SendServiceErr(ctx, w, err, "Employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// entityRole normalizes a role from the wire. Unknown values are kept as
// they are so that the service rejects them.
func entityRole(r entity.Role) entity.Role {
	role, err := entity.ParseRole(string(r))
	if err != nil {
		return r
	}

	return role
}
