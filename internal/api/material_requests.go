package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/samandr77/materials/internal/entity"
)

type CreateMaterialRequestRequest struct {
	MaterialName  string `json:"material_name"`
	Quantity      *int   `json:"quantity"`
	Justification string `json:"justification"`
}

type UpdateStatusRequest struct {
	Status          entity.RequestStatus `json:"status"`
	DeliveryDate    *Date                `json:"delivery_date"`
	RejectionReason *string              `json:"rejection_reason"`
}

// Date accepts both RFC 3339 timestamps and plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}

	return &time.ParseError{Layout: time.DateOnly, Value: s}
}

// CreateMaterialRequest godoc
// @Summary      Submit a material request
// @Tags         material-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMaterialRequestRequest true "Request"
// @Success      201 {object} entity.MaterialRequest
// @Failure      400 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /material-requests [post]
func (h *Handler) CreateMaterialRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateMaterialRequestRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	created, err := h.s.CreateMaterialRequest(ctx, entity.NewMaterialRequest{
		MaterialName:  req.MaterialName,
		Quantity:      req.Quantity,
		Justification: req.Justification,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Material request")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// MaterialRequests godoc
// @Summary      List material requests
// @Description  Employees only see their own requests
// @Tags         material-requests
// @Produce      json
// @Security     BearerAuth
// @Param        page     query int    false "Page"
// @Param        limit    query int    false "Page size"
// @Param        status   query string false "pending, approved, rejected or delivered"
// @Param        user_id  query int    false "Requester"
// @Param        order    query string false "asc or desc"
// @Success      200 {object} ListResponse[entity.MaterialRequest]
// @Failure      422 {object} ResponseError
// @Router       /material-requests [get]
func (h *Handler) MaterialRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entity.MaterialRequestsFilter{
		Page:    parsePage(q),
		OrderBy: entity.OrderBy(q.Get("order")),
	}

	if s := q.Get("status"); s != "" {
		status := entity.RequestStatus(s)
		filter.Status = &status
	}

	if s := q.Get("user_id"); s != "" {
		userID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid user_id")
			return
		}

		filter.UserID = &userID
	}

	requests, total, err := h.s.MaterialRequests(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err, "Material requests")
		return
	}

	page := h.s.NormalizePage(filter.Page)

	SendJSON(ctx, w, http.StatusOK, ListResponse[entity.MaterialRequest]{
		Data:  nonNil(requests),
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// MaterialRequest godoc
// @Summary      Get a material request
// @Tags         material-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Request id"
// @Success      200 {object} entity.MaterialRequest
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /material-requests/{id} [get]
func (h *Handler) MaterialRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	req, err := h.s.MaterialRequest(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Material request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, req)
}

// UpdateMaterialRequestStatus godoc
// @Summary      Change the status of a material request
// @Description  Validators and admins only. The requester is notified.
// @Tags         material-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                 true "Request id"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} entity.MaterialRequest
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /material-requests/{id} [put]
func (h *Handler) UpdateMaterialRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	var req UpdateStatusRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	change := entity.StatusChange{
		Status:          req.Status,
		RejectionReason: req.RejectionReason,
	}

	if req.DeliveryDate != nil {
		change.DeliveryDate = &req.DeliveryDate.Time
	}

	updated, err := h.s.UpdateMaterialRequestStatus(ctx, id, change)
	if err != nil {
		SendServiceErr(ctx, w, err, "Material request")
		return
	}

	SendJSON(ctx, w, http.StatusOK, updated)
}

// DeleteMaterialRequest godoc
// @Summary      Delete a material request
// @Tags         material-requests
// @Security     BearerAuth
// @Param        id path int true "Request id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /material-requests/{id} [delete]
func (h *Handler) DeleteMaterialRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if err := h.s.DeleteMaterialRequest(ctx, id); err != nil {
		SendServiceErr(ctx, w, err, "Material request")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
