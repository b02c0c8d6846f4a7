package api

import (
	"net/http"

	"github.com/samandr77/materials/internal/entity"
)

type StockRequest struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
}

// CreateStock godoc
// @Summary      Add a stock item
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StockRequest true "Stock item"
// @Success      201 {object} entity.Stock
// @Failure      403 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /stocks [post]
func (h *Handler) CreateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StockRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	stock, err := h.s.CreateStock(ctx, entity.Stock{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Stock")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, stock)
}

// Stocks godoc
// @Summary      List stock items
// @Tags         stocks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entity.Stock
// @Failure      403 {object} ResponseError
// @Router       /stocks [get]
func (h *Handler) Stocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stocks, err := h.s.Stocks(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Stocks")
		return
	}

	SendJSON(ctx, w, http.StatusOK, nonNil(stocks))
}

// Stock godoc
// @Summary      Get a stock item
// @Tags         stocks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Stock id"
// @Success      200 {object} entity.Stock
// @Failure      404 {object} ResponseError
// @Router       /stocks/{id} [get]
func (h *Handler) Stock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	stock, err := h.s.Stock(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Stock")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stock)
}

// UpdateStock godoc
// @Summary      Replace a stock item
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int          true "Stock id"
// @Param        request body StockRequest true "Stock item"
// @Success      200 {object} entity.Stock
// @Failure      404 {object} ResponseError
// @Failure      422 {object} ResponseError
// @Router       /stocks/{id} [put]
func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	var req StockRequest

	if err := decodeJSON(w, r, &req); err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	stock, err := h.s.UpdateStock(ctx, entity.Stock{
		ID:          id,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		SendServiceErr(ctx, w, err, "Stock")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stock)
}

// DeleteStock godoc
// @Summary      Delete a stock item
// @Tags         stocks
// @Security     BearerAuth
// @Param        id path int true "Stock id"
// @Success      204
// @Failure      404 {object} ResponseError
// @Router       /stocks/{id} [delete]
func (h *Handler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if err := h.s.DeleteStock(ctx, id); err != nil {
		SendServiceErr(ctx, w, err, "Stock")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
