package api

import (
	"net/http"
)

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// Notifications godoc
// @Summary      Notifications of the caller
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entity.Notification
// @Router       /notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.s.Notifications(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Notifications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, nonNil(notifications))
}

// MarkNotificationRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id path int true "Notification id"
// @Success      204
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Router       /notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		SendServiceErr(ctx, w, err, "")
		return
	}

	if err := h.s.MarkNotificationRead(ctx, id); err != nil {
		SendServiceErr(ctx, w, err, "Notification")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead godoc
// @Summary      Mark every notification of the caller as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MarkAllReadResponse
// @Router       /notifications/read-all [put]
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.s.MarkAllNotificationsRead(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Notifications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MarkAllReadResponse{Updated: n})
}
