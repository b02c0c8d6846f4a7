package entity

import "time"

type NotificationPayload struct {
	RequestID       int64         `json:"request_id"`
	MaterialName    string        `json:"material_name"`
	Quantity        int           `json:"quantity"`
	Status          RequestStatus `json:"status"`
	Justification   string        `json:"justification"`
	DeliveryDate    *time.Time    `json:"delivery_date,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
}

type Notification struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"user_id"`
	Data      NotificationPayload `json:"data"`
	Read      bool                `json:"read"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewStatusNotification(req MaterialRequest) Notification {
	return Notification{
		UserID: req.UserID,
		Data: NotificationPayload{
			RequestID:       req.ID,
			MaterialName:    req.MaterialName,
			Quantity:        req.Quantity,
			Status:          req.Status,
			Justification:   req.Justification,
			DeliveryDate:    req.DeliveryDate,
			RejectionReason: req.RejectionReason,
		},
	}
}
