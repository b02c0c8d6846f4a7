package entity

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusDelivered RequestStatus = "delivered"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDelivered:
		return true
	}

	return false
}

func (s RequestStatus) String() string {
	return string(s)
}

const DefaultQuantity = 1

type MaterialRequest struct {
	ID              int64         `json:"id"`
	MaterialName    string        `json:"material_name"`
	Quantity        int           `json:"quantity"`
	Justification   string        `json:"justification"`
	UserID          int64         `json:"user_id"`
	RequesterName   string        `json:"requester_name,omitempty"`
	Status          RequestStatus `json:"status"`
	DeliveryDate    *time.Time    `json:"delivery_date"`
	RejectionReason *string       `json:"rejection_reason"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// StatusChange carries the fields written together with a new status.
type StatusChange struct {
	Status          RequestStatus
	DeliveryDate    *time.Time
	RejectionReason *string
}

// Apply overwrites the status and the extra field that goes with it.
// Approved and delivered requests keep a delivery date, rejected ones a
// rejection reason; pending clears both.
func (c StatusChange) Apply(req *MaterialRequest) {
	req.Status = c.Status

	switch c.Status {
	case StatusApproved:
		req.DeliveryDate = c.DeliveryDate
		req.RejectionReason = nil
	case StatusDelivered:
		if c.DeliveryDate != nil {
			req.DeliveryDate = c.DeliveryDate
		}

		req.RejectionReason = nil
	case StatusRejected:
		req.RejectionReason = c.RejectionReason
		req.DeliveryDate = nil
	case StatusPending:
		req.DeliveryDate = nil
		req.RejectionReason = nil
	}
}

type OrderBy string

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	}

	return false
}

type Page struct {
	Page  uint64
	Limit uint64
}

func (p Page) Offset() uint64 {
	if p.Page == 0 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

type MaterialRequestsFilter struct {
	Page
	Status  *RequestStatus
	UserID  *int64
	OrderBy OrderBy
}

type NewMaterialRequest struct {
	MaterialName  string
	Quantity      *int
	Justification string
}
