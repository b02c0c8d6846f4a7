package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/materials/internal/entity"
)

func TestStatusChange_Apply(t *testing.T) {
	t.Parallel()

	delivery := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	oldDelivery := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	reason := "Out of budget"
	oldReason := "old reason"

	for _, tt := range []struct {
		name       string
		before     entity.MaterialRequest
		change     entity.StatusChange
		wantStatus entity.RequestStatus
		wantDate   *time.Time
		wantReason *string
	}{
		{
			name:       "approve sets delivery date and clears reason",
			before:     entity.MaterialRequest{Status: entity.StatusRejected, RejectionReason: &oldReason},
			change:     entity.StatusChange{Status: entity.StatusApproved, DeliveryDate: &delivery},
			wantStatus: entity.StatusApproved,
			wantDate:   &delivery,
		},
		{
			name:       "approve without date",
			before:     entity.MaterialRequest{Status: entity.StatusPending},
			change:     entity.StatusChange{Status: entity.StatusApproved},
			wantStatus: entity.StatusApproved,
		},
		{
			name:       "reject sets reason and clears delivery date",
			before:     entity.MaterialRequest{Status: entity.StatusApproved, DeliveryDate: &oldDelivery},
			change:     entity.StatusChange{Status: entity.StatusRejected, RejectionReason: &reason},
			wantStatus: entity.StatusRejected,
			wantReason: &reason,
		},
		{
			name:       "delivered keeps previous delivery date",
			before:     entity.MaterialRequest{Status: entity.StatusApproved, DeliveryDate: &oldDelivery},
			change:     entity.StatusChange{Status: entity.StatusDelivered},
			wantStatus: entity.StatusDelivered,
			wantDate:   &oldDelivery,
		},
		{
			name:       "delivered overwrites delivery date",
			before:     entity.MaterialRequest{Status: entity.StatusApproved, DeliveryDate: &oldDelivery},
			change:     entity.StatusChange{Status: entity.StatusDelivered, DeliveryDate: &delivery},
			wantStatus: entity.StatusDelivered,
			wantDate:   &delivery,
		},
		{
			name:       "back to pending clears both",
			before:     entity.MaterialRequest{Status: entity.StatusDelivered, DeliveryDate: &oldDelivery},
			change:     entity.StatusChange{Status: entity.StatusPending},
			wantStatus: entity.StatusPending,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.before
			tt.change.Apply(&req)

			require.Equal(t, tt.wantStatus, req.Status)
			require.Equal(t, tt.wantDate, req.DeliveryDate)
			require.Equal(t, tt.wantReason, req.RejectionReason)
		})
	}
}

func TestHasPermission(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	r.True(entity.HasPermission(entity.RoleAdmin, entity.ActionManageEmployees))
	r.True(entity.HasPermission(entity.RoleAdmin, entity.ActionDeleteRequest))
	r.True(entity.HasPermission(entity.RoleValidator, entity.ActionUpdateStatus))
	r.True(entity.HasPermission(entity.RoleValidator, entity.ActionListRequests))
	r.False(entity.HasPermission(entity.RoleValidator, entity.ActionDeleteRequest))
	r.False(entity.HasPermission(entity.RoleValidator, entity.ActionManageStock))
	r.True(entity.HasPermission(entity.RoleEmployee, entity.ActionCreateRequest))
	r.False(entity.HasPermission(entity.RoleEmployee, entity.ActionUpdateStatus))
	r.False(entity.HasPermission(entity.Role("root"), entity.ActionCreateRequest))
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	role, err := entity.ParseRole(" Validator ")
	r.NoError(err)
	r.Equal(entity.RoleValidator, role)
	r.Equal(entity.RoleIDValidator, role.ID())

	_, err = entity.ParseRole("administrateur")
	r.ErrorIs(err, entity.ErrInvalidRole)
}
