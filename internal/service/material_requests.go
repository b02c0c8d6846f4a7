package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/materials/internal/entity"
)

func (s *Service) CreateMaterialRequest(ctx context.Context, in entity.NewMaterialRequest) (entity.MaterialRequest, error) {
	sess, err := authorize(ctx, entity.ActionCreateRequest)
	if err != nil {
		return entity.MaterialRequest{}, err
	}

	if err := ValidateNewMaterialRequest(in); err != nil {
		return entity.MaterialRequest{}, err
	}

	quantity := entity.DefaultQuantity
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	req, err := s.repo.CreateMaterialRequest(ctx, entity.MaterialRequest{
		MaterialName:  strings.TrimSpace(in.MaterialName),
		Quantity:      quantity,
		Justification: strings.TrimSpace(in.Justification),
		UserID:        sess.User.ID,
		Status:        entity.StatusPending,
	})
	if err != nil {
		return entity.MaterialRequest{}, fmt.Errorf("create material request: %w", err)
	}

	slog.InfoContext(ctx, "material request created", "request_id", req.ID, "quantity", req.Quantity)

	return req, nil
}

func (s *Service) MaterialRequest(ctx context.Context, id int64) (entity.MaterialRequest, error) {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return entity.MaterialRequest{}, err
	}

	req, err := s.repo.MaterialRequestByID(ctx, id)
	if err != nil {
		return entity.MaterialRequest{}, fmt.Errorf("get material request %d: %w", id, err)
	}

	if req.UserID != sess.User.ID && !entity.HasPermission(sess.User.Role, entity.ActionListRequests) {
		return entity.MaterialRequest{}, fmt.Errorf("%w: request %d belongs to another user", entity.ErrForbidden, id)
	}

	return req, nil
}

// MaterialRequests lists requests, newest first unless asked otherwise. Callers without the list
// permission only ever see their own requests.
func (s *Service) MaterialRequests(
	ctx context.Context,
	filter entity.MaterialRequestsFilter,
) ([]entity.MaterialRequest, int, error) {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, 0, invalid(fmt.Errorf("%w: %q", entity.ErrInvalidStatus, *filter.Status))
	}

	if filter.OrderBy == "" {
		filter.OrderBy = entity.DESC
	}

	if !filter.OrderBy.IsValid() {
		return nil, 0, invalid(fmt.Errorf("unknown sort order %q", filter.OrderBy))
	}

	if !entity.HasPermission(sess.User.Role, entity.ActionListRequests) {
		filter.UserID = ptr(sess.User.ID)
	}

	filter.Page = s.NormalizePage(filter.Page)

	requests, total, err := s.repo.MaterialRequestsList(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list material requests: %w", err)
	}

	return requests, total, nil
}

// UpdateMaterialRequestStatus writes the new status and notifies the
// requester in the same transaction.
func (s *Service) UpdateMaterialRequestStatus(
	ctx context.Context,
	id int64,
	change entity.StatusChange,
) (entity.MaterialRequest, error) {
	sess, err := authorize(ctx, entity.ActionUpdateStatus)
	if err != nil {
		return entity.MaterialRequest{}, err
	}

	if err := ValidateStatusChange(change); err != nil {
		return entity.MaterialRequest{}, err
	}

	if change.RejectionReason != nil {
		change.RejectionReason = ptr(strings.TrimSpace(*change.RejectionReason))
	}

	var updated entity.MaterialRequest

	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		req, err := s.repo.MaterialRequestByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get material request %d: %w", id, err)
		}

		previous := req.Status
		change.Apply(&req)

		updated, err = s.repo.UpdateMaterialRequestStatus(ctx, req)
		if err != nil {
			return fmt.Errorf("update material request %d: %w", id, err)
		}

		if _, err := s.notify(ctx, updated); err != nil {
			return err
		}

		slog.InfoContext(ctx, "material request status changed",
			"request_id", id,
			"from", previous,
			"to", updated.Status,
			"by", sess.User.ID,
		)

		return nil
	})
	if err != nil {
		return entity.MaterialRequest{}, err
	}

	return updated, nil
}

func (s *Service) DeleteMaterialRequest(ctx context.Context, id int64) error {
	if _, err := authorize(ctx, entity.ActionDeleteRequest); err != nil {
		return err
	}

	if err := s.repo.DeleteMaterialRequest(ctx, id); err != nil {
		return fmt.Errorf("delete material request %d: %w", id, err)
	}

	slog.InfoContext(ctx, "material request deleted", "request_id", id)

	return nil
}
