package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samandr77/materials/internal/entity"
)

// notify appends an unread status notification for the owner of req.
func (s *Service) notify(ctx context.Context, req entity.MaterialRequest) (entity.Notification, error) {
	n, err := s.repo.CreateNotification(ctx, entity.NewStatusNotification(req))
	if err != nil {
		return entity.Notification{}, fmt.Errorf("create notification for user %d: %w", req.UserID, err)
	}

	return n, nil
}

func (s *Service) Notifications(ctx context.Context) ([]entity.Notification, error) {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repo.NotificationsByUserID(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id int64) error {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	n, err := s.repo.NotificationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get notification %d: %w", id, err)
	}

	if n.UserID != sess.User.ID {
		slog.WarnContext(ctx, "attempt to read foreign notification", "notification_id", id, "owner", n.UserID)
		return fmt.Errorf("%w: notification %d belongs to another user", entity.ErrForbidden, id)
	}

	if n.Read {
		return nil
	}

	if err := s.repo.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}

	return nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.MarkAllNotificationsRead(ctx, sess.User.ID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	return n, nil
}
