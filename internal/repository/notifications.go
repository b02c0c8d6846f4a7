package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/samandr77/materials/internal/entity"
)

const selectNotification = `SELECT id, user_id, data, read, created_at, updated_at FROM notifications`

func scanNotification(row pgx.Row) (entity.Notification, error) {
	var n entity.Notification

	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Data,
		&n.Read,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return entity.Notification{}, mapErr(err)
	}

	return n, nil
}

func (r *Repository) CreateNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	sqlQuery := `INSERT INTO notifications (user_id, data, read)
		VALUES ($1, $2, FALSE)
		RETURNING id, user_id, data, read, created_at, updated_at`

	return scanNotification(r.conn(ctx).QueryRow(ctx, sqlQuery, n.UserID, n.Data))
}

func (r *Repository) NotificationByID(ctx context.Context, id int64) (entity.Notification, error) {
	return scanNotification(r.conn(ctx).QueryRow(ctx, selectNotification+` WHERE id = $1`, id))
}

func (r *Repository) NotificationsByUserID(ctx context.Context, userID int64) ([]entity.Notification, error) {
	rows, err := r.conn(ctx).Query(ctx, selectNotification+` WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]entity.Notification, 0)

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE notifications SET read = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE notifications SET read = TRUE, updated_at = now() WHERE user_id = $1 AND read = FALSE`, userID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
