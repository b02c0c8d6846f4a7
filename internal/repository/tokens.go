package repository

import (
	"context"

	"github.com/samandr77/materials/internal/entity"
)

// RevokeToken stores a signed-out token and drops revocations whose tokens
// have expired on their own.
func (r *Repository) RevokeToken(ctx context.Context, token entity.RevokedToken) error {
	return r.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < now()`); err != nil {
			return mapErr(err)
		}

		_, err := r.conn(ctx).Exec(ctx, `INSERT INTO revoked_tokens (id, user_id, expires_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING`,
			token.ID,
			token.UserID,
			token.ExpiresAt,
		)

		return mapErr(err)
	})
}

func (r *Repository) TokenRevoked(ctx context.Context, id string) (bool, error) {
	var revoked bool

	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE id = $1)`, id).Scan(&revoked)
	if err != nil {
		return false, mapErr(err)
	}

	return revoked, nil
}
