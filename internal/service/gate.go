package service

import (
	"context"
	"fmt"

	"github.com/samandr77/materials/internal/entity"
)

func IsAdmin(user entity.User) bool {
	return user.IsAdmin()
}

func HasRole(user entity.User, roles ...entity.Role) bool {
	return user.HasRole(roles...)
}

// authorize returns the caller's session when its role grants action.
// It has no side effects, so a denied call leaves the store untouched.
func authorize(ctx context.Context, action entity.Action) (entity.Session, error) {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return entity.Session{}, err
	}

	if !entity.HasPermission(sess.User.Role, action) {
		return sess, fmt.Errorf("%w: user %d with role %s may not %s",
			entity.ErrForbidden, sess.User.ID, sess.User.Role, action)
	}

	return sess, nil
}
