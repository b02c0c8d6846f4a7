package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/materials/internal/entity"
)

func (s *Service) CreateUser(ctx context.Context, in entity.NewUser) (entity.User, error) {
	if _, err := authorize(ctx, entity.ActionManageUsers); err != nil {
		return entity.User{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	if in.Role == "" {
		in.Role = entity.RoleEmployee
	}

	if err := validateNewAccount(in.Name, in.Email, in.Password, in.Role); err != nil {
		return entity.User{}, err
	}

	// Without a password the account is locked until the account mail
	// issues a one-time password.
	password := in.Password
	if password == "" {
		password = GeneratePassword()
	}

	hash, err := HashPassword(password)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.repo.CreateUser(ctx, entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("create user %s: %w", in.Email, err)
	}

	slog.InfoContext(ctx, "user created", "new_user_id", user.ID, "role", user.Role)

	s.publishAccountCreated(ctx, entity.AccountCreated{
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		IssuePassword: in.Password == "",
	})

	return user, nil
}

func (s *Service) User(ctx context.Context, id int64) (entity.User, error) {
	if _, err := authorize(ctx, entity.ActionManageUsers); err != nil {
		return entity.User{}, err
	}

	user, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user %d: %w", id, err)
	}

	return user, nil
}

func (s *Service) Users(ctx context.Context, page entity.Page) ([]entity.User, int, error) {
	if _, err := authorize(ctx, entity.ActionManageUsers); err != nil {
		return nil, 0, err
	}

	users, total, err := s.repo.UsersList(ctx, s.NormalizePage(page))
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, upd entity.UserUpdate) (entity.User, error) {
	if _, err := authorize(ctx, entity.ActionManageUsers); err != nil {
		return entity.User{}, err
	}

	if upd.Name != nil {
		upd.Name = ptr(strings.TrimSpace(*upd.Name))
		if err := ValidateName(*upd.Name); err != nil {
			return entity.User{}, err
		}
	}

	if upd.Email != nil {
		upd.Email = ptr(NormalizeEmail(*upd.Email))
		if err := ValidateEmail(*upd.Email); err != nil {
			return entity.User{}, err
		}
	}

	if upd.Role != nil {
		if err := ValidateRole(*upd.Role); err != nil {
			return entity.User{}, err
		}
	}

	if upd.Password != nil {
		if err := ValidatePassword(*upd.Password); err != nil {
			return entity.User{}, err
		}

		hash, err := HashPassword(*upd.Password)
		if err != nil {
			return entity.User{}, err
		}

		upd.Password = &hash
	}

	user, err := s.repo.UpdateUser(ctx, id, upd)
	if err != nil {
		return entity.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	return user, nil
}

// DeleteUser removes the user. The linked employee row, if any, is removed
// by the foreign key cascade.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	sess, err := authorize(ctx, entity.ActionManageUsers)
	if err != nil {
		return err
	}

	if sess.User.ID == id {
		return fmt.Errorf("%w: admin may not delete own account", entity.ErrForbidden)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	slog.InfoContext(ctx, "user deleted", "deleted_user_id", id)

	return nil
}
