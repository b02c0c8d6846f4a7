package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/materials/internal/entity"
)

func validateNewAccount(name, email, password string, role entity.Role) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if err := ValidateEmail(email); err != nil {
		return err
	}

	if password != "" {
		if err := ValidatePassword(password); err != nil {
			return err
		}
	}

	return ValidateRole(role)
}

// CreateEmployee creates the backing user and the employee record in one
// transaction. The account event is published once both rows are committed.
func (s *Service) CreateEmployee(ctx context.Context, in entity.NewEmployee) (entity.Employee, error) {
	if _, err := authorize(ctx, entity.ActionManageEmployees); err != nil {
		return entity.Employee{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.Matricule = strings.TrimSpace(in.Matricule)

	if in.Role == "" {
		in.Role = entity.RoleEmployee
	}

	if err := validateNewAccount(in.Name, in.Email, in.Password, in.Role); err != nil {
		return entity.Employee{}, err
	}

	if err := ValidateMatricule(in.Matricule); err != nil {
		return entity.Employee{}, err
	}

	// Without a password the account is locked until the account mail
	// issues a one-time password.
	password := in.Password
	if password == "" {
		password = GeneratePassword()
	}

	hash, err := HashPassword(password)
	if err != nil {
		return entity.Employee{}, err
	}

	var emp entity.Employee

	err = s.repo.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.repo.CreateUser(ctx, entity.User{
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         in.Role,
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", in.Email, err)
		}

		emp, err = s.repo.CreateEmployee(ctx, entity.Employee{
			Matricule:  in.Matricule,
			UserID:     user.ID,
			Department: in.Department,
			Position:   in.Position,
		})
		if err != nil {
			return fmt.Errorf("create employee for user %d: %w", user.ID, err)
		}

		return nil
	})
	if err != nil {
		return entity.Employee{}, err
	}

	slog.InfoContext(ctx, "employee created", "employee_id", emp.ID, "user_id", emp.UserID, "matricule", emp.Matricule)

	s.publishAccountCreated(ctx, entity.AccountCreated{
		UserID:        emp.UserID,
		Name:          emp.Name,
		Email:         emp.Email,
		IssuePassword: in.Password == "",
	})

	return emp, nil
}

func (s *Service) Employee(ctx context.Context, id int64) (entity.Employee, error) {
	if _, err := authorize(ctx, entity.ActionManageEmployees); err != nil {
		return entity.Employee{}, err
	}

	emp, err := s.repo.EmployeeByID(ctx, id)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}

	return emp, nil
}

func (s *Service) Employees(ctx context.Context, page entity.Page) ([]entity.Employee, int, error) {
	if _, err := authorize(ctx, entity.ActionManageEmployees); err != nil {
		return nil, 0, err
	}

	employees, total, err := s.repo.EmployeesList(ctx, s.NormalizePage(page))
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	return employees, total, nil
}

func validateEmployeeUpdate(upd *entity.EmployeeUpdate) error {
	if upd.Name != nil {
		upd.Name = ptr(strings.TrimSpace(*upd.Name))
		if err := ValidateName(*upd.Name); err != nil {
			return err
		}
	}

	if upd.Email != nil {
		upd.Email = ptr(NormalizeEmail(*upd.Email))
		if err := ValidateEmail(*upd.Email); err != nil {
			return err
		}
	}

	if upd.Matricule != nil {
		upd.Matricule = ptr(strings.TrimSpace(*upd.Matricule))
		if *upd.Matricule == "" {
			return invalid(entity.ErrMatriculeRequired)
		}

		if err := ValidateMatricule(*upd.Matricule); err != nil {
			return err
		}
	}

	if upd.Role != nil {
		return ValidateRole(*upd.Role)
	}

	return nil
}

// UpdateEmployee writes the employee and its user in one transaction. The
// role is stored on the user only.
func (s *Service) UpdateEmployee(ctx context.Context, id int64, upd entity.EmployeeUpdate) (entity.Employee, error) {
	if _, err := authorize(ctx, entity.ActionManageEmployees); err != nil {
		return entity.Employee{}, err
	}

	if err := validateEmployeeUpdate(&upd); err != nil {
		return entity.Employee{}, err
	}

	var emp entity.Employee

	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.EmployeeByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get employee %d: %w", id, err)
		}

		if upd.HasUserFields() {
			_, err = s.repo.UpdateUser(ctx, current.UserID, entity.UserUpdate{
				Name:  upd.Name,
				Email: upd.Email,
				Role:  upd.Role,
			})
			if err != nil {
				return fmt.Errorf("update user %d: %w", current.UserID, err)
			}
		}

		if upd.HasEmployeeFields() {
			if err := s.repo.UpdateEmployee(ctx, id, upd); err != nil {
				return fmt.Errorf("update employee %d: %w", id, err)
			}
		}

		emp, err = s.repo.EmployeeByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get employee %d: %w", id, err)
		}

		return nil
	})
	if err != nil {
		return entity.Employee{}, err
	}

	return emp, nil
}

// DeleteEmployee removes the employee together with its user. Either both
// rows are gone or neither is.
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if _, err := authorize(ctx, entity.ActionManageEmployees); err != nil {
		return err
	}

	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		emp, err := s.repo.EmployeeByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get employee %d: %w", id, err)
		}

		if err := s.repo.DeleteEmployee(ctx, id); err != nil {
			return fmt.Errorf("delete employee %d: %w", id, err)
		}

		if err := s.repo.DeleteUser(ctx, emp.UserID); err != nil {
			return fmt.Errorf("delete user %d: %w", emp.UserID, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "employee deleted", "employee_id", id)

	return nil
}

func (s *Service) publishAccountCreated(ctx context.Context, event entity.AccountCreated) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, s.opts.AccountTopic, event); err != nil {
		slog.ErrorContext(ctx, "publish account created", "user_id", event.UserID, "error", err)
	}
}
