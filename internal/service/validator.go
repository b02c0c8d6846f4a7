package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samandr77/materials/internal/entity"
)

const (
	NameMaxLen        = 255
	EmailMaxLen       = 255
	MatriculeMaxLen   = 50
	PasswordMinLen    = 8
	generatedPassword = 12
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", entity.ErrValidation, err)
}

func ValidateNewMaterialRequest(in entity.NewMaterialRequest) error {
	name := strings.TrimSpace(in.MaterialName)
	if name == "" {
		return invalid(entity.ErrMaterialNameRequired)
	}

	if utf8.RuneCountInString(name) > NameMaxLen {
		return invalid(entity.ErrMaterialNameTooLong)
	}

	if strings.TrimSpace(in.Justification) == "" {
		return invalid(entity.ErrJustificationRequired)
	}

	if in.Quantity != nil && *in.Quantity < 1 {
		return invalid(entity.ErrQuantityTooSmall)
	}

	return nil
}

func ValidateStatusChange(change entity.StatusChange) error {
	if !change.Status.IsValid() {
		return invalid(fmt.Errorf("%w: %q", entity.ErrInvalidStatus, change.Status))
	}

	if change.Status == entity.StatusRejected &&
		(change.RejectionReason == nil || strings.TrimSpace(*change.RejectionReason) == "") {
		return invalid(entity.ErrRejectionReason)
	}

	return nil
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid(entity.ErrNameRequired)
	}

	if utf8.RuneCountInString(name) > NameMaxLen {
		return invalid(entity.ErrNameTooLong)
	}

	return nil
}

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen || !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return invalid(entity.ErrEmailInvalid)
	}

	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLen {
		return invalid(entity.ErrPasswordTooShort)
	}

	return nil
}

func ValidateRole(role entity.Role) error {
	if !role.IsValid() {
		return invalid(entity.ErrInvalidRole)
	}

	return nil
}

func ValidateMatricule(matricule string) error {
	if utf8.RuneCountInString(matricule) > MatriculeMaxLen {
		return invalid(entity.ErrMatriculeTooLong)
	}

	return nil
}

func ValidateStock(stock entity.Stock) error {
	if err := ValidateName(stock.Name); err != nil {
		return err
	}

	if stock.Quantity < 0 {
		return invalid(entity.ErrStockQuantity)
	}

	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
