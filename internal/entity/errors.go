package entity

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrIncorrectBody      = errors.New("incorrect request body")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

var (
	ErrMaterialNameRequired  = errors.New("material name is required")
	ErrMaterialNameTooLong   = errors.New("material name may not be greater than 255 characters")
	ErrJustificationRequired = errors.New("justification is required")
	ErrQuantityTooSmall      = errors.New("quantity must be at least 1")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrRejectionReason       = errors.New("rejection reason is required when status is rejected")
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = errors.New("name may not be greater than 255 characters")
	ErrEmailInvalid      = errors.New("incorrect email format")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrInvalidRole       = errors.New("invalid role")
	ErrStockQuantity     = errors.New("quantity must be at least 0")
	ErrMatriculeTooLong  = errors.New("matricule may not be greater than 50 characters")
	ErrMatriculeRequired = errors.New("matricule may not be empty")
)
