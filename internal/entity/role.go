package entity

import "strings"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleValidator Role = "validator"
	RoleEmployee  Role = "employee"
)

// Role ids are fixed by the seed migration.
const (
	RoleIDAdmin     int64 = 1
	RoleIDValidator int64 = 2
	RoleIDEmployee  int64 = 3
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleValidator, RoleEmployee:
		return true
	}

	return false
}

func (r Role) String() string {
	return string(r)
}

func (r Role) ID() int64 {
	switch r {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleValidator:
		return RoleIDValidator
	case RoleEmployee:
		return RoleIDEmployee
	}

	return 0
}

// ParseRole normalizes a role name coming from a request body.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}

	return r, nil
}
