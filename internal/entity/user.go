package entity

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}

	return false
}

type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *Role
}

// AccountCreated is published after a user account was created by an admin.
// It never carries credentials: when IssuePassword is set, the consumer
// generates the one-time password right before mailing it.
type AccountCreated struct {
	UserID        int64  `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	IssuePassword bool   `json:"issue_password"`
}

type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type UserClaims struct {
	UserID int64 `json:"uid"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}

// RevokedToken is a signed-out token. It is kept until it would have expired.
type RevokedToken struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}
