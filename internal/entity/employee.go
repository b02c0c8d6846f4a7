package entity

import "time"

type Employee struct {
	ID         int64     `json:"id"`
	Matricule  string    `json:"matricule"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department *string   `json:"department,omitempty"`
	Position   *string   `json:"position,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NewEmployee struct {
	Name       string
	Email      string
	Password   string
	Role       Role
	Matricule  string
	Department *string
	Position   *string
}

type EmployeeUpdate struct {
	Name       *string
	Email      *string
	Matricule  *string
	Department *string
	Position   *string
	Role       *Role
}

func (u EmployeeUpdate) HasUserFields() bool {
	return u.Name != nil || u.Email != nil || u.Role != nil
}

func (u EmployeeUpdate) HasEmployeeFields() bool {
	return u.Matricule != nil || u.Department != nil || u.Position != nil
}
