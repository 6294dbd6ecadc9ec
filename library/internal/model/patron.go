package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleStaff   Role = "staff"
)

type Patron struct {
	ID           int64     `json:"id" db:"id"`
	Registration string    `json:"registration" db:"registration"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Role         Role      `json:"role" db:"role"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type PatronInput struct {
	Registration string `json:"registration" validate:"required,max=20"`
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Role         Role   `json:"role" validate:"required,oneof=student faculty staff"`
}

type PatronFilter struct {
	Role            Role
	IncludeInactive bool
}
