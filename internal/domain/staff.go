package domain

import "time"

type StaffRole string

const (
	RoleReceptionist StaffRole = "receptionist"
	RoleAdmin        StaffRole = "admin"
)

// StaffAccount is a clinic employee who can sign in to the admin dashboard.
type StaffAccount struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         StaffRole `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int32     `json:"-"`
}
