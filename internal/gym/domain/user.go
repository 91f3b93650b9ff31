package domain

import "time"

// Role is the user's access level. The set is fixed per deployment.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string // unique across all users
	Name         string
	PasswordHash string // argon2id encoded
	Role         Role
	CompanyID    string
	LastPayment  *time.Time // nil until the first payment is recorded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
