package model

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// ValidRole reports whether the value belongs to the closed role set.
func ValidRole(value string) bool {
	switch Role(value) {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// IsStaff reports whether the role grants administrative access.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FullName       string    `json:"full_name"`
	Phone          *string   `json:"phone,omitempty"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

// AccessClaims is the decoded payload of a verified access token.
type AccessClaims struct {
	UserID    int64
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
