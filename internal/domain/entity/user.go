package entity

import "time"

// Role values stored on users.role.
const (
	RolePublic = "PUBLIC"
	RoleAdmin  = "ADMIN"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password.
type User struct {
	ID         string
	Name       string
	Email      string
	Password   string
	Role       string
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
