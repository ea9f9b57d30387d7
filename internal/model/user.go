package model

import (
	"strings"
	"time"
)

// Role is the account role stored in users.role. It is a closed set:
// unknown strings never become a Role, they are rejected by ParseRole.
type Role string

const (
	RoleApplicant Role = "APPLICANT" // may submit applications
	RoleEmployer  Role = "EMPLOYER"  // may post vacancies and review applications
	RoleAdmin     Role = "ADMIN"     // may act on any vacancy or application
)

// ParseRole normalizes s and returns the matching Role. The boolean is
// false for anything outside the three known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleApplicant:
		return RoleApplicant, true
	case RoleEmployer:
		return RoleEmployer, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// User mirrors the 'users' table. The role is immutable after creation;
// no code path updates it.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// FullName joins first and last name for display fields in responses.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Actor is the authenticated identity attached to a request by the JWT
// middleware: just enough to drive policy decisions.
type Actor struct {
	ID   uint64
	Role Role
}
