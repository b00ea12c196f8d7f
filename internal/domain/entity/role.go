// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin grants unrestricted read/create access to users and stores.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular, rating-submitting user.
	RoleUser Role = "user"
	// RoleOwner indicates a store owner.
	RoleOwner Role = "owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	default:
		return false
	}
}
