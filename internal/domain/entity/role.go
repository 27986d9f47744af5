// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleSuperAdmin indicates a super administrator with full access.
	RoleSuperAdmin Role = "super_admin"
	// RoleAdmin indicates a portal administrator.
	RoleAdmin Role = "admin"
	// RoleCollaborator indicates an affiliate-side user completing onboarding.
	RoleCollaborator Role = "collaborator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleCollaborator:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role belongs to the admin family.
// Collaborators are never admins regardless of their affiliate binding.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleFromString converts a string claim back to a Role.
// Invalid strings yield the zero Role, which fails IsValid.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return Role("")
	}

	return role
}
