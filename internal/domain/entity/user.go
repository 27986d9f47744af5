// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated principal of the portal.
// Admin-family users administer affiliates; collaborators belong to exactly
// one affiliate and complete its onboarding.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email        string     // The user's primary contact email, used as the login identifier.
	Name         string     // The user's display name or real name.
	Role         Role       // The user's role: super_admin, admin, or collaborator.
	AffiliateID  *uuid.UUID // The affiliate this user belongs to. Always non-nil for collaborators, may be nil for admins.
	PasswordHash string     // The bcrypt-hashed password. Empty when the account only uses SSO.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}

// Validate enforces the role/affiliate binding invariant:
// a collaborator must always reference an affiliate.
func (u *User) Validate() bool {
	if !u.Role.IsValid() {
		return false
	}
	if u.Role == RoleCollaborator && u.AffiliateID == nil {
		return false
	}

	return true
}
