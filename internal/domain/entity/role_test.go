package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleCollaborator.IsValid())
	assert.False(t, Role("owner").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleCollaborator.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleCollaborator, RoleFromString("collaborator"))
	assert.Equal(t, Role(""), RoleFromString("COLLABORATOR"))
	assert.Equal(t, Role(""), RoleFromString("bogus"))
}

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RoleAdmin, RoleCollaborator}

	assert.True(t, roles.Contains(RoleAdmin))
	assert.False(t, roles.Contains(RoleSuperAdmin))
}
