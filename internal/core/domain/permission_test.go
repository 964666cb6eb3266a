package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePermissions_Admin(t *testing.T) {
	perms := DerivePermissions(RoleAdmin)
	assert.True(t, perms.CanCreate)
	assert.True(t, perms.CanEdit)
	assert.True(t, perms.CanDelete)
}

func TestDerivePermissions_Viewer(t *testing.T) {
	perms := DerivePermissions(RoleViewer)
	assert.False(t, perms.CanCreate)
	assert.False(t, perms.CanEdit)
	assert.False(t, perms.CanDelete)
}

func TestDerivePermissions_UnknownRole(t *testing.T) {
	// Anything that is not admin is inert, including garbage roles.
	perms := DerivePermissions(UserRole("superuser"))
	assert.Equal(t, Permissions{}, perms)
}
