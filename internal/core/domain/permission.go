package domain

// Permissions is the capability bundle derived from a user's role. It is
// derived once per session and passed explicitly into every component that
// mutates state; a false flag makes the corresponding action a silent no-op,
// never an error.
type Permissions struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

// DerivePermissions maps a role to its capability bundle. Admin gets
// everything; any other role (including unknown ones) gets nothing.
func DerivePermissions(role UserRole) Permissions {
	if role == RoleAdmin {
		return Permissions{CanCreate: true, CanEdit: true, CanDelete: true}
	}
	return Permissions{}
}
