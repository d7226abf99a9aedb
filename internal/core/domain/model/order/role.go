package order

// Role groups actors by the set of target statuses they may transition an
// order into. Roles are a closed enumeration so that granting a new role a
// narrower permission set is a compile-time extension of rolePermissions,
// not a stringly-typed dictionary edit.
type Role int

const (
	// RoleUnknown is the zero value; it holds no permissions.
	RoleUnknown Role = iota

	// RoleAdmin may transition orders into every status.
	RoleAdmin
)

// roleNames maps roles to their wire representation.
func roleNames() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
	}
}

// rolePermissions maps each role to the statuses it may transition into.
func rolePermissions() map[Role][]Status {
	return map[Role][]Status{
		RoleAdmin: {StatusDraft, StatusProcessing, StatusCompleted, StatusCancelled},
	}
}

// RoleFromString resolves a role identity string supplied by the caller.
// Unrecognized values resolve to RoleUnknown, which holds no permissions;
// the permission check downstream fails closed rather than erroring here.
func RoleFromString(s string) Role {
	for role, name := range roleNames() {
		if role != RoleUnknown && name == s {
			return role
		}
	}
	return RoleUnknown
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if name, ok := roleNames()[r]; ok {
		return name
	}
	return "unknown"
}

// HasPermission reports whether the role may transition an order into the
// target status. Unknown roles and unknown statuses yield false.
func HasPermission(role Role, to Status) bool {
	for _, permitted := range rolePermissions()[role] {
		if permitted == to {
			return true
		}
	}
	return false
}
