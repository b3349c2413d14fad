// Copyright (c) 2026 Minar. All rights reserved.

package sec

// # Roles

// Role represents the authorization level granted to a session token.
type Role string

const (
	// Unrestricted access to the admin panel and all content mutations
	RoleAdmin Role = "admin"

	// Can create and edit content but not delete it or manage categories
	RoleEditor Role = "editor"

	// Default role for anonymous visitors (no token)
	RoleVisitor Role = "visitor"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleVisitor:
		return 10
	default:
		return 0
	}
}
