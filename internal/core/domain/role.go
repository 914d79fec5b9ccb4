package domain

import "strings"

// Role identifies the authorization level of a principal.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleIT       Role = "it"
)

// rolePrecedence orders roles from most to least specific. It drives
// EffectiveRole for accounts carrying secondary role assignments.
var rolePrecedence = map[Role]int{
	RoleAdmin:    0,
	RoleHR:       1,
	RoleManager:  2,
	RoleIT:       3,
	RoleEmployee: 4,
}

// NormalizeRole maps a raw role string to one of the fixed roles.
// Unrecognized or empty input falls back to RoleEmployee so that a
// malformed account can never gain elevated access.
func NormalizeRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleHR:
		return RoleHR
	case RoleManager:
		return RoleManager
	case RoleIT:
		return RoleIT
	default:
		return RoleEmployee
	}
}

// Privileged reports whether the role may review change requests and act
// on any employee's behalf.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleHR
}

// HasAnyRole reports whether the user's primary role or any secondary role
// is a member of allowed. A user without secondary roles behaves exactly
// as if the list contained only the primary role.
func HasAnyRole(u *User, allowed ...Role) bool {
	if u == nil {
		return false
	}
	for _, a := range allowed {
		if u.Role == a {
			return true
		}
		for _, r := range u.Roles {
			if r == a {
				return true
			}
		}
	}
	return false
}
