package domain

import "time"

// User models an authenticated actor in the system. EmployeeID links the
// account to its employee record and is empty for service accounts.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Roles        []Role    `json:"roles,omitempty"`
	EmployeeID   string    `json:"employee_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EffectiveRole returns the single role used for authorization context.
// It is the most specific role among the primary and any secondary
// assignments, and never empty: a user with no usable role data resolves
// to RoleEmployee.
func (u *User) EffectiveRole() Role {
	best := NormalizeRole(string(u.Role))
	for _, r := range u.Roles {
		candidate := NormalizeRole(string(r))
		if rolePrecedence[candidate] < rolePrecedence[best] {
			best = candidate
		}
	}
	return best
}
