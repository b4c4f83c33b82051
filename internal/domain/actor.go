package domain

import "strings"

// Actor is the authenticated caller of a service operation.
// EmployeeID is empty for accounts not linked to an employee record.
type Actor struct {
	UserID     string
	Role       string
	EmployeeID string
}

func NormalizeRole(role string) string {
	r := strings.ToUpper(strings.TrimSpace(role))
	if r == "" {
		return RoleEmployee
	}
	return r
}

// IsPrivileged reports whether the actor may act on other employees' leave.
func (a Actor) IsPrivileged() bool {
	switch NormalizeRole(a.Role) {
	case RoleAdmin, RoleHR:
		return true
	default:
		return false
	}
}

func (a Actor) IsAdmin() bool {
	return NormalizeRole(a.Role) == RoleAdmin
}

func (a Actor) HasEmployee() bool {
	return a.EmployeeID != ""
}
