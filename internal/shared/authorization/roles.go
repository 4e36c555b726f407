// Package authorization holds the role model. Role is the only authorization
// dimension; relationship checks against a ticket live in the ticket domain.
package authorization

import "fmt"

type UserRole string

const (
	RoleTenant     UserRole = "TENANT"
	RoleManager    UserRole = "MANAGER"
	RoleTechnician UserRole = "TECHNICIAN"
)

var validRoles = map[UserRole]bool{
	RoleTenant:     true,
	RoleManager:    true,
	RoleTechnician: true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsManager() bool {
	return r == RoleManager
}

func (r UserRole) IsTenant() bool {
	return r == RoleTenant
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return role, nil
}

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   uint
	Role UserRole
}

func (a Actor) IsZero() bool {
	return a.ID == 0
}
