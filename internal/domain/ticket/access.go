package ticket

import "github.com/compiler-aditya/PropTech/internal/shared/authorization"

// CanAccess decides whether actor may view or act on a ticket with the given
// submitter and assignee. Managers always may; tenants only on tickets they
// submitted; technicians only on tickets bound to them.
func CanAccess(actor authorization.Actor, submitterID uint, assigneeID *uint) bool {
	switch actor.Role {
	case authorization.RoleManager:
		return true
	case authorization.RoleTenant:
		return actor.ID != 0 && actor.ID == submitterID
	case authorization.RoleTechnician:
		return actor.ID != 0 && assigneeID != nil && *assigneeID == actor.ID
	default:
		return false
	}
}
