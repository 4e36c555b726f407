package permission

import (
	"fmt"

	"github.com/compiler-aditya/PropTech/internal/domain/permission"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// DefaultPolicies are the role-gated route permissions. Per-ticket checks (the access
// predicate and the status guard) are not expressed as policies.
func DefaultPolicies() [][]string {
	tenant := authorization.RoleTenant.String()
	manager := authorization.RoleManager.String()
	technician := authorization.RoleTechnician.String()

	return [][]string{
		{tenant, permission.ResourceTicket, permission.ActionCreate},
		{tenant, permission.ResourceTicket, permission.ActionRead},
		{tenant, permission.ResourceProperty, permission.ActionList},

		{technician, permission.ResourceTicket, permission.ActionRead},
		{technician, permission.ResourceProperty, permission.ActionList},

		{manager, permission.ResourceTicket, permission.ActionRead},
		{manager, permission.ResourceTicket, permission.ActionAssign},
		{manager, permission.ResourceTicket, permission.ActionChangePriority},
		{manager, permission.ResourceProperty, permission.ActionManage},
		{manager, permission.ResourceProperty, permission.ActionList},
		{manager, permission.ResourceTechnician, permission.ActionList},
	}
}

// InitDefaultPolicies adds any missing default policy. Existing policies are kept.
func InitDefaultPolicies(enforcer permission.PermissionEnforcer, log logger.Interface) error {
	for _, policy := range DefaultPolicies() {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Infow("permission policies initialized", "count", len(DefaultPolicies()))
	return nil
}
