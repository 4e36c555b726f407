package permission

// PermissionEnforcer decides whether a role may perform action on resource.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	GetPermissionsForRole(role string) ([][]string, error)
	LoadPolicy() error
}

// Resources and actions guarded by role policies.
const (
	ResourceTicket     = "ticket"
	ResourceProperty   = "property"
	ResourceTechnician = "technician"

	ActionCreate         = "create"
	ActionRead           = "read"
	ActionAssign         = "assign"
	ActionChangePriority = "change_priority"
	ActionManage         = "manage"
	ActionList           = "list"
)
