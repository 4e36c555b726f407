package valueobjects

// ActivityAction names an entry in a ticket's activity log.
type ActivityAction string

const (
	ActionCreated         ActivityAction = "CREATED"
	ActionAssigned        ActivityAction = "ASSIGNED"
	ActionStatusChanged   ActivityAction = "STATUS_CHANGED"
	ActionPriorityChanged ActivityAction = "PRIORITY_CHANGED"
	ActionCommented       ActivityAction = "COMMENTED"
	ActionAttachmentAdded ActivityAction = "ATTACHMENT_ADDED"
)

var validActivityActions = map[ActivityAction]bool{
	ActionCreated:         true,
	ActionAssigned:        true,
	ActionStatusChanged:   true,
	ActionPriorityChanged: true,
	ActionCommented:       true,
	ActionAttachmentAdded: true,
}

func (a ActivityAction) String() string {
	return string(a)
}

func (a ActivityAction) IsValid() bool {
	return validActivityActions[a]
}
