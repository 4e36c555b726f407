package ticket

import (
	"fmt"
	"time"

	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

// ActivityEntry is one append-only record in a ticket's audit trail.
type ActivityEntry struct {
	id          uint
	ticketID    uint
	performedBy uint
	action      vo.ActivityAction
	details     map[string]interface{}
	createdAt   time.Time
}

func NewActivityEntry(
	ticketID uint,
	performedBy uint,
	action vo.ActivityAction,
	details map[string]interface{},
) (*ActivityEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if performedBy == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid activity action: %s", action)
	}
	if details == nil {
		details = map[string]interface{}{}
	}

	return &ActivityEntry{
		ticketID:    ticketID,
		performedBy: performedBy,
		action:      action,
		details:     details,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructActivityEntry(
	id uint,
	ticketID uint,
	performedBy uint,
	action vo.ActivityAction,
	details map[string]interface{},
	createdAt time.Time,
) *ActivityEntry {
	if details == nil {
		details = map[string]interface{}{}
	}
	return &ActivityEntry{
		id:          id,
		ticketID:    ticketID,
		performedBy: performedBy,
		action:      action,
		details:     details,
		createdAt:   createdAt,
	}
}

func (a *ActivityEntry) ID() uint {
	return a.id
}

func (a *ActivityEntry) TicketID() uint {
	return a.ticketID
}

func (a *ActivityEntry) PerformedBy() uint {
	return a.performedBy
}

func (a *ActivityEntry) Action() vo.ActivityAction {
	return a.action
}

func (a *ActivityEntry) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(a.details))
	for k, v := range a.details {
		out[k] = v
	}
	return out
}

func (a *ActivityEntry) CreatedAt() time.Time {
	return a.createdAt
}

func (a *ActivityEntry) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("activity entry ID is already set")
	}
	a.id = id
	return nil
}

// CreatedDetails is the payload of a CREATED entry.
func CreatedDetails(title string) map[string]interface{} {
	return map[string]interface{}{"title": title}
}

// AssignedDetails is the payload of an ASSIGNED entry.
func AssignedDetails(technicianName string, technicianID uint, previousAssigneeID *uint) map[string]interface{} {
	var previous interface{}
	if previousAssigneeID != nil {
		previous = *previousAssigneeID
	}
	return map[string]interface{}{
		"technicianName":     technicianName,
		"technicianId":       technicianID,
		"previousAssigneeId": previous,
	}
}

// PriorityChangedDetails is the payload of a PRIORITY_CHANGED entry.
func PriorityChangedDetails(from, to vo.Priority) map[string]interface{} {
	return map[string]interface{}{"from": from.String(), "to": to.String()}
}

// CommentedDetails is the payload of a COMMENTED entry.
func CommentedDetails(preview string) map[string]interface{} {
	return map[string]interface{}{"preview": preview}
}

// AttachmentAddedDetails is the payload of an ATTACHMENT_ADDED entry.
func AttachmentAddedDetails(filenames []string) map[string]interface{} {
	names := make([]string, len(filenames))
	copy(names, filenames)
	return map[string]interface{}{"count": len(names), "filenames": names}
}
