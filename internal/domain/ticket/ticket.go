package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

const (
	minTitleLength       = 3
	maxTitleLength       = 200
	minDescriptionLength = 10
	maxDescriptionLength = 5000
)

// Ticket is a maintenance request raised by a tenant against a property.
type Ticket struct {
	id          uint
	title       string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.TicketStatus
	propertyID  uint
	submitterID uint
	assigneeID  *uint
	unitNumber  string
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time
}

func NewTicket(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	propertyID uint,
	submitterID uint,
	unitNumber string,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if n := utf8.RuneCountInString(title); n < minTitleLength {
		return nil, errors.NewValidationError(MsgTitleTooShort)
	} else if n > maxTitleLength {
		return nil, errors.NewValidationError(MsgTitleTooLong)
	}
	if n := utf8.RuneCountInString(description); n < minDescriptionLength {
		return nil, errors.NewValidationError(MsgDescriptionTooShort)
	} else if n > maxDescriptionLength {
		return nil, errors.NewValidationError(MsgDescriptionTooLong)
	}
	if propertyID == 0 {
		return nil, errors.NewValidationError(MsgPropertyRequired)
	}
	if !category.IsValid() {
		return nil, errors.NewValidationError(MsgInvalidCategory)
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError(MsgInvalidPriority)
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		propertyID:  propertyID,
		submitterID: submitterID,
		unitNumber:  strings.TrimSpace(unitNumber),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	propertyID uint,
	submitterID uint,
	assigneeID *uint,
	unitNumber string,
	version int,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		propertyID:  propertyID,
		submitterID: submitterID,
		assigneeID:  assigneeID,
		unitNumber:  unitNumber,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		completedAt: completedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) PropertyID() uint {
	return t.propertyID
}

func (t *Ticket) SubmitterID() uint {
	return t.submitterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) UnitNumber() string {
	return t.unitNumber
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *Ticket) IsCompleted() bool {
	return t.status.IsCompleted()
}

// IsAssignedTo reports whether userID is the bound assignee.
func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// CanBeAccessedBy applies the access predicate to this ticket.
func (t *Ticket) CanBeAccessedBy(actor authorization.Actor) bool {
	return CanAccess(actor, t.submitterID, t.assigneeID)
}

// CheckStatusChange runs the transition policy for actor moving the ticket to target
// without mutating anything. Checks run in a fixed order and the first failure wins.
func (t *Ticket) CheckStatusChange(actor authorization.Actor, target vo.TicketStatus) error {
	if !target.IsValid() {
		return errors.NewValidationError(MsgInvalidStatus)
	}
	if !t.status.CanTransitionTo(target) {
		return errors.NewWorkflowError(fmt.Sprintf("Cannot transition from %s to %s", t.status, target))
	}
	if target.IsAssigned() && t.assigneeID == nil {
		return errors.NewWorkflowError(MsgAssignTechnicianFirst)
	}
	if t.status.IsCompleted() && !actor.Role.IsManager() {
		return errors.NewForbiddenError(MsgReopenManagerOnly)
	}
	return checkRoleMayMove(actor, t, target)
}

// technicianTargets are the statuses a technician may move their own ticket into.
var technicianTargets = map[vo.TicketStatus]bool{
	vo.StatusInProgress: true,
	vo.StatusCompleted:  true,
	vo.StatusAssigned:   true,
}

func checkRoleMayMove(actor authorization.Actor, t *Ticket, target vo.TicketStatus) error {
	switch actor.Role {
	case authorization.RoleManager:
		return nil
	case authorization.RoleTechnician:
		if !t.IsAssignedTo(actor.ID) {
			return errors.NewForbiddenError(MsgNotYourTicket)
		}
		if !technicianTargets[target] {
			return errors.NewForbiddenError(MsgTechnicianTargets)
		}
		return nil
	default:
		if !t.CanBeAccessedBy(actor) {
			return errors.NewForbiddenError(MsgNotYourTicket)
		}
		return nil
	}
}

// ChangeStatus validates and applies a status change. A completed ticket gets its
// completion stamp, any other target clears it, and OPEN releases the assignee.
func (t *Ticket) ChangeStatus(actor authorization.Actor, target vo.TicketStatus) (StatusChange, error) {
	if err := t.CheckStatusChange(actor, target); err != nil {
		return StatusChange{}, err
	}

	change := StatusChange{From: t.status, To: target}
	now := biztime.NowUTC()

	t.status = target
	if target.IsCompleted() {
		t.completedAt = &now
	} else {
		t.completedAt = nil
	}
	if target.IsOpen() {
		t.assigneeID = nil
	}
	t.updatedAt = now
	t.version++

	return change, nil
}

// AssignTo binds a technician and forces ASSIGNED from any non-completed status.
// It returns the previous assignee, if any.
func (t *Ticket) AssignTo(technicianID uint) (*uint, error) {
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID cannot be zero")
	}
	if t.status.IsCompleted() {
		return nil, errors.NewWorkflowError(MsgAssignCompleted)
	}

	previous := t.assigneeID
	t.assigneeID = &technicianID
	t.status = vo.StatusAssigned
	t.completedAt = nil
	t.updatedAt = biztime.NowUTC()
	t.version++

	return previous, nil
}

// ChangePriority returns the previous priority.
func (t *Ticket) ChangePriority(newPriority vo.Priority) (vo.Priority, error) {
	if !newPriority.IsValid() {
		return "", errors.NewValidationError(MsgInvalidPriority)
	}
	if t.status.IsCompleted() {
		return "", errors.NewWorkflowError(MsgPriorityCompleted)
	}

	previous := t.priority
	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	t.version++

	return previous, nil
}

// StatusChange is the audit record of a successful transition.
type StatusChange struct {
	From vo.TicketStatus
	To   vo.TicketStatus
}

// Details is the activity-log payload for the change.
func (c StatusChange) Details() map[string]interface{} {
	return map[string]interface{}{
		"from": c.From.String(),
		"to":   c.To.String(),
	}
}
