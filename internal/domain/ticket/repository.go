package ticket

import (
	"context"

	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. GetByID returns (nil, nil) when the ticket
// does not exist.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	// Update writes ticket only if the stored version still equals expectedVersion.
	// A stale version yields a conflict error.
	Update(ctx context.Context, ticket *Ticket, expectedVersion int) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, scope TicketScope) (map[vo.TicketStatus]int64, error)
	ListRecentlyUpdated(ctx context.Context, scope TicketScope, limit int) ([]*Ticket, error)
	// CountActiveByAssignees counts ASSIGNED and IN_PROGRESS tickets per technician.
	CountActiveByAssignees(ctx context.Context, assigneeIDs []uint) (map[uint]int64, error)
}

// TicketScope restricts queries to a submitter, an assignee or a property.
// The zero value matches every ticket.
type TicketScope struct {
	SubmitterID *uint
	AssigneeID  *uint
	PropertyID  *uint
}

type TicketFilter struct {
	Scope     TicketScope
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error)
}

// ActivityRepository is append-only.
type ActivityRepository interface {
	Append(ctx context.Context, entry *ActivityEntry) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*ActivityEntry, error)
}

// AttachmentRepository returns (nil, nil) from GetByID when the row does not exist.
type AttachmentRepository interface {
	CreateBatch(ctx context.Context, attachments []*Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	Delete(ctx context.Context, attachmentID uint) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
	CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error)
	// ListStorageURLs returns every referenced blob handle, used by the orphan sweep.
	ListStorageURLs(ctx context.Context) ([]string, error)
}
