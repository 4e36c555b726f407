package dto

import (
	"fmt"

	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
)

// FileURL is the proxied download path of an attachment. Blob handles never
// leave the server.
func FileURL(attachmentID uint) string {
	return fmt.Sprintf("/api/files/%d", attachmentID)
}

func TicketLink(ticketID uint) string {
	return fmt.Sprintf("/tickets/%d", ticketID)
}

func ToUserSummaryDTO(u *user.User) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	s := &UserSummaryDTO{
		ID:   u.ID(),
		Name: u.Name(),
		Role: u.Role().String(),
	}
	if u.Email() != nil {
		s.Email = u.Email().String()
	}
	return s
}

func ToPropertySummaryDTO(p *property.Property) *PropertySummaryDTO {
	if p == nil {
		return nil
	}
	return &PropertySummaryDTO{
		ID:      p.ID(),
		Name:    p.Name(),
		Address: p.Address(),
	}
}

// ToTicketDTO resolves the property and people from the lookup maps; missing
// entries are left nil.
func ToTicketDTO(t *ticket.Ticket, properties map[uint]*property.Property, users map[uint]*user.User) *TicketDTO {
	if t == nil {
		return nil
	}

	out := &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		UnitNumber:  t.UnitNumber(),
		Property:    ToPropertySummaryDTO(properties[t.PropertyID()]),
		Submitter:   ToUserSummaryDTO(users[t.SubmitterID()]),
		Version:     t.Version(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		CompletedAt: t.CompletedAt(),
	}
	if t.AssigneeID() != nil {
		out.Assignee = ToUserSummaryDTO(users[*t.AssigneeID()])
	}
	return out
}

func ToActivityDTO(a *ticket.ActivityEntry, users map[uint]*user.User) *ActivityDTO {
	return &ActivityDTO{
		ID:          a.ID(),
		Action:      a.Action().String(),
		Details:     a.Details(),
		PerformedBy: ToUserSummaryDTO(users[a.PerformedBy()]),
		CreatedAt:   a.CreatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment, users map[uint]*user.User) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Content:   c.Content(),
		Author:    ToUserSummaryDTO(users[c.AuthorID()]),
		CreatedAt: c.CreatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) *AttachmentDTO {
	return &AttachmentDTO{
		ID:         a.ID(),
		Filename:   a.Filename(),
		MimeType:   a.MimeType(),
		Size:       a.Size(),
		URL:        FileURL(a.ID()),
		UploadedBy: a.UploadedBy(),
		CreatedAt:  a.CreatedAt(),
	}
}
