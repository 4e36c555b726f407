package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

// TicketMapper converts between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	ActivityToModel(a *ticket.ActivityEntry) (*models.ActivityLogModel, error)
	ActivityToDomain(model *models.ActivityLogModel) (*ticket.ActivityEntry, error)

	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		PropertyID:  t.PropertyID(),
		SubmitterID: t.SubmitterID(),
		AssigneeID:  t.AssigneeID(),
		UnitNumber:  t.UnitNumber(),
		Version:     t.Version(),
		CreatedAt:   biztime.ToUnixMilli(t.CreatedAt()),
		UpdatedAt:   biztime.ToUnixMilli(t.UpdatedAt()),
		CompletedAt: biztime.ToUnixMilliPtr(t.CompletedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.PropertyID,
		model.SubmitterID,
		model.AssigneeID,
		model.UnitNumber,
		model.Version,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
		biztime.FromUnixMilliPtr(model.CompletedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: biztime.ToUnixMilli(c.CreatedAt()),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) ActivityToModel(a *ticket.ActivityEntry) (*models.ActivityLogModel, error) {
	details, err := json.Marshal(a.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal activity details: %w", err)
	}
	return &models.ActivityLogModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		PerformedBy: a.PerformedBy(),
		Action:      a.Action().String(),
		Details:     datatypes.JSON(details),
		CreatedAt:   biztime.ToUnixMilli(a.CreatedAt()),
	}, nil
}

func (m *TicketMapperImpl) ActivityToDomain(model *models.ActivityLogModel) (*ticket.ActivityEntry, error) {
	details := map[string]interface{}{}
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity details %d: %w", model.ID, err)
		}
	}
	return ticket.ReconstructActivityEntry(
		model.ID,
		model.TicketID,
		model.PerformedBy,
		vo.ActivityAction(model.Action),
		details,
		biztime.FromUnixMilli(model.CreatedAt),
	), nil
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		UploadedBy: a.UploadedBy(),
		Filename:   a.Filename(),
		StoredName: a.StoredName(),
		StorageURL: a.StorageURL(),
		MimeType:   a.MimeType(),
		Size:       a.Size(),
		CreatedAt:  biztime.ToUnixMilli(a.CreatedAt()),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploadedBy,
		model.Filename,
		model.StoredName,
		model.StorageURL,
		model.MimeType,
		model.Size,
		biztime.FromUnixMilli(model.CreatedAt),
	)
}
