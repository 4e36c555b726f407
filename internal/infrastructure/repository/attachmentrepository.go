package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/mappers"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	db "github.com/compiler-aditya/PropTech/internal/shared/db"
)

var _ ticket.AttachmentRepository = (*AttachmentRepository)(nil)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) CreateBatch(ctx context.Context, attachments []*ticket.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}

	attachmentModels := make([]*models.AttachmentModel, len(attachments))
	for i, a := range attachments {
		attachmentModels[i] = r.mapper.AttachmentToModel(a)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&attachmentModels).Error; err != nil {
		return fmt.Errorf("failed to create attachments: %w", err)
	}

	for i, model := range attachmentModels {
		if err := attachments[i].SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("attachment %d not found", id)
	}
	return nil
}

func (r *AttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		attachments[i] = r.mapper.AttachmentToDomain(&attachmentModels[i])
	}
	return attachments, nil
}

func (r *AttachmentRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.AttachmentModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count attachments: %w", err)
	}
	return count, nil
}

func (r *AttachmentRepository) CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error) {
	return countByTicketIDs(db.GetTxFromContext(ctx, r.db), &models.AttachmentModel{}, ticketIDs)
}

func (r *AttachmentRepository) ListStorageURLs(ctx context.Context) ([]string, error) {
	var urls []string

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.AttachmentModel{}).Pluck("storage_url", &urls).Error; err != nil {
		return nil, fmt.Errorf("failed to list storage urls: %w", err)
	}
	return urls, nil
}
