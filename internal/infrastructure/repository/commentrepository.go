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

var _ ticket.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}
	return comments, nil
}

func (r *CommentRepository) CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error) {
	return countByTicketIDs(db.GetTxFromContext(ctx, r.db), &models.CommentModel{}, ticketIDs)
}

// countByTicketIDs groups rows of model by ticket_id. IDs without rows are absent.
func countByTicketIDs(tx *gorm.DB, model interface{}, ticketIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TicketID uint
		Count    int64
	}
	if err := tx.Model(model).
		Select("ticket_id, COUNT(*) AS count").
		Where("ticket_id IN ?", ticketIDs).
		Group("ticket_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count by ticket: %w", err)
	}

	for _, row := range rows {
		counts[row.TicketID] = row.Count
	}
	return counts, nil
}
