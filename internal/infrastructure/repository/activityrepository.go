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

var _ ticket.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository only inserts and reads; activity rows are never updated.
type ActivityRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ActivityRepository) Append(ctx context.Context, entry *ticket.ActivityEntry) error {
	model, err := r.mapper.ActivityToModel(entry)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *ActivityRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.ActivityEntry, error) {
	var entryModels []models.ActivityLogModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	entries := make([]*ticket.ActivityEntry, len(entryModels))
	for i := range entryModels {
		e, err := r.mapper.ActivityToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}
