package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/mappers"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	db "github.com/compiler-aditya/PropTech/internal/shared/db"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

type PropertyRepositoryImpl struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) property.Repository {
	return &PropertyRepositoryImpl{db: db}
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, p *property.Property) error {
	model := mappers.PropertyToModel(p)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(property.MsgNameTaken)
		}
		return fmt.Errorf("failed to create property: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PropertyRepositoryImpl) GetByID(ctx context.Context, id uint) (*property.Property, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *PropertyRepositoryImpl) GetByName(ctx context.Context, name string) (*property.Property, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *PropertyRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*property.Property, error) {
	var model models.PropertyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return mappers.PropertyToDomain(&model), nil
}

func (r *PropertyRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*property.Property, error) {
	if len(ids) == 0 {
		return []*property.Property{}, nil
	}

	var propertyModels []models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&propertyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get properties by ids: %w", err)
	}

	return toPropertyList(propertyModels), nil
}

func (r *PropertyRepositoryImpl) ListByManager(ctx context.Context, managerID uint) ([]*property.Property, error) {
	var propertyModels []models.PropertyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("manager_id = ?", managerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return toPropertyList(propertyModels), nil
}

func (r *PropertyRepositoryImpl) ListAll(ctx context.Context) ([]*property.Property, error) {
	var propertyModels []models.PropertyModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("name ASC").Find(&propertyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return toPropertyList(propertyModels), nil
}

func (r *PropertyRepositoryImpl) CountTicketsByProperty(ctx context.Context, propertyIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PropertyID uint
		Count      int64
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.TicketModel{}).
		Select("property_id, COUNT(*) AS count").
		Where("property_id IN ?", propertyIDs).
		Group("property_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by property: %w", err)
	}

	for _, row := range rows {
		counts[row.PropertyID] = row.Count
	}
	return counts, nil
}

func toPropertyList(propertyModels []models.PropertyModel) []*property.Property {
	properties := make([]*property.Property, len(propertyModels))
	for i := range propertyModels {
		properties[i] = mappers.PropertyToDomain(&propertyModels[i])
	}
	return properties
}
