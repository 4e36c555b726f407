package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/mappers"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
	db "github.com/compiler-aditya/PropTech/internal/shared/db"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"category":   true,
	"created_at": true,
	"updated_at": true,
}

var _ ticket.TicketRepository = (*TicketRepository)(nil)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket, expectedVersion int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", t.ID(), expectedVersion).
		Updates(map[string]interface{}{
			"title":        t.Title(),
			"description":  t.Description(),
			"category":     t.Category().String(),
			"priority":     t.Priority().String(),
			"status":       t.Status().String(),
			"assignee_id":  t.AssigneeID(),
			"unit_number":  t.UnitNumber(),
			"version":      t.Version(),
			"updated_at":   biztime.ToUnixMilli(t.UpdatedAt()),
			"completed_at": biztime.ToUnixMilliPtr(t.CompletedAt()),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError(ticket.MsgConcurrentUpdate)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func applyScope(query *gorm.DB, scope ticket.TicketScope) *gorm.DB {
	if scope.SubmitterID != nil {
		query = query.Where("submitter_id = ?", *scope.SubmitterID)
	}
	if scope.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *scope.AssigneeID)
	}
	if scope.PropertyID != nil {
		query = query.Where("property_id = ?", *scope.PropertyID)
	}
	return query
}

// likeEscaper uses '!' as the LIKE escape character; MySQL treats a backslash
// inside a string literal as an escape of its own.
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := applyScope(tx.Model(&models.TicketModel{}), filter.Scope)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		query = query.Where("(title LIKE ? ESCAPE '!' OR description LIKE ? ESCAPE '!')", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC").Order("id DESC")
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, scope ticket.TicketScope) (map[vo.TicketStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := applyScope(tx.Model(&models.TicketModel{}), scope).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(vo.AllStatuses))
	for _, s := range vo.AllStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) ListRecentlyUpdated(ctx context.Context, scope ticket.TicketScope, limit int) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := applyScope(tx.Model(&models.TicketModel{}), scope).
		Order("updated_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	return r.toDomainList(ticketModels)
}

func (r *TicketRepository) CountActiveByAssignees(ctx context.Context, assigneeIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(assigneeIDs))
	if len(assigneeIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		AssigneeID uint
		Count      int64
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.TicketModel{}).
		Select("assignee_id, COUNT(*) AS count").
		Where("assignee_id IN ?", assigneeIDs).
		Where("status IN ?", []string{vo.StatusAssigned.String(), vo.StatusInProgress.String()}).
		Group("assignee_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count active tickets by assignee: %w", err)
	}

	for _, row := range rows {
		counts[row.AssigneeID] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) toDomainList(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}
