package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/mappers"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	db "github.com/compiler-aditya/PropTech/internal/shared/db"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user with this email already exists", u.Email().String())
		}
		r.logger.Errorw("failed to create user", "email", u.Email().String(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"avatar_url": model.AvatarURL,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepositoryImpl) GetByIDAndRole(ctx context.Context, id uint, role authorization.UserRole) (*user.User, error) {
	return r.first(ctx, "id = ? AND role = ?", id, role.String())
}

func (r *UserRepositoryImpl) first(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	var model models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return mappers.UserToDomain(&model)
}

func (r *UserRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by ids: %w", err)
	}

	return r.toDomainList(userModels)
}

func (r *UserRepositoryImpl) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	var userModels []models.UserModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("role = ?", role.String()).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.toDomainList(userModels)
}

func (r *UserRepositoryImpl) ListAvatarURLs(ctx context.Context) ([]string, error) {
	var urls []string

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).
		Where("avatar_url IS NOT NULL AND avatar_url <> ''").
		Pluck("avatar_url", &urls).Error; err != nil {
		return nil, fmt.Errorf("failed to list avatar urls: %w", err)
	}
	return urls, nil
}

func (r *UserRepositoryImpl) toDomainList(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := mappers.UserToDomain(&userModels[i])
		if err != nil {
			r.logger.Warnw("skipping user with invalid stored data", "user_id", userModels[i].ID, "error", err)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
