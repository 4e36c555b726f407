package mappers

import (
	"fmt"

	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	vo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		AvatarURL:    nullableString(u.AvatarURL()),
		CreatedAt:    biztime.ToUnixMilli(u.CreatedAt()),
		UpdatedAt:    biztime.ToUnixMilli(u.UpdatedAt()),
	}
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("user %d has invalid email: %w", model.ID, err)
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		derefString(model.AvatarURL),
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func PropertyToModel(p *property.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Address:   p.Address(),
		UnitCount: p.UnitCount(),
		ManagerID: p.ManagerID(),
		CreatedAt: biztime.ToUnixMilli(p.CreatedAt()),
		UpdatedAt: biztime.ToUnixMilli(p.UpdatedAt()),
	}
}

func PropertyToDomain(model *models.PropertyModel) *property.Property {
	return property.ReconstructProperty(
		model.ID,
		model.Name,
		model.Address,
		model.UnitCount,
		model.ManagerID,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
}
