package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	uservo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type fixture struct {
	db         *gorm.DB
	users      user.Repository
	properties property.Repository
	tickets    *TicketRepository
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	return &fixture{
		db:         db,
		users:      NewUserRepository(db, logger.NewLogger()),
		properties: NewPropertyRepository(db),
		tickets:    NewTicketRepository(db),
	}
}

func (f *fixture) user(t *testing.T, name, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(name, addr, "hash", role)
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) property(t *testing.T, name string, managerID uint) *property.Property {
	t.Helper()
	p, err := property.NewProperty(name, "100 Main Street", 12, managerID)
	require.NoError(t, err)
	require.NoError(t, f.properties.Create(context.Background(), p))
	return p
}

func (f *fixture) ticket(t *testing.T, title string, propertyID, submitterID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "Water is leaking under the sink", vo.CategoryPlumbing, vo.PriorityMedium, propertyID, submitterID, "4B")
	require.NoError(t, err)
	require.NoError(t, f.tickets.Create(context.Background(), tk))
	return tk
}
