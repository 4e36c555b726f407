package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	uservo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	apperrors "github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type mockUserRepository struct {
	user.Repository
	users   map[uint]*user.User
	askedID []uint
}

func (m *mockUserRepository) GetByIDs(_ context.Context, ids []uint) ([]*user.User, error) {
	m.askedID = ids
	out := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type mockTicketRepository struct {
	ticket.TicketRepository
	tickets []*ticket.Ticket
	filter  ticket.TicketFilter
	err     error
}

func (m *mockTicketRepository) List(_ context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	m.filter = filter
	return m.tickets, int64(len(m.tickets)), m.err
}

type mockCounter struct {
	counts map[uint]int64
}

func (m *mockCounter) CountByTicketIDs(context.Context, []uint) (map[uint]int64, error) {
	return m.counts, nil
}

type mockCommentRepository struct {
	ticket.CommentRepository
	mockCounter
}

func (m *mockCommentRepository) CountByTicketIDs(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return m.mockCounter.CountByTicketIDs(ctx, ids)
}

type mockAttachmentRepository struct {
	ticket.AttachmentRepository
	mockCounter
}

func (m *mockAttachmentRepository) CountByTicketIDs(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return m.mockCounter.CountByTicketIDs(ctx, ids)
}

func newPerson(t *testing.T, id uint, name, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, name, addr, "hash", role, "", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func newPropertyTicket(t *testing.T, id, propertyID, submitterID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	status := vo.StatusOpen
	if assigneeID != nil {
		status = vo.StatusAssigned
	}
	tk, err := ticket.ReconstructTicket(id, "Leaking faucet", "Kitchen faucet drips all night",
		vo.CategoryPlumbing, vo.PriorityMedium, status, propertyID, submitterID, assigneeID, "4B", 1,
		time.Now(), time.Now(), nil)
	require.NoError(t, err)
	return tk
}

func TestGetPropertyUseCase(t *testing.T) {
	techID := uint(30)
	sunset := property.ReconstructProperty(1, "Sunset Apartments", "123 Sunset Blvd", 24, 20, time.Now(), time.Now())

	props := &mockPropertyRepository{byID: map[uint]*property.Property{1: sunset}}
	users := &mockUserRepository{users: map[uint]*user.User{
		20: newPerson(t, 20, "Maya Manager", "maya@demo.com", authorization.RoleManager),
		10: newPerson(t, 10, "Tom Tenant", "tom@demo.com", authorization.RoleTenant),
		30: newPerson(t, 30, "John Tech", "john@demo.com", authorization.RoleTechnician),
	}}
	tickets := &mockTicketRepository{tickets: []*ticket.Ticket{
		newPropertyTicket(t, 7, 1, 10, &techID),
		newPropertyTicket(t, 5, 1, 10, nil),
	}}
	comments := &mockCommentRepository{mockCounter: mockCounter{counts: map[uint]int64{7: 2}}}
	attachments := &mockAttachmentRepository{mockCounter: mockCounter{counts: map[uint]int64{5: 1}}}

	uc := NewGetPropertyUseCase(props, users, tickets, comments, attachments, logger.NewLogger())
	got, err := uc.Execute(context.Background(), GetPropertyQuery{Actor: managerActor, PropertyID: 1})
	require.NoError(t, err)

	require.NotNil(t, tickets.filter.Scope.PropertyID)
	assert.Equal(t, uint(1), *tickets.filter.Scope.PropertyID)
	assert.Zero(t, tickets.filter.PageSize)
	assert.ElementsMatch(t, []uint{20, 10, 30}, users.askedID)

	assert.Equal(t, "Sunset Apartments", got.Name)
	assert.Equal(t, int64(2), got.TicketCount)
	require.NotNil(t, got.Manager)
	assert.Equal(t, "maya@demo.com", got.Manager.Email)

	require.Len(t, got.Tickets, 2)
	assert.Equal(t, uint(7), got.Tickets[0].ID)
	assert.Equal(t, int64(2), got.Tickets[0].CommentCount)
	assert.Equal(t, "Sunset Apartments", got.Tickets[0].Property.Name)
	assert.Equal(t, "Tom Tenant", got.Tickets[0].Submitter.Name)
	require.NotNil(t, got.Tickets[0].Assignee)
	assert.Equal(t, "John Tech", got.Tickets[0].Assignee.Name)
	assert.Nil(t, got.Tickets[1].Assignee)
	assert.Equal(t, int64(1), got.Tickets[1].AttachmentCount)
}

func TestGetPropertyUseCase_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		actor      authorization.Actor
		propertyID uint
		listErr    error
		wantType   apperrors.ErrorType
	}{
		{name: "tenant forbidden", actor: authorization.Actor{ID: 10, Role: authorization.RoleTenant}, propertyID: 1, wantType: apperrors.ErrorTypeForbidden},
		{name: "technician forbidden", actor: authorization.Actor{ID: 30, Role: authorization.RoleTechnician}, propertyID: 1, wantType: apperrors.ErrorTypeForbidden},
		{name: "unknown property", actor: managerActor, propertyID: 99, wantType: apperrors.ErrorTypeNotFound},
		{name: "ticket query fails", actor: managerActor, propertyID: 1, listErr: errors.New("connection reset"), wantType: apperrors.ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := &mockPropertyRepository{byID: map[uint]*property.Property{
				1: property.ReconstructProperty(1, "Sunset Apartments", "123 Sunset Blvd", 24, 20, time.Now(), time.Now()),
			}}
			uc := NewGetPropertyUseCase(props, &mockUserRepository{}, &mockTicketRepository{err: tt.listErr},
				&mockCommentRepository{}, &mockAttachmentRepository{}, logger.NewLogger())

			_, err := uc.Execute(context.Background(), GetPropertyQuery{Actor: tt.actor, PropertyID: tt.propertyID})
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
		})
	}
}
