package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	uservo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
)

type mockTicketRepository struct {
	CreateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket, expectedVersion int) error
	GetByIDFunc                func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc                   func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc          func(ctx context.Context, scope ticket.TicketScope) (map[vo.TicketStatus]int64, error)
	ListRecentlyUpdatedFunc    func(ctx context.Context, scope ticket.TicketScope, limit int) ([]*ticket.Ticket, error)
	CountActiveByAssigneesFunc func(ctx context.Context, ids []uint) (map[uint]int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket, expectedVersion int) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t, expectedVersion)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, scope ticket.TicketScope) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, scope)
	}
	return map[vo.TicketStatus]int64{}, nil
}

func (m *mockTicketRepository) ListRecentlyUpdated(ctx context.Context, scope ticket.TicketScope, limit int) ([]*ticket.Ticket, error) {
	if m.ListRecentlyUpdatedFunc != nil {
		return m.ListRecentlyUpdatedFunc(ctx, scope, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountActiveByAssignees(ctx context.Context, ids []uint) (map[uint]int64, error) {
	if m.CountActiveByAssigneesFunc != nil {
		return m.CountActiveByAssigneesFunc(ctx, ids)
	}
	return map[uint]int64{}, nil
}

type mockCommentRepository struct {
	CreateFunc           func(ctx context.Context, c *ticket.Comment) error
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	CountByTicketIDsFunc func(ctx context.Context, ids []uint) (map[uint]int64, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) CountByTicketIDs(ctx context.Context, ids []uint) (map[uint]int64, error) {
	if m.CountByTicketIDsFunc != nil {
		return m.CountByTicketIDsFunc(ctx, ids)
	}
	return map[uint]int64{}, nil
}

// recordingActivityRepository keeps every appended entry.
type recordingActivityRepository struct {
	AppendErr error
	entries   []*ticket.ActivityEntry
}

func (r *recordingActivityRepository) Append(_ context.Context, entry *ticket.ActivityEntry) error {
	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingActivityRepository) ListByTicketID(_ context.Context, ticketID uint) ([]*ticket.ActivityEntry, error) {
	var out []*ticket.ActivityEntry
	for _, e := range r.entries {
		if e.TicketID() == ticketID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockAttachmentRepository struct {
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	CountByTicketIDsFunc func(ctx context.Context, ids []uint) (map[uint]int64, error)
}

func (m *mockAttachmentRepository) CreateBatch(context.Context, []*ticket.Attachment) error {
	return nil
}

func (m *mockAttachmentRepository) GetByID(context.Context, uint) (*ticket.Attachment, error) {
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(context.Context, uint) error {
	return nil
}

func (m *mockAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) CountByTicketID(context.Context, uint) (int64, error) {
	return 0, nil
}

func (m *mockAttachmentRepository) CountByTicketIDs(ctx context.Context, ids []uint) (map[uint]int64, error) {
	if m.CountByTicketIDsFunc != nil {
		return m.CountByTicketIDsFunc(ctx, ids)
	}
	return map[uint]int64{}, nil
}

func (m *mockAttachmentRepository) ListStorageURLs(context.Context) ([]string, error) {
	return nil, nil
}

// stubUserRepository serves a fixed set of users.
type stubUserRepository struct {
	users map[uint]*user.User
	err   error
}

func newStubUserRepository(users ...*user.User) *stubUserRepository {
	r := &stubUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		r.users[u.ID()] = u
	}
	return r
}

func (r *stubUserRepository) Create(context.Context, *user.User) error {
	return nil
}

func (r *stubUserRepository) Update(context.Context, *user.User) error {
	return nil
}

func (r *stubUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	return r.users[id], r.err
}

func (r *stubUserRepository) GetByIDs(_ context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, r.err
}

func (r *stubUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, r.err
}

func (r *stubUserRepository) GetByIDAndRole(_ context.Context, id uint, role authorization.UserRole) (*user.User, error) {
	if u, ok := r.users[id]; ok && u.Role() == role {
		return u, r.err
	}
	return nil, r.err
}

func (r *stubUserRepository) ListByRole(_ context.Context, role authorization.UserRole) ([]*user.User, error) {
	var out []*user.User
	for _, u := range r.users {
		if u.Role() == role {
			out = append(out, u)
		}
	}
	return out, r.err
}

func (r *stubUserRepository) ListAvatarURLs(context.Context) ([]string, error) {
	return nil, r.err
}

type stubPropertyRepository struct {
	properties map[uint]*property.Property
}

func newStubPropertyRepository(props ...*property.Property) *stubPropertyRepository {
	r := &stubPropertyRepository{properties: make(map[uint]*property.Property)}
	for _, p := range props {
		r.properties[p.ID()] = p
	}
	return r
}

func (r *stubPropertyRepository) Create(context.Context, *property.Property) error {
	return nil
}

func (r *stubPropertyRepository) GetByID(_ context.Context, id uint) (*property.Property, error) {
	return r.properties[id], nil
}

func (r *stubPropertyRepository) GetByIDs(_ context.Context, ids []uint) ([]*property.Property, error) {
	var out []*property.Property
	for _, id := range ids {
		if p, ok := r.properties[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPropertyRepository) GetByName(context.Context, string) (*property.Property, error) {
	return nil, nil
}

func (r *stubPropertyRepository) ListByManager(context.Context, uint) ([]*property.Property, error) {
	return nil, nil
}

func (r *stubPropertyRepository) ListAll(context.Context) ([]*property.Property, error) {
	return nil, nil
}

func (r *stubPropertyRepository) CountTicketsByProperty(context.Context, []uint) (map[uint]int64, error) {
	return map[uint]int64{}, nil
}

// passthroughTxManager runs fn on the caller's context.
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []appnotification.NotifyInput
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, in appnotification.NotifyInput) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, in)
	return n.err
}

func (n *recordingNotifier) recipients() []uint {
	n.mu.Lock()
	defer n.mu.Unlock()
	ids := make([]uint, len(n.sent))
	for i, in := range n.sent {
		ids[i] = in.RecipientID
	}
	return ids
}

func newTestUser(t *testing.T, id uint, name, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, name, addr, "hash", role, "", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func newTestTicket(t *testing.T, id uint, status vo.TicketStatus, submitterID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	var completedAt *time.Time
	if status.IsCompleted() {
		now := time.Now()
		completedAt = &now
	}
	tk, err := ticket.ReconstructTicket(id, "Leaking faucet", "Kitchen faucet drips all night",
		vo.CategoryPlumbing, vo.PriorityMedium, status, 1, submitterID, assigneeID, "4B", 3,
		time.Now(), time.Now(), completedAt)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint {
	return &v
}
