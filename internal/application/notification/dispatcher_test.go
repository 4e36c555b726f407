package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/compiler-aditya/PropTech/internal/domain/notification"
	vo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	uservo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	apperrors "github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type fakeRepo struct {
	mu      sync.Mutex
	created []*domain.Notification
	err     error
}

func (r *fakeRepo) Create(_ context.Context, n *domain.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, n)
	return n.SetID(uint(len(r.created)))
}

func (r *fakeRepo) ListByRecipient(context.Context, uint, int) ([]*domain.Notification, error) {
	return nil, nil
}
func (r *fakeRepo) CountUnread(context.Context, uint) (int64, error)           { return 0, nil }
func (r *fakeRepo) MarkRead(context.Context, uint, uint) (bool, error)         { return false, nil }
func (r *fakeRepo) MarkAllRead(context.Context, uint) (int64, error)           { return 0, nil }
func (r *fakeRepo) DeleteReadBefore(context.Context, time.Time) (int64, error) { return 0, nil }

type fakeUsers struct {
	users map[uint]*user.User
	err   error
}

func (f *fakeUsers) GetByID(_ context.Context, id uint) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

type sentMail struct {
	to, subject, html string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, html})
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(category, title, message, linkURL string) (string, error) {
	return category + "|" + title + "|" + message + "|" + linkURL, nil
}

func newUser(t *testing.T, id uint, email string) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, "Pat", addr, "hash", authorization.RoleTenant, "", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestDispatcher_PersistsAndEmails(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	users := &fakeUsers{users: map[uint]*user.User{7: newUser(t, 7, "pat@example.com")}}
	d := NewDispatcher(repo, users, mailer, fakeRenderer{}, logger.NewLogger())

	err := d.Notify(context.Background(), NotifyInput{
		RecipientID: 7,
		Type:        vo.TypeCommentAdded,
		Title:       "New Comment",
		Message:     "Sam commented on: Leak",
		LinkURL:     "/tickets/3",
	})
	require.NoError(t, err)
	d.Wait()

	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(7), repo.created[0].RecipientID())
	assert.False(t, repo.created[0].IsRead())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "pat@example.com", mailer.sent[0].to)
	assert.Equal(t, "New Comment", mailer.sent[0].subject)
	assert.Equal(t, "Comment Added|New Comment|Sam commented on: Leak|/tickets/3", mailer.sent[0].html)
}

func TestDispatcher_UnknownTypeFailsLoudly(t *testing.T) {
	repo := &fakeRepo{}
	d := NewDispatcher(repo, &fakeUsers{}, &fakeMailer{}, fakeRenderer{}, logger.NewLogger())

	err := d.Notify(context.Background(), NotifyInput{RecipientID: 1, Type: "TICKET_EXPLODED", Title: "x", Message: "y"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Empty(t, repo.created)
}

func TestDispatcher_PersistFailureIsReturned(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	mailer := &fakeMailer{}
	d := NewDispatcher(repo, &fakeUsers{}, mailer, fakeRenderer{}, logger.NewLogger())

	err := d.Notify(context.Background(), NotifyInput{RecipientID: 1, Type: vo.TypeTicketCreated, Title: "x", Message: "y"})
	require.Error(t, err)
	d.Wait()
	assert.Empty(t, mailer.sent)
}

func TestDispatcher_EmailFailuresAreSwallowed(t *testing.T) {
	tests := []struct {
		name   string
		users  *fakeUsers
		mailer *fakeMailer
	}{
		{name: "lookup fails", users: &fakeUsers{err: errors.New("boom")}, mailer: &fakeMailer{}},
		{name: "recipient missing", users: &fakeUsers{users: map[uint]*user.User{}}, mailer: &fakeMailer{}},
		{name: "send fails", users: &fakeUsers{users: map[uint]*user.User{1: newUser(t, 1, "a@example.com")}}, mailer: &fakeMailer{err: errors.New("smtp")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			d := NewDispatcher(repo, tt.users, tt.mailer, fakeRenderer{}, logger.NewLogger())

			err := d.Notify(context.Background(), NotifyInput{RecipientID: 1, Type: vo.TypeStatusChanged, Title: "x", Message: "y"})
			require.NoError(t, err)
			d.Wait()

			assert.Len(t, repo.created, 1)
			assert.Empty(t, tt.mailer.sent)
		})
	}
}

func TestDispatcher_EmailSurvivesCanceledRequest(t *testing.T) {
	repo := &fakeRepo{}
	mailer := &fakeMailer{}
	users := &fakeUsers{users: map[uint]*user.User{2: newUser(t, 2, "b@example.com")}}
	d := NewDispatcher(repo, users, mailer, fakeRenderer{}, logger.NewLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Notify(ctx, NotifyInput{RecipientID: 2, Type: vo.TypeTicketAssigned, Title: "x", Message: "y"}))
	cancel()
	d.Wait()

	assert.Len(t, mailer.sent, 1)
}

func TestRecipients(t *testing.T) {
	tests := []struct {
		name    string
		actorID uint
		ids     []uint
		want    []uint
	}{
		{name: "drops actor", actorID: 1, ids: []uint{1, 2}, want: []uint{2}},
		{name: "dedupes", actorID: 9, ids: []uint{3, 3, 4}, want: []uint{3, 4}},
		{name: "drops zero", actorID: 9, ids: []uint{0, 5}, want: []uint{5}},
		{name: "all filtered", actorID: 1, ids: []uint{1, 0}, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recipients(tt.actorID, tt.ids...))
		})
	}
}
