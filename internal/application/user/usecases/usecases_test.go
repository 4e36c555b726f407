package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/domain/user"
	uservo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	apperrors "github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type stubUserRepository struct {
	user.Repository
	byEmail       map[string]*user.User
	technicians   []*user.User
	listRoleCalls int
	createErr     error
	updateErr     error
	updates       int
}

func (r *stubUserRepository) Create(_ context.Context, u *user.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if err := u.SetID(uint(100 + len(r.byEmail))); err != nil {
		return err
	}
	r.byEmail[u.Email().String()] = u
	return nil
}

func (r *stubUserRepository) Update(context.Context, *user.User) error {
	r.updates++
	return r.updateErr
}

func (r *stubUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return r.byEmail[email], nil
}

func (r *stubUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepository) ListByRole(_ context.Context, role authorization.UserRole) ([]*user.User, error) {
	r.listRoleCalls++
	if role == authorization.RoleTechnician {
		return r.technicians, nil
	}
	return nil, nil
}

type fakeHasher struct {
	verifyNothingCalls int
	hashErr            error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return errors.New("mismatch")
	}
	return nil
}

func (h *fakeHasher) VerifyNothing(string) error {
	h.verifyNothingCalls++
	return errors.New("mismatch")
}

type fakeTokens struct {
	issuedFor authorization.Actor
}

func (f *fakeTokens) Generate(actor authorization.Actor) (string, time.Time, error) {
	f.issuedFor = actor
	return "token-abc", time.Unix(1700000000, 0), nil
}

type memoryCache struct {
	entries map[string][]byte
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	c.entries[key] = data
	return err
}

func (c *memoryCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

type fakeCounter map[uint]int64

func (f fakeCounter) CountActiveByAssignees(context.Context, []uint) (map[uint]int64, error) {
	return f, nil
}

func newUser(t *testing.T, id uint, name, email string, role authorization.UserRole) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, name, addr, "hashed:password123", role, "", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase(t *testing.T) {
	emily := newUser(t, 4, "Emily Rodriguez", "admin@demo.com", authorization.RoleManager)
	repo := &stubUserRepository{byEmail: map[string]*user.User{"admin@demo.com": emily}}

	tests := []struct {
		name        string
		email       string
		password    string
		wantErr     bool
		wantNothing int
	}{
		{name: "success normalises email", email: "  Admin@Demo.com ", password: "password123"},
		{name: "wrong password", email: "admin@demo.com", password: "nope", wantErr: true},
		{name: "unknown email burns a hash", email: "ghost@demo.com", password: "password123", wantErr: true, wantNothing: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := &fakeHasher{}
			tokens := &fakeTokens{}

			got, err := NewLoginUseCase(repo, hasher, tokens, logger.NewLogger()).Execute(context.Background(), LoginCommand{
				Email: tt.email, Password: tt.password,
			})

			assert.Equal(t, tt.wantNothing, hasher.verifyNothingCalls)
			if tt.wantErr {
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
				assert.Equal(t, MsgInvalidCredentials, appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-abc", got.AccessToken)
			assert.Equal(t, "Bearer", got.TokenType)
			assert.Equal(t, "MANAGER", got.User.Role)
			assert.Equal(t, authorization.Actor{ID: 4, Role: authorization.RoleManager}, tokens.issuedFor)
		})
	}
}

func TestListTechniciansUseCase(t *testing.T) {
	repo := &stubUserRepository{technicians: []*user.User{
		newUser(t, 5, "John Smith", "john@demo.com", authorization.RoleTechnician),
		newUser(t, 6, "Lisa Martinez", "lisa@demo.com", authorization.RoleTechnician),
	}}
	counter := fakeCounter{5: 2}
	uc := NewListTechniciansUseCase(repo, counter, &memoryCache{entries: map[string][]byte{}}, logger.NewLogger())
	manager := authorization.Actor{ID: 4, Role: authorization.RoleManager}

	first, err := uc.Execute(context.Background(), manager)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, int64(2), first[0].ActiveTickets)
	assert.Equal(t, "lisa@demo.com", first[1].Email)

	counter[6] = 1
	second, err := uc.Execute(context.Background(), manager)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listRoleCalls)
	assert.Equal(t, int64(1), second[1].ActiveTickets)

	_, err = uc.Execute(context.Background(), authorization.Actor{ID: 5, Role: authorization.RoleTechnician})
	assert.True(t, apperrors.IsForbiddenError(err))
}
