package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/application/notification/dto"
	"github.com/compiler-aditya/PropTech/internal/application/notification/usecases"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/testutil"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

type mockListUC struct {
	result []*dto.NotificationDTO
	err    error
	gotID  uint
}

func (m *mockListUC) Execute(_ context.Context, recipientID uint) ([]*dto.NotificationDTO, error) {
	m.gotID = recipientID
	return m.result, m.err
}

type mockUnreadCountUC struct {
	result *dto.UnreadCountDTO
	err    error
}

func (m *mockUnreadCountUC) Execute(_ context.Context, _ uint) (*dto.UnreadCountDTO, error) {
	return m.result, m.err
}

type mockMarkReadUC struct {
	err error
	got usecases.MarkAsReadCommand
}

func (m *mockMarkReadUC) Execute(_ context.Context, cmd usecases.MarkAsReadCommand) error {
	m.got = cmd
	return m.err
}

type mockMarkAllReadUC struct {
	result *dto.MarkAllReadDTO
	err    error
}

func (m *mockMarkAllReadUC) Execute(_ context.Context, _ uint) (*dto.MarkAllReadDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	list     *mockListUC
	unread   *mockUnreadCountUC
	markRead *mockMarkReadUC
	markAll  *mockMarkAllReadUC
}

func newTestHandler(deps testDeps) *NotificationHandler {
	if deps.list == nil {
		deps.list = &mockListUC{}
	}
	if deps.unread == nil {
		deps.unread = &mockUnreadCountUC{}
	}
	if deps.markRead == nil {
		deps.markRead = &mockMarkReadUC{}
	}
	if deps.markAll == nil {
		deps.markAll = &mockMarkAllReadUC{}
	}
	return NewNotificationHandler(deps.list, deps.unread, deps.markRead, deps.markAll, testutil.NewMockLogger())
}

func TestNotificationHandler_ListNotifications_UsesActor(t *testing.T) {
	mockUC := &mockListUC{result: []*dto.NotificationDTO{{ID: 1, Title: "New Comment"}}}
	handler := newTestHandler(testDeps{list: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications", nil)
	testutil.SetAuthContext(c, 42, authorization.RoleTenant)

	handler.ListNotifications(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), mockUC.gotID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var items []dto.NotificationDTO
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "New Comment", items[0].Title)
}

func TestNotificationHandler_GetUnreadCount(t *testing.T) {
	handler := newTestHandler(testDeps{unread: &mockUnreadCountUC{result: &dto.UnreadCountDTO{Count: 3}}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications/unread-count", nil)
	testutil.SetAuthContext(c, 42, authorization.RoleTenant)

	handler.GetUnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"count":3}}`, w.Body.String())
}

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		err      error
		wantCode int
	}{
		{"marked", "5", nil, http.StatusOK},
		{"someone else's", "5", errors.NewNotFoundError(usecases.MsgNotificationNotFound), http.StatusNotFound},
		{"bad id", "x", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockMarkReadUC{err: tt.err}
			handler := newTestHandler(testDeps{markRead: mockUC})

			c, w := testutil.NewTestContext(http.MethodPatch, "/api/notifications/"+tt.param+"/read", nil)
			testutil.SetURLParam(c, "id", tt.param)
			testutil.SetAuthContext(c, 42, authorization.RoleTechnician)

			handler.MarkAsRead(c)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusBadRequest {
				assert.Equal(t, uint(42), mockUC.got.RecipientID)
			}
		})
	}
}

func TestNotificationHandler_MarkAllAsRead(t *testing.T) {
	handler := newTestHandler(testDeps{markAll: &mockMarkAllReadUC{result: &dto.MarkAllReadDTO{Updated: 4}}})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/notifications/read-all", nil)
	testutil.SetAuthContext(c, 42, authorization.RoleManager)

	handler.MarkAllAsRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationHandler_RequiresAuth(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications", nil)

	handler.ListNotifications(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
