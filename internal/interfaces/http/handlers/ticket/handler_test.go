package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/application/ticket/usecases"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/testutil"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result *dto.TicketDTO
	err    error
	got    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
	got    usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *dto.TicketDetailDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result *dto.TicketDTO
	err    error
	got    usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*dto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *dto.TicketDTO
	err    error
	called bool
}

func (m *mockChangeStatusUC) Execute(_ context.Context, _ usecases.ChangeStatusCommand) (*dto.TicketDTO, error) {
	m.called = true
	return m.result, m.err
}

type mockChangePriorityUC struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockChangePriorityUC) Execute(_ context.Context, _ usecases.ChangePriorityCommand) (*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *dto.CommentDTO
	err    error
}

func (m *mockAddCommentUC) Execute(_ context.Context, _ usecases.AddCommentCommand) (*dto.CommentDTO, error) {
	return m.result, m.err
}

type mockDashboardUC struct {
	result *dto.DashboardStatsDTO
	err    error
}

func (m *mockDashboardUC) Execute(_ context.Context, _ authorization.Actor) (*dto.DashboardStatsDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	createTicketUC   *mockCreateTicketUC
	listTicketsUC    *mockListTicketsUC
	getTicketUC      *mockGetTicketUC
	assignTicketUC   *mockAssignTicketUC
	changeStatusUC   *mockChangeStatusUC
	changePriorityUC *mockChangePriorityUC
	addCommentUC     *mockAddCommentUC
	dashboardUC      *mockDashboardUC
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	if deps.createTicketUC == nil {
		deps.createTicketUC = &mockCreateTicketUC{}
	}
	if deps.listTicketsUC == nil {
		deps.listTicketsUC = &mockListTicketsUC{}
	}
	if deps.getTicketUC == nil {
		deps.getTicketUC = &mockGetTicketUC{}
	}
	if deps.assignTicketUC == nil {
		deps.assignTicketUC = &mockAssignTicketUC{}
	}
	if deps.changeStatusUC == nil {
		deps.changeStatusUC = &mockChangeStatusUC{}
	}
	if deps.changePriorityUC == nil {
		deps.changePriorityUC = &mockChangePriorityUC{}
	}
	if deps.addCommentUC == nil {
		deps.addCommentUC = &mockAddCommentUC{}
	}
	if deps.dashboardUC == nil {
		deps.dashboardUC = &mockDashboardUC{}
	}
	return NewTicketHandler(
		deps.createTicketUC,
		deps.listTicketsUC,
		deps.getTicketUC,
		deps.assignTicketUC,
		deps.changeStatusUC,
		deps.changePriorityUC,
		deps.addCommentUC,
		deps.dashboardUC,
		testutil.NewMockLogger(),
	)
}

func parseError(t *testing.T, body []byte) testutil.APIResponse {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: &dto.TicketDTO{ID: 7, Title: "Leaking faucet", Status: "OPEN"}}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Title:       "Leaking faucet",
		Description: "Kitchen faucet drips all night",
		Category:    "PLUMBING",
		PropertyID:  3,
		UnitNumber:  "4B",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleTenant)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(10), mockUC.got.Actor.ID)
	assert.Equal(t, uint(3), mockUC.got.PropertyID)
	assert.Equal(t, "4B", mockUC.got.UnitNumber)
}

func TestTicketHandler_CreateTicket_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    interface{}
		wantMsg string
	}{
		{
			name:    "invalid category",
			body:    CreateTicketRequest{Title: "Leak", Category: "ROOFING", PropertyID: 1},
			wantMsg: "Please select a valid category",
		},
		{
			name:    "missing property",
			body:    CreateTicketRequest{Title: "Leak", Category: "PLUMBING"},
			wantMsg: "Please select a property",
		},
		{
			name:    "invalid priority",
			body:    CreateTicketRequest{Title: "Leak", Category: "PLUMBING", Priority: "CRITICAL", PropertyID: 1},
			wantMsg: "Invalid priority",
		},
		{
			name:    "malformed body",
			body:    "not an object",
			wantMsg: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockCreateTicketUC{}
			handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

			c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", tt.body)
			testutil.SetAuthContext(c, 10, authorization.RoleTenant)

			handler.CreateTicket(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseError(t, w.Body.Bytes())
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.Zero(t, mockUC.got.Actor.ID, "use case must not run")
		})
	}
}

func TestTicketHandler_CreateTicket_NotAuthenticated(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", CreateTicketRequest{Title: "Leak"})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTicketHandler_CreateTicket_ForbiddenFromUseCase(t *testing.T) {
	mockUC := &mockCreateTicketUC{err: errors.NewForbiddenError(ticket.MsgTenantsOnly)}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{Title: "Leaking faucet", Description: "Kitchen faucet drips", Category: "PLUMBING", PropertyID: 1}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", reqBody)
	testutil.SetAuthContext(c, 2, authorization.RoleManager)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := parseError(t, w.Body.Bytes())
	assert.Equal(t, ticket.MsgTenantsOnly, resp.Error.Message)
}

// =====================================================================
// ListTickets / GetTicket
// =====================================================================

func TestTicketHandler_ListTickets_PassesFilters(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{
		Tickets:  []*dto.TicketListItemDTO{{TicketDTO: dto.TicketDTO{ID: 1}}},
		Total:    1,
		Page:     2,
		PageSize: 10,
	}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":    "OPEN",
		"priority":  "HIGH",
		"search":    "leak",
		"page":      "2",
		"page_size": "10",
	})
	testutil.SetAuthContext(c, 5, authorization.RoleTechnician)

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OPEN", mockUC.got.Status)
	assert.Equal(t, "HIGH", mockUC.got.Priority)
	assert.Equal(t, "leak", mockUC.got.Search)
	assert.Equal(t, 2, mockUC.got.Page)
	assert.Equal(t, 10, mockUC.got.PageSize)
	assert.Equal(t, authorization.RoleTechnician, mockUC.got.Actor.Role)
}

func TestTicketHandler_GetTicket(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		uc       *mockGetTicketUC
		wantCode int
	}{
		{"found", "1", &mockGetTicketUC{result: &dto.TicketDetailDTO{}}, http.StatusOK},
		{"denied reads as missing", "1", &mockGetTicketUC{err: errors.NewNotFoundError(ticket.MsgTicketNotFound)}, http.StatusNotFound},
		{"bad id", "abc", &mockGetTicketUC{}, http.StatusBadRequest},
		{"zero id", "0", &mockGetTicketUC{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestTicketHandler(testDeps{getTicketUC: tt.uc})

			c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)
			testutil.SetAuthContext(c, 10, authorization.RoleTenant)

			handler.GetTicket(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

// =====================================================================
// Mutations
// =====================================================================

func TestTicketHandler_AssignTicket(t *testing.T) {
	mockUC := &mockAssignTicketUC{result: &dto.TicketDTO{ID: 1, Status: "ASSIGNED"}}
	handler := newTestTicketHandler(testDeps{assignTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/1/assign", AssignTicketRequest{TechnicianID: 9})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetAuthContext(c, 2, authorization.RoleManager)

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.got.TicketID)
	assert.Equal(t, uint(9), mockUC.got.TechnicianID)
}

func TestTicketHandler_UpdateTicketStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       UpdateStatusRequest
		ucErr      error
		wantCode   int
		wantCalled bool
	}{
		{"ok", UpdateStatusRequest{Status: "IN_PROGRESS"}, nil, http.StatusOK, true},
		{"unknown status", UpdateStatusRequest{Status: "DONE"}, nil, http.StatusBadRequest, false},
		{"guard rejects", UpdateStatusRequest{Status: "IN_PROGRESS"}, errors.NewWorkflowError(ticket.MsgAssignTechnicianFirst), http.StatusUnprocessableEntity, true},
		{"lost race", UpdateStatusRequest{Status: "COMPLETED"}, errors.NewConflictError(ticket.MsgConcurrentUpdate), http.StatusConflict, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockChangeStatusUC{result: &dto.TicketDTO{ID: 1}, err: tt.ucErr}
			handler := newTestTicketHandler(testDeps{changeStatusUC: mockUC})

			c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/1/status", tt.body)
			testutil.SetURLParam(c, "id", "1")
			testutil.SetAuthContext(c, 5, authorization.RoleTechnician)

			handler.UpdateTicketStatus(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalled, mockUC.called)
		})
	}
}

func TestTicketHandler_UpdateTicketPriority_Completed(t *testing.T) {
	mockUC := &mockChangePriorityUC{err: errors.NewWorkflowError(ticket.MsgPriorityCompleted)}
	handler := newTestTicketHandler(testDeps{changePriorityUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/1/priority", UpdatePriorityRequest{Priority: "URGENT"})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetAuthContext(c, 2, authorization.RoleManager)

	handler.UpdateTicketPriority(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := parseError(t, w.Body.Bytes())
	assert.Equal(t, ticket.MsgPriorityCompleted, resp.Error.Message)
}

func TestTicketHandler_AddComment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockUC := &mockAddCommentUC{result: &dto.CommentDTO{ID: 4, Content: "On my way"}}
		handler := newTestTicketHandler(testDeps{addCommentUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/1/comments", AddCommentRequest{Content: "On my way"})
		testutil.SetURLParam(c, "id", "1")
		testutil.SetAuthContext(c, 5, authorization.RoleTechnician)

		handler.AddComment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("empty comment", func(t *testing.T) {
		mockUC := &mockAddCommentUC{err: errors.NewValidationError(ticket.MsgCommentEmpty)}
		handler := newTestTicketHandler(testDeps{addCommentUC: mockUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/1/comments", AddCommentRequest{Content: "   "})
		testutil.SetURLParam(c, "id", "1")
		testutil.SetAuthContext(c, 5, authorization.RoleTechnician)

		handler.AddComment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseError(t, w.Body.Bytes())
		assert.Equal(t, ticket.MsgCommentEmpty, resp.Error.Message)
	})
}

func TestTicketHandler_DashboardStats(t *testing.T) {
	mockUC := &mockDashboardUC{result: &dto.DashboardStatsDTO{Total: 3}}
	handler := newTestTicketHandler(testDeps{dashboardUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/dashboard/stats", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleManager)

	handler.DashboardStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_InternalErrorIsGeneric(t *testing.T) {
	mockUC := &mockDashboardUC{err: assert.AnError}
	handler := newTestTicketHandler(testDeps{dashboardUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/dashboard/stats", nil)
	testutil.SetAuthContext(c, 2, authorization.RoleManager)

	handler.DashboardStats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestRegisterValidators_EnumTagsReject(t *testing.T) {
	registerValidators()
	registerValidators()

	tests := []struct {
		name    string
		req     UpdateStatusRequest
		wantErr bool
	}{
		{"known status", UpdateStatusRequest{Status: "IN_PROGRESS"}, false},
		{"unknown status", UpdateStatusRequest{Status: "ARCHIVED"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateStruct(&tt.req)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
