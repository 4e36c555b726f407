// Package ticket exposes the maintenance ticket workflow over HTTP.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/usecases"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   createTicketExecutor
	listTicketsUC    listTicketsExecutor
	getTicketUC      getTicketExecutor
	assignTicketUC   assignTicketExecutor
	changeStatusUC   changeStatusExecutor
	changePriorityUC changePriorityExecutor
	addCommentUC     addCommentExecutor
	dashboardUC      dashboardStatsExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC createTicketExecutor,
	listTicketsUC listTicketsExecutor,
	getTicketUC getTicketExecutor,
	assignTicketUC assignTicketExecutor,
	changeStatusUC changeStatusExecutor,
	changePriorityUC changePriorityExecutor,
	addCommentUC addCommentExecutor,
	dashboardUC dashboardStatsExecutor,
	logger logger.Interface,
) *TicketHandler {
	registerValidators()
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		assignTicketUC:   assignTicketUC,
		changeStatusUC:   changeStatusUC,
		changePriorityUC: changePriorityUC,
		addCommentUC:     addCommentUC,
		dashboardUC:      dashboardUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), parseListTicketsQuery(c, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignTicket handles POST /api/tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req AssignTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Actor:        actor,
		TicketID:     ticketID,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// UpdateTicketStatus handles PATCH /api/tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Actor:    actor,
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// UpdateTicketPriority handles PATCH /api/tickets/:id/priority
func (h *TicketHandler) UpdateTicketPriority(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req UpdatePriorityRequest
	if !bindAndValidate(c, &req) {
		return
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), usecases.ChangePriorityCommand{
		Actor:    actor,
		TicketID: ticketID,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket priority updated successfully", result)
}

// AddComment handles POST /api/tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, ok := parseTicketID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    actor,
		TicketID: ticketID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DashboardStats handles GET /api/dashboard/stats
func (h *TicketHandler) DashboardStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func requireActor(c *gin.Context) (authorization.Actor, bool) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return authorization.Actor{}, false
	}
	return actor, true
}

func parseTicketID(c *gin.Context) (uint, bool) {
	id, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket ID"))
		return 0, false
	}
	return id, true
}

func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return false
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}
