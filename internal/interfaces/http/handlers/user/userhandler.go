// Package user serves sign-up, sign-in, the current session, profile photos and
// the technician roster.
package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/application/user/usecases"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

type loginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginResultDTO, error)
}

type registerExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.LoginResultDTO, error)
}

type currentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type listTechniciansExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]*dto.TechnicianDTO, error)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

// RegisterRequest leaves name, password and role rules to the use case so the
// messages match the sign-up form.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" label:"Name"`
	Email    string `json:"email" validate:"required,email" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
	Role     string `json:"role"`
}

type UserHandler struct {
	loginUC       loginExecutor
	registerUC    registerExecutor
	currentUserUC currentUserExecutor
	techniciansUC listTechniciansExecutor
	logger        logger.Interface
}

func NewUserHandler(
	loginUC loginExecutor,
	registerUC registerExecutor,
	currentUserUC currentUserExecutor,
	techniciansUC listTechniciansExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		loginUC:       loginUC,
		registerUC:    registerUC,
		currentUserUC: currentUserUC,
		techniciansUC: techniciansUC,
		logger:        logger,
	}
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("login failed", "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created")
}

// Me handles GET /api/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.currentUserUC.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTechnicians handles GET /api/technicians
func (h *UserHandler) ListTechnicians(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.techniciansUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
