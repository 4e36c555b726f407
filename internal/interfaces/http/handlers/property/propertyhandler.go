// Package property serves the property registry.
package property

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/application/property/dto"
	"github.com/compiler-aditya/PropTech/internal/application/property/usecases"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

type createPropertyExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreatePropertyCommand) (*dto.PropertyDTO, error)
}

type listPropertiesExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) ([]*dto.PropertyDTO, error)
}

type listOptionsExecutor interface {
	Execute(ctx context.Context) ([]*dto.PropertyOptionDTO, error)
}

type getPropertyExecutor interface {
	Execute(ctx context.Context, query usecases.GetPropertyQuery) (*dto.PropertyDetailDTO, error)
}

type CreatePropertyRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	UnitCount int    `json:"unit_count" validate:"gte=0,lte=10000" label:"Unit count"`
}

type PropertyHandler struct {
	createUC  createPropertyExecutor
	listUC    listPropertiesExecutor
	optionsUC listOptionsExecutor
	getUC     getPropertyExecutor
	logger    logger.Interface
}

func NewPropertyHandler(
	createUC createPropertyExecutor,
	listUC listPropertiesExecutor,
	optionsUC listOptionsExecutor,
	getUC getPropertyExecutor,
	logger logger.Interface,
) *PropertyHandler {
	return &PropertyHandler{
		createUC:  createUC,
		listUC:    listUC,
		optionsUC: optionsUC,
		getUC:     getUC,
		logger:    logger,
	}
}

// CreateProperty handles POST /api/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create property", "error", err, "user_id", actor.ID)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePropertyCommand{
		Actor:     actor,
		Name:      req.Name,
		Address:   req.Address,
		UnitCount: req.UnitCount,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created successfully")
}

// ListProperties handles GET /api/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOptions handles GET /api/properties/all
func (h *PropertyHandler) ListOptions(c *gin.Context) {
	result, err := h.optionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProperty handles GET /api/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}
	propertyID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid property ID"))
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPropertyQuery{
		Actor:      actor,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
