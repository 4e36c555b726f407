package ticket

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/usecases"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/utils"
)

var registerOnce sync.Once

var ticketEnums = map[string]func(string) bool{
	"ticket_status":   vo.IsValidStatus,
	"ticket_priority": vo.IsValidPriority,
	"ticket_category": vo.IsValidCategory,
}

// registerValidators installs the ticket enum tags on the shared validator.
// A tag that fails to register would silently accept every value, so it panics.
func registerValidators() {
	registerOnce.Do(func() {
		for tag, isValid := range ticketEnums {
			if err := utils.RegisterEnum(tag, isValid); err != nil {
				panic(fmt.Sprintf("failed to register %s validator: %v", tag, err))
			}
		}
	})
}

// Title and description lengths are enforced by the ticket aggregate on trimmed input.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,ticket_category" errmsg:"Please select a valid category"`
	Priority    string `json:"priority" validate:"omitempty,ticket_priority" errmsg:"Invalid priority"`
	PropertyID  uint   `json:"property_id" validate:"required" errmsg:"Please select a property"`
	UnitNumber  string `json:"unit_number" validate:"max=20" label:"Unit number"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		PropertyID:  r.PropertyID,
		UnitNumber:  r.UnitNumber,
	}
}

type AssignTicketRequest struct {
	TechnicianID uint `json:"technician_id" validate:"required" errmsg:"Please select a technician"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,ticket_status" errmsg:"Invalid status"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required,ticket_priority" errmsg:"Invalid priority"`
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

func parseListTicketsQuery(c *gin.Context, actor authorization.Actor) usecases.ListTicketsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		Actor:     actor,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
