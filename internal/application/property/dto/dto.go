package dto

import (
	"time"

	ticketdto "github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
)

type PropertyDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	UnitCount   int       `json:"unit_count"`
	ManagerID   uint      `json:"manager_id"`
	TicketCount int64     `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// PropertyDetailDTO is one property with its manager and every ticket filed
// against it, newest first.
type PropertyDetailDTO struct {
	PropertyDTO
	Manager *ticketdto.UserSummaryDTO      `json:"manager,omitempty"`
	Tickets []*ticketdto.TicketListItemDTO `json:"tickets"`
}

// PropertyOptionDTO is the slim form used by the ticket submission picker.
type PropertyOptionDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func ToPropertyDTO(p *property.Property, ticketCount int64) *PropertyDTO {
	return &PropertyDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Address:     p.Address(),
		UnitCount:   p.UnitCount(),
		ManagerID:   p.ManagerID(),
		TicketCount: ticketCount,
		CreatedAt:   p.CreatedAt(),
	}
}

func ToPropertyOptionDTO(p *property.Property) *PropertyOptionDTO {
	return &PropertyOptionDTO{
		ID:      p.ID(),
		Name:    p.Name(),
		Address: p.Address(),
	}
}
