package property

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

const (
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgAddressTooShort = "Address must be at least 5 characters"
	MsgNotFound        = "Property not found"
	MsgNameTaken       = "A property with this name already exists"
)

// Property is a managed building that tickets are raised against.
type Property struct {
	id        uint
	name      string
	address   string
	unitCount int
	managerID uint
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(name, address string, unitCount int, managerID uint) (*Property, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)

	if utf8.RuneCountInString(name) < 2 {
		return nil, errors.NewValidationError(MsgNameTooShort)
	}
	if utf8.RuneCountInString(address) < 5 {
		return nil, errors.NewValidationError(MsgAddressTooShort)
	}
	if unitCount < 0 {
		return nil, errors.NewValidationError("Unit count cannot be negative")
	}
	if managerID == 0 {
		return nil, fmt.Errorf("manager ID is required")
	}

	now := biztime.NowUTC()
	return &Property{
		name:      name,
		address:   address,
		unitCount: unitCount,
		managerID: managerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProperty(id uint, name, address string, unitCount int, managerID uint, createdAt, updatedAt time.Time) *Property {
	return &Property{
		id:        id,
		name:      name,
		address:   address,
		unitCount: unitCount,
		managerID: managerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Property) ID() uint {
	return p.id
}

func (p *Property) Name() string {
	return p.name
}

func (p *Property) Address() string {
	return p.address
}

func (p *Property) UnitCount() int {
	return p.unitCount
}

func (p *Property) ManagerID() uint {
	return p.managerID
}

func (p *Property) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Property) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}
