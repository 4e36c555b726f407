package valueobjects

import "fmt"

type Category string

const (
	CategoryPlumbing    Category = "PLUMBING"
	CategoryElectrical  Category = "ELECTRICAL"
	CategoryHVAC        Category = "HVAC"
	CategoryAppliance   Category = "APPLIANCE"
	CategoryStructural  Category = "STRUCTURAL"
	CategoryPestControl Category = "PEST_CONTROL"
	CategoryOther       Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategoryPlumbing:    true,
	CategoryElectrical:  true,
	CategoryHVAC:        true,
	CategoryAppliance:   true,
	CategoryStructural:  true,
	CategoryPestControl: true,
	CategoryOther:       true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

func IsValidCategory(s string) bool {
	return Category(s).IsValid()
}
