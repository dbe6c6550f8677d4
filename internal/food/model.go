package food

import (
	"github.com/google/uuid"

	"github.com/redmonkez12/plan-a-meal/internal/database"
)

// Food is a food item with its optional nutrition facts.
type Food struct {
	ID     uuid.UUID `json:"uuid"`
	Name   string    `json:"name"`
	Brand  *string   `json:"brand"`
	Weight *float64  `json:"weight"`

	database.Nutrients
}

// CreateInput is the body accepted when adding a food item. Name is a
// pointer so a missing name can be told apart from an empty one.
type CreateInput struct {
	ID     *uuid.UUID `json:"uuid"`
	Name   *string    `json:"name" validate:"required,min=1"`
	Brand  *string    `json:"brand"`
	Weight *float64   `json:"weight"`

	database.Nutrients
}

// Range is an inclusive numeric bound; either end may be open.
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) empty() bool {
	return r.Min == nil && r.Max == nil
}

// Filter narrows a food listing. All set conditions must hold.
type Filter struct {
	Name          string
	Calories      Range
	Protein       Range
	Carbohydrates Range

	Limit  int
	Offset int
}

type columnRange struct {
	column string
	bound  Range
}

// ranges pairs each bound with the column it constrains.
func (f Filter) ranges() []columnRange {
	return []columnRange{
		{"calories", f.Calories},
		{"protein", f.Protein},
		{"total_carbohydrate", f.Carbohydrates},
	}
}
