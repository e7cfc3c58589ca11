package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `gorm:"uniqueIndex" json:"name"`
	Category *string   `json:"category,omitempty"` // shopping aisle, e.g. "dairy"; nil = uncategorized

	Timestamp
}

// IngredientCalories states how many calories a reference quantity of an
// ingredient carries, e.g. 200 calories per 1 cup.
type IngredientCalories struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID  uuid.UUID `gorm:"index" json:"ingredient_id"`
	Calories      float64   `gorm:"check:calories >= 0" json:"calories"`
	Quantity      float64   `gorm:"check:quantity > 0" json:"quantity"`
	QuantityUnits string    `json:"quantity_units"` // one of measure.Units()
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
