package entities

import (
	"github.com/google/uuid"
)

const (
	DurationShort      = "short"
	DurationMedium     = "medium"
	DurationLong       = "long"
	DurationReallyLong = "really_long"
)

type RecipeCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Duration    string    `json:"duration"` // "short", "medium", "long", "really_long"
	CategoryID  uuid.UUID `json:"category_id"`

	Category *RecipeCategory `gorm:"foreignKey:CategoryID"`
	Timestamp
}

// IngredientUsage is one ingredient requirement of a recipe. Usages are
// owned by their recipe and deleted with it.
type IngredientUsage struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID      uuid.UUID `gorm:"index" json:"recipe_id"`
	IngredientID  uuid.UUID `gorm:"index" json:"ingredient_id"`
	Quantity      float64   `gorm:"check:quantity >= 0" json:"quantity"`
	QuantityUnits string    `json:"quantity_units"` // one of measure.Units()

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
