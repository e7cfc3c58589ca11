package entities

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEntry schedules one recipe on one day. Day is the primary key, so
// scheduling a second recipe on the same day replaces the first.
type CalendarEntry struct {
	Day      time.Time `gorm:"type:date;primary_key" json:"day"`
	RecipeID uuid.UUID `json:"recipe_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

func (CalendarEntry) TableName() string {
	return "calendar"
}
