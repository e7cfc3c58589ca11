package calendar

import (
	"Recipe-Book-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// ScheduledUsage is one ingredient requirement of a scheduled recipe,
	// flattened across the calendar, usage, and ingredient tables.
	ScheduledUsage struct {
		RecipeID      uuid.UUID `gorm:"column:recipe_id"`
		IngredientID  uuid.UUID `gorm:"column:ingredient_id"`
		Name          string    `gorm:"column:name"`
		Category      *string   `gorm:"column:category"`
		Quantity      float64   `gorm:"column:quantity"`
		QuantityUnits string    `gorm:"column:quantity_units"`
	}

	CalendarRepository interface {
		GetEntriesInRange(ctx context.Context, start, end time.Time) ([]*entities.CalendarEntry, error)
		UpsertEntry(ctx context.Context, entry *entities.CalendarEntry) error
		DeleteEntry(ctx context.Context, day time.Time) (bool, error)
		GetScheduledUsages(ctx context.Context, start, end time.Time) ([]ScheduledUsage, error)
	}

	calendarRepository struct {
		db *gorm.DB
	}
)

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) GetEntriesInRange(ctx context.Context, start, end time.Time) ([]*entities.CalendarEntry, error) {
	var entries []*entities.CalendarEntry
	err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("day BETWEEN ? AND ?", start, end).
		Order("day asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertEntry schedules a recipe on a day, replacing whatever was there.
func (r *calendarRepository) UpsertEntry(ctx context.Context, entry *entities.CalendarEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id"}),
	}).Create(entry).Error
}

func (r *calendarRepository) DeleteEntry(ctx context.Context, day time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Where("day = ?", day).Delete(&entities.CalendarEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetScheduledUsages returns every ingredient requirement of every recipe
// scheduled in the range, ordered by day so the earliest occurrence of an
// ingredient decides its display unit.
func (r *calendarRepository) GetScheduledUsages(ctx context.Context, start, end time.Time) ([]ScheduledUsage, error) {
	var rows []ScheduledUsage
	err := r.db.WithContext(ctx).
		Table("calendar").
		Select("ingredient_usages.recipe_id, ingredient_usages.ingredient_id, ingredients.name, ingredients.category, ingredient_usages.quantity, ingredient_usages.quantity_units").
		Joins("JOIN ingredient_usages ON ingredient_usages.recipe_id = calendar.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = ingredient_usages.ingredient_id").
		Where("calendar.day BETWEEN ? AND ?", start, end).
		Order("calendar.day asc, ingredients.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
