package ingredient

import (
	"Recipe-Book-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		SearchIngredients(ctx context.Context, query string) ([]*entities.Ingredient, error)
		GetIngredientCategories(ctx context.Context, query string) ([]string, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredientIfUnused(ctx context.Context, id string) (bool, error)
		ReplaceIngredient(ctx context.Context, removeID, fillID string) (int64, error)

		AddCaloriesEntry(ctx context.Context, entry *entities.IngredientCalories) error
		DeleteCaloriesEntry(ctx context.Context, entryID string) (bool, error)
		GetCaloriesForIngredient(ctx context.Context, ingredientID string) ([]*entities.IngredientCalories, error)
		GetCaloriesForIngredients(ctx context.Context, ingredientIDs []uuid.UUID) ([]*entities.IngredientCalories, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) SearchIngredients(ctx context.Context, query string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("name asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientCategories(ctx context.Context, query string) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Distinct("category").
		Where("category IS NOT NULL AND category LIKE ?", "%"+query+"%").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

// DeleteIngredientIfUnused deletes the ingredient and its calorie entries
// unless a recipe still references it. Returns false when nothing was
// deleted.
func (r *ingredientRepository) DeleteIngredientIfUnused(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ? AND NOT EXISTS (SELECT 1 FROM ingredient_usages WHERE ingredient_usages.ingredient_id = ingredients.id)", id).
			Delete(&entities.Ingredient{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("ingredient_id = ?", id).Delete(&entities.IngredientCalories{}).Error
	})
	return deleted, err
}

// ReplaceIngredient rewrites every usage of removeID to fillID and returns
// the number of usages updated.
func (r *ingredientRepository) ReplaceIngredient(ctx context.Context, removeID, fillID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.IngredientUsage{}).
		Where("ingredient_id = ?", removeID).
		Update("ingredient_id", fillID)
	return res.RowsAffected, res.Error
}

func (r *ingredientRepository) AddCaloriesEntry(ctx context.Context, entry *entities.IngredientCalories) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ingredientRepository) DeleteCaloriesEntry(ctx context.Context, entryID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", entryID).
		Delete(&entities.IngredientCalories{})
	return res.RowsAffected > 0, res.Error
}

func (r *ingredientRepository) GetCaloriesForIngredient(ctx context.Context, ingredientID string) ([]*entities.IngredientCalories, error) {
	var entries []*entities.IngredientCalories
	if err := r.db.WithContext(ctx).
		Where("ingredient_id = ?", ingredientID).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ingredientRepository) GetCaloriesForIngredients(ctx context.Context, ingredientIDs []uuid.UUID) ([]*entities.IngredientCalories, error) {
	if len(ingredientIDs) == 0 {
		return nil, nil
	}
	var entries []*entities.IngredientCalories
	if err := r.db.WithContext(ctx).
		Where("ingredient_id IN ?", ingredientIDs).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
