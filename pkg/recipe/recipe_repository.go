package recipe

import (
	"Recipe-Book-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateCategory(ctx context.Context, category *entities.RecipeCategory) error
		GetCategoryByID(ctx context.Context, id string) (*entities.RecipeCategory, error)
		GetCategories(ctx context.Context) ([]*entities.RecipeCategory, error)
		UpdateCategory(ctx context.Context, category *entities.RecipeCategory) error
		DeleteCategoryIfUnused(ctx context.Context, id string) (bool, error)

		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		SearchRecipes(ctx context.Context, query string, categoryID string) ([]*entities.Recipe, error)
		SearchRecipesByIngredients(ctx context.Context, ingredientIDs []uuid.UUID) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error

		CreateUsage(ctx context.Context, usage *entities.IngredientUsage) error
		GetUsageByID(ctx context.Context, id string) (*entities.IngredientUsage, error)
		GetUsagesForRecipe(ctx context.Context, recipeID string) ([]*entities.IngredientUsage, error)
		UpdateUsage(ctx context.Context, usage *entities.IngredientUsage) error
		DeleteUsage(ctx context.Context, id string) (bool, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateCategory(ctx context.Context, category *entities.RecipeCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *recipeRepository) GetCategoryByID(ctx context.Context, id string) (*entities.RecipeCategory, error) {
	var category entities.RecipeCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *recipeRepository) GetCategories(ctx context.Context) ([]*entities.RecipeCategory, error) {
	var categories []*entities.RecipeCategory
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) UpdateCategory(ctx context.Context, category *entities.RecipeCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *recipeRepository) DeleteCategoryIfUnused(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM recipes WHERE recipes.category_id = recipe_categories.id)").
		Delete(&entities.RecipeCategory{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, categoryID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	tx := r.db.WithContext(ctx).Preload("Category")
	if query != "" {
		tx = tx.Where("name LIKE ?", "%"+query+"%")
	}
	if categoryID != "" {
		tx = tx.Where("category_id = ?", categoryID)
	}
	if err := tx.Order("name asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SearchRecipesByIngredients(ctx context.Context, ingredientIDs []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	err := r.db.WithContext(ctx).
		Distinct("recipes.*").
		Joins("JOIN ingredient_usages ON ingredient_usages.recipe_id = recipes.id").
		Where("ingredient_usages.ingredient_id IN ?", ingredientIDs).
		Order("recipes.name asc").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe removes the recipe together with its ingredient usages and
// any calendar days it was scheduled on.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.IngredientUsage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.CalendarEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) CreateUsage(ctx context.Context, usage *entities.IngredientUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *recipeRepository) GetUsageByID(ctx context.Context, id string) (*entities.IngredientUsage, error) {
	var usage entities.IngredientUsage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&usage).Error; err != nil {
		return nil, err
	}
	return &usage, nil
}

func (r *recipeRepository) GetUsagesForRecipe(ctx context.Context, recipeID string) ([]*entities.IngredientUsage, error) {
	var usages []*entities.IngredientUsage
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Joins("JOIN ingredients ON ingredients.id = ingredient_usages.ingredient_id").
		Where("ingredient_usages.recipe_id = ?", recipeID).
		Order("ingredients.name asc").
		Find(&usages).Error
	if err != nil {
		return nil, err
	}
	return usages, nil
}

func (r *recipeRepository) UpdateUsage(ctx context.Context, usage *entities.IngredientUsage) error {
	return r.db.WithContext(ctx).Save(usage).Error
}

func (r *recipeRepository) DeleteUsage(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.IngredientUsage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
