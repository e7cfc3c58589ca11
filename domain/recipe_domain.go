package domain

import (
	"errors"
)

var (
	MessageSuccessAddCategory    = "recipe category added successfully"
	MessageSuccessGetCategories  = "recipe categories retrieved successfully"
	MessageSuccessUpdateCategory = "recipe category updated successfully"
	MessageSuccessDeleteCategory = "recipe category deleted successfully"

	MessageSuccessAddRecipe        = "recipe added successfully"
	MessageSuccessGetRecipes       = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail  = "recipe detail retrieved successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessAddIngredient    = "recipe ingredient added successfully"
	MessageSuccessUpdateIngredient = "recipe ingredient updated successfully"
	MessageSuccessDeleteIngredient = "recipe ingredient removed successfully"

	MessageFailedAddCategory    = "failed to add recipe category"
	MessageFailedGetCategories  = "failed to retrieve recipe categories"
	MessageFailedUpdateCategory = "failed to update recipe category"
	MessageFailedDeleteCategory = "failed to delete recipe category"

	MessageFailedAddRecipe        = "failed to add recipe"
	MessageFailedGetRecipes       = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail  = "failed to retrieve recipe detail"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedAddIngredient    = "failed to add recipe ingredient"
	MessageFailedUpdateIngredient = "failed to update recipe ingredient"
	MessageFailedDeleteIngredient = "failed to remove recipe ingredient"

	ErrCategoryNotFound = errors.New("recipe category not found")
	ErrCategoryInUse    = errors.New("recipe category still has recipes")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrUsageNotFound    = errors.New("recipe ingredient not found")
	ErrInvalidDuration  = errors.New("invalid recipe duration")
)

type (
	AddCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	AddRecipeRequest struct {
		Name       string `json:"name" validate:"required"`
		CategoryID string `json:"category_id" validate:"required,uuid"`
	}

	UpdateRecipeRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Duration    string `json:"duration" validate:"omitempty,oneof=short medium long really_long"`
		CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
	}

	AddRecipeIngredientRequest struct {
		IngredientID  string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity      float64 `json:"quantity" validate:"gte=0"`
		QuantityUnits string  `json:"quantity_units" validate:"required"`
	}

	UpdateRecipeIngredientRequest struct {
		IngredientID  string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity      float64 `json:"quantity" validate:"gte=0"`
		QuantityUnits string  `json:"quantity_units" validate:"required"`
	}

	RecipeHandleResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	RecipeResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Duration     string `json:"duration"`
		CategoryID   string `json:"category_id"`
		CategoryName string `json:"category_name,omitempty"`
	}

	RecipeIngredientResponse struct {
		UsageID       string   `json:"usage_id"`
		IngredientID  string   `json:"ingredient_id"`
		Name          string   `json:"name"`
		Quantity      float64  `json:"quantity"`
		QuantityUnits string   `json:"quantity_units"`
		Calories      *float64 `json:"calories,omitempty"`
	}

	ConversionFailureResponse struct {
		Ingredient string `json:"ingredient"`
		FromUnits  string `json:"from_units"`
		ToUnits    string `json:"to_units"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients         []RecipeIngredientResponse  `json:"ingredients"`
		TotalCalories       float64                     `json:"total_calories"`
		UnscoredIngredients []string                    `json:"unscored_ingredients"`
		FailedIngredients   []ConversionFailureResponse `json:"failed_ingredients"`
	}
)
