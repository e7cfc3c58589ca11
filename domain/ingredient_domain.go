package domain

import (
	"errors"
)

var (
	MessageSuccessAddIngredientItem      = "ingredient added successfully"
	MessageSuccessGetIngredients         = "ingredients retrieved successfully"
	MessageSuccessGetIngredientCats      = "ingredient categories retrieved successfully"
	MessageSuccessUpdateIngredientItem   = "ingredient updated successfully"
	MessageSuccessDeleteIngredientItem   = "ingredient deleted successfully"
	MessageSuccessReplaceIngredient      = "ingredient replaced successfully"
	MessageSuccessAddCaloriesEntry       = "calorie entry added successfully"
	MessageSuccessGetCaloriesEntries     = "calorie entries retrieved successfully"
	MessageSuccessDeleteCaloriesEntry    = "calorie entry deleted successfully"
	MessageFailedAddIngredientItem       = "failed to add ingredient"
	MessageFailedGetIngredients          = "failed to retrieve ingredients"
	MessageFailedGetIngredientCategories = "failed to retrieve ingredient categories"
	MessageFailedUpdateIngredientItem    = "failed to update ingredient"
	MessageFailedDeleteIngredientItem    = "failed to delete ingredient"
	MessageFailedReplaceIngredient       = "failed to replace ingredient"
	MessageFailedAddCaloriesEntry        = "failed to add calorie entry"
	MessageFailedGetCaloriesEntries      = "failed to retrieve calorie entries"
	MessageFailedDeleteCaloriesEntry     = "failed to delete calorie entry"

	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrIngredientInUse       = errors.New("ingredient is still used by a recipe")
	ErrCaloriesEntryNotFound = errors.New("calorie entry not found")
	ErrSameIngredient        = errors.New("cannot replace an ingredient with itself")
)

type (
	AddIngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"omitempty"`
	}

	ReplaceIngredientRequest struct {
		RemoveID string `json:"remove_id" validate:"required,uuid"`
		FillID   string `json:"fill_id" validate:"required,uuid"`
		Delete   bool   `json:"delete"`
	}

	ReplaceIngredientResponse struct {
		UsagesUpdated int64 `json:"usages_updated"`
		Deleted       bool  `json:"deleted"`
	}

	AddCaloriesEntryRequest struct {
		Calories      float64 `json:"calories" validate:"gte=0"`
		Quantity      float64 `json:"quantity" validate:"required,gt=0"`
		QuantityUnits string  `json:"quantity_units" validate:"required"`
	}

	IngredientResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
	}

	CaloriesEntryResponse struct {
		ID            string  `json:"id"`
		IngredientID  string  `json:"ingredient_id"`
		Calories      float64 `json:"calories"`
		Quantity      float64 `json:"quantity"`
		QuantityUnits string  `json:"quantity_units"`
	}
)
