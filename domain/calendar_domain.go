package domain

import (
	"errors"
)

var (
	MessageSuccessGetWeek            = "calendar week retrieved successfully"
	MessageSuccessScheduleRecipe     = "recipe scheduled successfully"
	MessageSuccessClearDay           = "calendar day cleared successfully"
	MessageSuccessGetShoppingList    = "shopping list generated successfully"
	MessageSuccessExportMenu         = "menu exported successfully"
	MessageSuccessExportShoppingList = "shopping list exported successfully"

	MessageFailedGetWeek            = "failed to retrieve calendar week"
	MessageFailedScheduleRecipe     = "failed to schedule recipe"
	MessageFailedClearDay           = "failed to clear calendar day"
	MessageFailedGetShoppingList    = "failed to generate shopping list"
	MessageFailedExportMenu         = "failed to export menu"
	MessageFailedExportShoppingList = "failed to export shopping list"

	ErrInvalidDay            = errors.New("invalid calendar day, expected YYYY-MM-DD")
	ErrInvalidRange          = errors.New("invalid date range")
	ErrCalendarEntryNotFound = errors.New("no recipe scheduled on that day")
)

type (
	ScheduleRecipeRequest struct {
		Day      string `json:"day" validate:"required"`
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	CalendarDayResponse struct {
		Day     string                `json:"day"`
		Weekday string                `json:"weekday"`
		Recipe  *RecipeHandleResponse `json:"recipe,omitempty"`
	}

	CalendarWeekResponse struct {
		WeekStart string                `json:"week_start"`
		Days      []CalendarDayResponse `json:"days"`
	}

	ShoppingListFailureResponse struct {
		RecipeID  string `json:"recipe_id"`
		FromUnits string `json:"from_units"`
		ToUnits   string `json:"to_units"`
	}

	ShoppingListLineResponse struct {
		IngredientID     string                        `json:"ingredient_id"`
		Name             string                        `json:"name"`
		Quantity         float64                       `json:"quantity"`
		QuantityUnits    string                        `json:"quantity_units"`
		ConversionFailed bool                          `json:"conversion_failed"`
		Failures         []ShoppingListFailureResponse `json:"failures,omitempty"`
	}

	ShoppingListCategoryResponse struct {
		Category string                     `json:"category"` // empty = uncategorized, listed last
		Items    []ShoppingListLineResponse `json:"items"`
	}

	ShoppingListResponse struct {
		Start      string                         `json:"start"`
		End        string                         `json:"end"`
		Categories []ShoppingListCategoryResponse `json:"categories"`
	}
)
