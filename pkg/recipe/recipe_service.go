package recipe

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/ingredient"
	"Recipe-Book-Backend/pkg/measure"
	"Recipe-Book-Backend/pkg/nutrition"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddCategory(ctx context.Context, req domain.AddCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error

		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, query string, categoryID string, ingredientIDs []string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id string) error

		AddRecipeIngredient(ctx context.Context, recipeID string, req domain.AddRecipeIngredientRequest) error
		UpdateRecipeIngredient(ctx context.Context, usageID string, req domain.UpdateRecipeIngredientRequest) error
		DeleteRecipeIngredient(ctx context.Context, usageID string) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ingredientRepository ingredient.IngredientRepository) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (s *recipeService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.RecipeCategory{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.recipeRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return domain.CategoryResponse{ID: category.ID.String(), Name: category.Name}, nil
}

func (s *recipeService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.recipeRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, domain.CategoryResponse{ID: category.ID.String(), Name: category.Name})
	}
	return result, nil
}

func (s *recipeService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	category, err := s.recipeRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	category.Name = req.Name
	return s.recipeRepository.UpdateCategory(ctx, category)
}

func (s *recipeService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.recipeRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	deleted, err := s.recipeRepository.DeleteCategoryIfUnused(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCategoryInUse
	}
	return nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error) {
	category, err := s.recipeRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrCategoryNotFound
		}
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:         uuid.New(),
		Name:       req.Name,
		Duration:   entities.DurationShort,
		CategoryID: category.ID,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Category = category
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, query string, categoryID string, ingredientIDs []string) ([]domain.RecipeResponse, error) {
	var (
		recipes []*entities.Recipe
		err     error
	)

	if len(ingredientIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(ingredientIDs))
		for _, raw := range ingredientIDs {
			id, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				return nil, domain.ErrParseUUID
			}
			ids = append(ids, id)
		}
		recipes, err = s.recipeRepository.SearchRecipesByIngredients(ctx, ids)
	} else {
		recipes, err = s.recipeRepository.SearchRecipes(ctx, query, categoryID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

// GetRecipeDetail returns the recipe with its ingredient list and a calorie
// total. Ingredients whose units cannot be reconciled with any calorie record
// are reported rather than silently dropped.
func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	usages, err := s.recipeRepository.GetUsagesForRecipe(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredientIDs := make([]uuid.UUID, 0, len(usages))
	names := make(map[uuid.UUID]string, len(usages))
	for _, usage := range usages {
		ingredientIDs = append(ingredientIDs, usage.IngredientID)
		if usage.Ingredient != nil {
			names[usage.IngredientID] = usage.Ingredient.Name
		}
	}

	densities, err := s.loadDensities(ctx, ingredientIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	detail := domain.RecipeDetailResponse{
		RecipeResponse:      toRecipeResponse(recipe),
		Ingredients:         make([]domain.RecipeIngredientResponse, 0, len(usages)),
		UnscoredIngredients: []string{},
		FailedIngredients:   []domain.ConversionFailureResponse{},
	}

	nutritionUsages := make([]nutrition.Usage, 0, len(usages))
	for _, usage := range usages {
		units, ok := measure.ParseUnit(usage.QuantityUnits)
		if !ok {
			return domain.RecipeDetailResponse{}, domain.ErrUnknownUnit
		}

		nu := nutrition.Usage{
			RecipeID:     usage.RecipeID,
			IngredientID: usage.IngredientID,
			Quantity:     measure.Quantity{Magnitude: usage.Quantity, Unit: units},
		}
		nutritionUsages = append(nutritionUsages, nu)

		row := domain.RecipeIngredientResponse{
			UsageID:       usage.ID.String(),
			IngredientID:  usage.IngredientID.String(),
			Name:          names[usage.IngredientID],
			Quantity:      usage.Quantity,
			QuantityUnits: usage.QuantityUnits,
		}
		contribution := nutrition.ScoreUsage(nu, densities[usage.IngredientID])
		if !contribution.Unscored && contribution.Failure == nil {
			calories := contribution.Calories
			row.Calories = &calories
		}
		detail.Ingredients = append(detail.Ingredients, row)
	}

	totals := nutrition.CaloriesForRecipe(nutritionUsages, densities)
	detail.TotalCalories = totals.Total
	for _, ingredientID := range totals.Unscored {
		detail.UnscoredIngredients = append(detail.UnscoredIngredients, names[ingredientID])
	}
	for _, failed := range totals.Failed {
		detail.FailedIngredients = append(detail.FailedIngredients, domain.ConversionFailureResponse{
			Ingredient: names[failed.IngredientID],
			FromUnits:  string(failed.Failure.From),
			ToUnits:    string(failed.Failure.To),
		})
	}
	return detail, nil
}

func (s *recipeService) loadDensities(ctx context.Context, ingredientIDs []uuid.UUID) (map[uuid.UUID][]nutrition.Density, error) {
	if len(ingredientIDs) == 0 {
		return map[uuid.UUID][]nutrition.Density{}, nil
	}

	entries, err := s.ingredientRepository.GetCaloriesForIngredients(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}

	densities := make(map[uuid.UUID][]nutrition.Density, len(ingredientIDs))
	for _, entry := range entries {
		units, ok := measure.ParseUnit(entry.QuantityUnits)
		if !ok {
			return nil, domain.ErrUnknownUnit
		}
		densities[entry.IngredientID] = append(densities[entry.IngredientID], nutrition.Density{
			IngredientID: entry.IngredientID,
			Reference:    measure.Quantity{Magnitude: entry.Quantity, Unit: units},
			Calories:     entry.Calories,
		})
	}
	return densities, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Duration != "" {
		switch req.Duration {
		case entities.DurationShort, entities.DurationMedium, entities.DurationLong, entities.DurationReallyLong:
			recipe.Duration = req.Duration
		default:
			return domain.ErrInvalidDuration
		}
	}
	if req.CategoryID != "" {
		category, err := s.recipeRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		recipe.CategoryID = category.ID
		recipe.Category = nil
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) AddRecipeIngredient(ctx context.Context, recipeID string, req domain.AddRecipeIngredientRequest) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	ingredientRow, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	units, ok := measure.ParseUnit(req.QuantityUnits)
	if !ok {
		return domain.ErrUnknownUnit
	}

	usage := &entities.IngredientUsage{
		ID:            uuid.New(),
		RecipeID:      recipe.ID,
		IngredientID:  ingredientRow.ID,
		Quantity:      req.Quantity,
		QuantityUnits: string(units),
	}
	return s.recipeRepository.CreateUsage(ctx, usage)
}

func (s *recipeService) UpdateRecipeIngredient(ctx context.Context, usageID string, req domain.UpdateRecipeIngredientRequest) error {
	usage, err := s.recipeRepository.GetUsageByID(ctx, usageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUsageNotFound
		}
		return err
	}

	ingredientRow, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	units, ok := measure.ParseUnit(req.QuantityUnits)
	if !ok {
		return domain.ErrUnknownUnit
	}

	usage.IngredientID = ingredientRow.ID
	usage.Ingredient = nil
	usage.Quantity = req.Quantity
	usage.QuantityUnits = string(units)
	return s.recipeRepository.UpdateUsage(ctx, usage)
}

func (s *recipeService) DeleteRecipeIngredient(ctx context.Context, usageID string) error {
	deleted, err := s.recipeRepository.DeleteUsage(ctx, usageID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUsageNotFound
	}
	return nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	response := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Description: recipe.Description,
		Duration:    recipe.Duration,
		CategoryID:  recipe.CategoryID.String(),
	}
	if recipe.Category != nil {
		response.CategoryName = recipe.Category.Name
	}
	return response
}
