package importer

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/ingredient"
	"Recipe-Book-Backend/pkg/recipe"
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImporterService interface {
		ImportArchive(ctx context.Context, r io.Reader) (domain.ImportArchiveResponse, error)
	}

	importerService struct {
		recipeRepository     recipe.RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewImporterService(recipeRepository recipe.RecipeRepository, ingredientRepository ingredient.IngredientRepository) ImporterService {
	return &importerService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

// ImportArchive validates the archive, then creates its categories, recipes,
// ingredients, and usages. Categories and ingredients are resolved by name
// and created only when missing; recipes are always created.
func (s *importerService) ImportArchive(ctx context.Context, r io.Reader) (domain.ImportArchiveResponse, error) {
	archive, err := ParseArchive(r)
	if err != nil {
		return domain.ImportArchiveResponse{}, err
	}

	var result domain.ImportArchiveResponse
	categories := make(map[string]uuid.UUID)
	ingredients := make(map[string]uuid.UUID)

	for _, archiveRecipe := range archive.Recipes {
		categoryID, ok := categories[archiveRecipe.Category]
		if !ok {
			categoryID, err = s.resolveCategory(ctx, archiveRecipe.Category, &result)
			if err != nil {
				return domain.ImportArchiveResponse{}, err
			}
			categories[archiveRecipe.Category] = categoryID
		}

		duration := archiveRecipe.Duration
		if duration == "" {
			duration = entities.DurationShort
		}
		created := &entities.Recipe{
			ID:          uuid.New(),
			Name:        archiveRecipe.Name,
			Description: archiveRecipe.Description,
			Duration:    duration,
			CategoryID:  categoryID,
		}
		if err := s.recipeRepository.CreateRecipe(ctx, created); err != nil {
			return domain.ImportArchiveResponse{}, err
		}
		result.Recipes++

		for _, usage := range archiveRecipe.Ingredients {
			ingredientID, ok := ingredients[usage.Ingredient]
			if !ok {
				ingredientID, err = s.resolveIngredient(ctx, usage, &result)
				if err != nil {
					return domain.ImportArchiveResponse{}, err
				}
				ingredients[usage.Ingredient] = ingredientID
			}

			err := s.recipeRepository.CreateUsage(ctx, &entities.IngredientUsage{
				ID:            uuid.New(),
				RecipeID:      created.ID,
				IngredientID:  ingredientID,
				Quantity:      usage.Quantity,
				QuantityUnits: usage.QuantityUnits,
			})
			if err != nil {
				return domain.ImportArchiveResponse{}, err
			}
			result.Usages++
		}
	}
	return result, nil
}

func (s *importerService) resolveCategory(ctx context.Context, name string, result *domain.ImportArchiveResponse) (uuid.UUID, error) {
	existing, err := s.findCategoryByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	category := &entities.RecipeCategory{ID: uuid.New(), Name: name}
	if err := s.recipeRepository.CreateCategory(ctx, category); err != nil {
		return uuid.Nil, err
	}
	result.Categories++
	return category.ID, nil
}

func (s *importerService) findCategoryByName(ctx context.Context, name string) (uuid.UUID, error) {
	categories, err := s.recipeRepository.GetCategories(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	for _, category := range categories {
		if category.Name == name {
			return category.ID, nil
		}
	}
	return uuid.Nil, gorm.ErrRecordNotFound
}

func (s *importerService) resolveIngredient(ctx context.Context, usage ArchiveUsage, result *domain.ImportArchiveResponse) (uuid.UUID, error) {
	existing, err := s.ingredientRepository.GetIngredientByName(ctx, usage.Ingredient)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	created := &entities.Ingredient{ID: uuid.New(), Name: usage.Ingredient}
	if usage.Category != "" {
		created.Category = &usage.Category
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, created); err != nil {
		return uuid.Nil, err
	}
	result.Ingredients++
	return created.ID, nil
}
