package ingredient

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/measure"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, search string) ([]domain.IngredientResponse, error)
		GetIngredientCategories(ctx context.Context, search string) ([]string, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error
		DeleteIngredient(ctx context.Context, id string) error
		ReplaceIngredient(ctx context.Context, req domain.ReplaceIngredientRequest) (domain.ReplaceIngredientResponse, error)
		AddCaloriesEntry(ctx context.Context, ingredientID string, req domain.AddCaloriesEntryRequest) (domain.CaloriesEntryResponse, error)
		GetCaloriesEntries(ctx context.Context, ingredientID string) ([]domain.CaloriesEntryResponse, error)
		DeleteCaloriesEntry(ctx context.Context, entryID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if req.Category != "" {
		ingredient.Category = &req.Category
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, search string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, search)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) GetIngredientCategories(ctx context.Context, search string) ([]string, error) {
	return s.ingredientRepository.GetIngredientCategories(ctx, search)
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	ingredient.Name = req.Name
	if req.Category != "" {
		ingredient.Category = &req.Category
	} else {
		ingredient.Category = nil
	}

	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	deleted, err := s.ingredientRepository.DeleteIngredientIfUnused(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrIngredientInUse
	}
	return nil
}

func (s *ingredientService) ReplaceIngredient(ctx context.Context, req domain.ReplaceIngredientRequest) (domain.ReplaceIngredientResponse, error) {
	if req.RemoveID == req.FillID {
		return domain.ReplaceIngredientResponse{}, domain.ErrSameIngredient
	}

	for _, id := range []string{req.RemoveID, req.FillID} {
		if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ReplaceIngredientResponse{}, domain.ErrIngredientNotFound
			}
			return domain.ReplaceIngredientResponse{}, err
		}
	}

	updated, err := s.ingredientRepository.ReplaceIngredient(ctx, req.RemoveID, req.FillID)
	if err != nil {
		return domain.ReplaceIngredientResponse{}, err
	}

	deleted := false
	if req.Delete {
		deleted, err = s.ingredientRepository.DeleteIngredientIfUnused(ctx, req.RemoveID)
		if err != nil {
			return domain.ReplaceIngredientResponse{}, err
		}
	}

	return domain.ReplaceIngredientResponse{
		UsagesUpdated: updated,
		Deleted:       deleted,
	}, nil
}

func (s *ingredientService) AddCaloriesEntry(ctx context.Context, ingredientID string, req domain.AddCaloriesEntryRequest) (domain.CaloriesEntryResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CaloriesEntryResponse{}, domain.ErrIngredientNotFound
		}
		return domain.CaloriesEntryResponse{}, err
	}

	units, ok := measure.ParseUnit(req.QuantityUnits)
	if !ok {
		return domain.CaloriesEntryResponse{}, domain.ErrUnknownUnit
	}

	entry := &entities.IngredientCalories{
		ID:            uuid.New(),
		IngredientID:  ingredient.ID,
		Calories:      req.Calories,
		Quantity:      req.Quantity,
		QuantityUnits: string(units),
	}
	if err := s.ingredientRepository.AddCaloriesEntry(ctx, entry); err != nil {
		return domain.CaloriesEntryResponse{}, err
	}

	return toCaloriesEntryResponse(entry), nil
}

func (s *ingredientService) GetCaloriesEntries(ctx context.Context, ingredientID string) ([]domain.CaloriesEntryResponse, error) {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}

	entries, err := s.ingredientRepository.GetCaloriesForIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CaloriesEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toCaloriesEntryResponse(entry))
	}
	return result, nil
}

func (s *ingredientService) DeleteCaloriesEntry(ctx context.Context, entryID string) error {
	deleted, err := s.ingredientRepository.DeleteCaloriesEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCaloriesEntryNotFound
	}
	return nil
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	response := domain.IngredientResponse{
		ID:   ingredient.ID.String(),
		Name: ingredient.Name,
	}
	if ingredient.Category != nil {
		response.Category = *ingredient.Category
	}
	return response
}

func toCaloriesEntryResponse(entry *entities.IngredientCalories) domain.CaloriesEntryResponse {
	return domain.CaloriesEntryResponse{
		ID:            entry.ID.String(),
		IngredientID:  entry.IngredientID.String(),
		Calories:      entry.Calories,
		Quantity:      entry.Quantity,
		QuantityUnits: entry.QuantityUnits,
	}
}
