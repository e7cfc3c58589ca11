package calendar

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/entities"
	"Recipe-Book-Backend/pkg/export"
	"Recipe-Book-Backend/pkg/measure"
	"Recipe-Book-Backend/pkg/recipe"
	"Recipe-Book-Backend/pkg/shopping"
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
)

const dayLayout = "2006-01-02"

type (
	CalendarService interface {
		GetWeek(ctx context.Context, day string) (domain.CalendarWeekResponse, error)
		ScheduleRecipe(ctx context.Context, req domain.ScheduleRecipeRequest) error
		ClearDay(ctx context.Context, day string) error
		GetShoppingList(ctx context.Context, start, end string) (domain.ShoppingListResponse, error)
		ExportMenu(ctx context.Context, day string) (export.Document, error)
		ExportShoppingList(ctx context.Context, start, end string) (export.Document, error)
	}

	calendarService struct {
		calendarRepository CalendarRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewCalendarService(calendarRepository CalendarRepository, recipeRepository recipe.RecipeRepository) CalendarService {
	return &calendarService{
		calendarRepository: calendarRepository,
		recipeRepository:   recipeRepository,
	}
}

func parseDay(s string) (time.Time, error) {
	day, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDay
	}
	return day, nil
}

// weekStart returns the Sunday on or before the given day.
func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func (s *calendarService) GetWeek(ctx context.Context, day string) (domain.CalendarWeekResponse, error) {
	anchor, err := parseDay(day)
	if err != nil {
		return domain.CalendarWeekResponse{}, err
	}

	start := weekStart(anchor)
	end := start.AddDate(0, 0, 6)

	entries, err := s.calendarRepository.GetEntriesInRange(ctx, start, end)
	if err != nil {
		return domain.CalendarWeekResponse{}, err
	}

	scheduled := make(map[string]*entities.CalendarEntry, len(entries))
	for _, entry := range entries {
		scheduled[entry.Day.Format(dayLayout)] = entry
	}

	week := domain.CalendarWeekResponse{
		WeekStart: start.Format(dayLayout),
		Days:      make([]domain.CalendarDayResponse, 0, 7),
	}
	for i := 0; i < 7; i++ {
		current := start.AddDate(0, 0, i)
		response := domain.CalendarDayResponse{
			Day:     current.Format(dayLayout),
			Weekday: current.Weekday().String(),
		}
		if entry, ok := scheduled[response.Day]; ok && entry.Recipe != nil {
			response.Recipe = &domain.RecipeHandleResponse{
				ID:   entry.Recipe.ID.String(),
				Name: entry.Recipe.Name,
			}
		}
		week.Days = append(week.Days, response)
	}
	return week, nil
}

func (s *calendarService) ScheduleRecipe(ctx context.Context, req domain.ScheduleRecipeRequest) error {
	day, err := parseDay(req.Day)
	if err != nil {
		return err
	}

	scheduledRecipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.calendarRepository.UpsertEntry(ctx, &entities.CalendarEntry{
		Day:      day,
		RecipeID: scheduledRecipe.ID,
	})
}

func (s *calendarService) ClearDay(ctx context.Context, day string) error {
	parsed, err := parseDay(day)
	if err != nil {
		return err
	}

	deleted, err := s.calendarRepository.DeleteEntry(ctx, parsed)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCalendarEntryNotFound
	}
	return nil
}

func (s *calendarService) GetShoppingList(ctx context.Context, start, end string) (domain.ShoppingListResponse, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	categories, err := s.aggregateRange(ctx, from, to)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	response := domain.ShoppingListResponse{
		Start:      from.Format(dayLayout),
		End:        to.Format(dayLayout),
		Categories: make([]domain.ShoppingListCategoryResponse, 0, len(categories)),
	}
	for _, category := range categories {
		group := domain.ShoppingListCategoryResponse{
			Category: category.name,
			Items:    make([]domain.ShoppingListLineResponse, 0, len(category.lines)),
		}
		for _, line := range category.lines {
			item := domain.ShoppingListLineResponse{
				IngredientID:     line.IngredientID.String(),
				Name:             line.Name,
				Quantity:         line.Quantity.Magnitude,
				QuantityUnits:    string(line.Quantity.Unit),
				ConversionFailed: line.Failed(),
			}
			for _, failure := range line.Failures {
				item.Failures = append(item.Failures, domain.ShoppingListFailureResponse{
					RecipeID:  failure.RecipeID.String(),
					FromUnits: string(failure.Err.From),
					ToUnits:   string(failure.Err.To),
				})
			}
			group.Items = append(group.Items, item)
		}
		response.Categories = append(response.Categories, group)
	}
	return response, nil
}

func (s *calendarService) ExportMenu(ctx context.Context, day string) (export.Document, error) {
	week, err := s.GetWeek(ctx, day)
	if err != nil {
		return export.Document{}, err
	}

	days := make([]export.MenuDay, 0, len(week.Days))
	for _, d := range week.Days {
		menuDay := export.MenuDay{Weekday: d.Weekday}
		if d.Recipe != nil {
			menuDay.Recipe = d.Recipe.Name
		}
		days = append(days, menuDay)
	}
	return export.Menu(week.WeekStart, days), nil
}

func (s *calendarService) ExportShoppingList(ctx context.Context, start, end string) (export.Document, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return export.Document{}, err
	}

	categories, err := s.aggregateRange(ctx, from, to)
	if err != nil {
		return export.Document{}, err
	}

	exported := make([]export.Category, 0, len(categories))
	for _, category := range categories {
		group := export.Category{Name: category.name}
		for _, line := range category.lines {
			group.Items = append(group.Items, export.Item{
				Text:    export.ItemText(line.Quantity.Magnitude, line.Quantity.Unit.Label(), line.Name),
				Flagged: line.Failed(),
			})
		}
		exported = append(exported, group)
	}
	return export.ShoppingList(from.Format(dayLayout), to.Format(dayLayout), exported), nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := parseDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidRange
	}
	return from, to, nil
}

type shoppingCategory struct {
	name  string
	lines []shopping.Line
}

// aggregateRange merges every scheduled ingredient requirement in the range
// and groups the result by ingredient category, uncategorized last.
func (s *calendarService) aggregateRange(ctx context.Context, from, to time.Time) ([]shoppingCategory, error) {
	rows, err := s.calendarRepository.GetScheduledUsages(ctx, from, to)
	if err != nil {
		return nil, err
	}

	usages := make([]shopping.Usage, 0, len(rows))
	for _, row := range rows {
		units, ok := measure.ParseUnit(row.QuantityUnits)
		if !ok {
			return nil, domain.ErrUnknownUnit
		}
		usage := shopping.Usage{
			RecipeID:     row.RecipeID,
			IngredientID: row.IngredientID,
			Name:         row.Name,
			Quantity:     measure.Quantity{Magnitude: row.Quantity, Unit: units},
		}
		if row.Category != nil {
			usage.Category = *row.Category
		}
		usages = append(usages, usage)
	}

	lines := shopping.Aggregate(usages)

	grouped := make(map[string][]shopping.Line)
	for _, line := range lines {
		grouped[line.Category] = append(grouped[line.Category], line)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := grouped[""]; ok {
		names = append(names, "")
	}

	categories := make([]shoppingCategory, 0, len(names))
	for _, name := range names {
		categories = append(categories, shoppingCategory{name: name, lines: grouped[name]})
	}
	return categories, nil
}
