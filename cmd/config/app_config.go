package config

import (
	"Recipe-Book-Backend/internal/api/handlers"
	"Recipe-Book-Backend/internal/api/routes"
	"Recipe-Book-Backend/internal/middleware"
	"Recipe-Book-Backend/internal/utils"
	"Recipe-Book-Backend/pkg/calendar"
	"Recipe-Book-Backend/pkg/importer"
	"Recipe-Book-Backend/pkg/ingredient"
	"Recipe-Book-Backend/pkg/recipe"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TZ"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	calendarRepository := calendar.NewCalendarRepository(db)

	// Service
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository)
	calendarService := calendar.NewCalendarService(calendarRepository, recipeRepository)
	importerService := importer.NewImporterService(recipeRepository, ingredientRepository)

	// Handler
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	calendarHandler := handlers.NewCalendarHandler(calendarService, validator)
	importHandler := handlers.NewImportHandler(importerService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		CalendarHandler:   calendarHandler,
		ImportHandler:     importHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
