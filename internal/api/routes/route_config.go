package routes

import (
	"Recipe-Book-Backend/internal/api/handlers"
	"Recipe-Book-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	CalendarHandler   handlers.CalendarHandler
	ImportHandler     handlers.ImportHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Ingredients()
	c.Calendar()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	categories := c.App.Group("/api/v1/categories")
	{
		categories.Post("", c.RecipeHandler.AddCategory)
		categories.Get("", c.RecipeHandler.GetCategories)
		categories.Put("/:id", c.RecipeHandler.UpdateCategory)
		categories.Delete("/:id", c.RecipeHandler.DeleteCategory)
	}

	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Post("", c.RecipeHandler.AddRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("/import", c.ImportHandler.ImportArchive)
		recipes.Put("/ingredients/:usage_id", c.RecipeHandler.UpdateRecipeIngredient)
		recipes.Delete("/ingredients/:usage_id", c.RecipeHandler.DeleteRecipeIngredient)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/ingredients", c.RecipeHandler.AddRecipeIngredient)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Post("", c.IngredientHandler.AddIngredient)
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/categories", c.IngredientHandler.GetIngredientCategories)
		ingredients.Post("/replace", c.IngredientHandler.ReplaceIngredient)
		ingredients.Delete("/calories/:entry_id", c.IngredientHandler.DeleteCaloriesEntry)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
		ingredients.Post("/:id/calories", c.IngredientHandler.AddCaloriesEntry)
		ingredients.Get("/:id/calories", c.IngredientHandler.GetCaloriesEntries)
	}
}

func (c *Config) Calendar() {
	calendar := c.App.Group("/api/v1/calendar")
	{
		calendar.Get("/week", c.CalendarHandler.GetWeek)
		calendar.Post("/schedule", c.CalendarHandler.ScheduleRecipe)
		calendar.Get("/shopping-list", c.CalendarHandler.GetShoppingList)
		calendar.Get("/export/menu", c.CalendarHandler.ExportMenu)
		calendar.Get("/export/shopping-list", c.CalendarHandler.ExportShoppingList)
		calendar.Delete("/:day", c.CalendarHandler.ClearDay)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
