package migration

import (
	"Recipe-Book-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.RecipeCategory{}); err != nil {
		log.Fatalf("Error migrating recipe category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.IngredientUsage{}); err != nil {
		log.Fatalf("Error migrating ingredient usage database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.IngredientCalories{}); err != nil {
		log.Fatalf("Error migrating ingredient calories database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CalendarEntry{}); err != nil {
		log.Fatalf("Error migrating calendar database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
