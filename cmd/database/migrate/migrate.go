package migration

import (
	"FoodShare-Backend/entities"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultCategories seed the store on first run so the app never boots
// with an empty category set.
var defaultCategories = map[string]string{
	"Meals":   "fork.knife",
	"Bakery":  "birthday.cake",
	"Produce": "leaf",
	"Dairy":   "drop",
	"Pantry":  "archivebox",
	"Drinks":  "cup.and.saucer",
}

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Listing{}); err != nil {
		log.Fatalf("Error migrating listing database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PickupSlot{}); err != nil {
		log.Fatalf("Error migrating pickup slot database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Rating{}); err != nil {
		log.Fatalf("Error migrating rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedListing{}); err != nil {
		log.Fatalf("Error migrating saved listing database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reservation{}); err != nil {
		log.Fatalf("Error migrating reservation database: %v", err)
		return err
	}

	if err := seedCategories(db); err != nil {
		log.Fatalf("Error seeding categories: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for name, icon := range defaultCategories {
		cat := &entities.Category{
			ID:   uuid.New(),
			Name: name,
			Icon: icon,
		}
		if err := db.Create(cat).Error; err != nil {
			return err
		}
	}
	return nil
}
