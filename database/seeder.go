package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

// Seed mengisi data restoran dan menu awal. Hanya jalan sekali: kalau tabel
// restaurants sudah ada isinya, seeding dilewati.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []models.Restaurant{
		{Name: "Spicy House", Address: "Main Street 1"},
		{Name: "Pizza Point", Address: "Market Road 5"},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{RestaurantID: restaurants[0].ID, Name: "Chicken Biryani", Price: decimal.NewFromInt(150)},
		{RestaurantID: restaurants[0].ID, Name: "Paneer Butter Masala", Price: decimal.NewFromInt(180)},
		{RestaurantID: restaurants[1].ID, Name: "Margherita Pizza", Price: decimal.NewFromInt(200)},
		{RestaurantID: restaurants[1].ID, Name: "Veggie Pizza", Price: decimal.NewFromInt(220)},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded %d restaurants and %d menu items", len(restaurants), len(items))
	return nil
}
