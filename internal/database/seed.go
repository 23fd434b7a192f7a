package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/pkg/logger"
)

type seedFood struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	category string
}

// Values are per 100g of food.
var sampleFoods = []seedFood{
	{"Apple", 52, 0.3, 14, 0.2, "Fruit"},
	{"Banana", 89, 1.1, 23, 0.3, "Fruit"},
	{"Orange", 47, 0.9, 12, 0.1, "Fruit"},
	{"Mango", 60, 0.8, 15, 0.4, "Fruit"},
	{"Grapes", 69, 0.7, 18, 0.2, "Fruit"},

	{"Broccoli", 34, 2.8, 7, 0.4, "Vegetable"},
	{"Potato", 77, 2, 17, 0.1, "Vegetable"},
	{"Carrot", 41, 0.9, 10, 0.2, "Vegetable"},
	{"Spinach", 23, 2.9, 3.6, 0.4, "Vegetable"},
	{"Tomato", 18, 0.9, 3.9, 0.2, "Vegetable"},

	{"Chicken Breast", 165, 31, 0, 3.6, "Protein"},
	{"Egg", 155, 13, 1.1, 11, "Protein"},
	{"Salmon", 208, 20, 0, 13, "Protein"},
	{"Tuna", 132, 28, 0, 1.3, "Protein"},
	{"Tofu", 76, 8, 1.9, 4.8, "Protein"},

	{"Brown Rice", 111, 2.6, 23, 0.9, "Grains"},
	{"Whole Wheat Bread", 265, 13, 51, 4.4, "Grains"},
	{"Oatmeal", 68, 2.4, 12, 1.4, "Grains"},
	{"Quinoa", 120, 4.4, 21, 1.9, "Grains"},
	{"Pasta", 131, 5, 25, 1.1, "Grains"},

	{"Milk", 42, 3.4, 5, 1, "Dairy"},
	{"Yogurt", 59, 10, 3.6, 0.4, "Dairy"},
	{"Cheese", 402, 25, 1.3, 33, "Dairy"},
	{"Greek Yogurt", 59, 10, 3.6, 0.4, "Dairy"},

	{"Almonds", 579, 21, 22, 50, "Nuts"},
	{"Peanuts", 567, 26, 16, 49, "Nuts"},
	{"Walnuts", 654, 15, 14, 65, "Nuts"},
	{"Chia Seeds", 486, 17, 42, 31, "Seeds"},
}

// SeedFoods inserts the sample food catalog when the table is empty.
func SeedFoods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count food items: %w", err)
	}
	if count > 0 {
		return nil
	}

	foods := make([]models.FoodItem, 0, len(sampleFoods))
	for _, f := range sampleFoods {
		foods = append(foods, models.FoodItem{
			Name:            f.name,
			CaloriesPerUnit: f.calories,
			Unit:            "100g",
			ProteinG:        f.protein,
			CarbsG:          f.carbs,
			FatG:            f.fat,
			Category:        f.category,
		})
	}
	if err := db.Create(&foods).Error; err != nil {
		return fmt.Errorf("failed to seed food items: %w", err)
	}

	log := logger.Get()
	log.Info().Int("count", len(foods)).Msg("seeded sample foods")
	return nil
}
