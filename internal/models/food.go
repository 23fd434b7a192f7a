package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodItem is catalog reference data. CaloriesPerUnit and the macro
// columns are expressed per Unit (grams of food, "100g" by default).
type FoodItem struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Name            string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CaloriesPerUnit float64   `gorm:"not null" json:"calories_per_unit"`
	Unit            string    `gorm:"size:20;not null;default:'100g'" json:"unit"`
	ProteinG        float64   `json:"protein_g"`
	CarbsG          float64   `json:"carbs_g"`
	FatG            float64   `json:"fat_g"`
	Category        string    `gorm:"size:50;index" json:"category"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
