package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// MealTypes lists the supported meal types in menu order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IntakeEntry is a single logged food-consumption event. Quantity is the
// number of food units consumed (e.g. 1.5 units of a per-100g food is 150g).
type IntakeEntry struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_intake_user_date" json:"user_id"`
	FoodID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"food_id"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	MealType  string    `gorm:"size:20;not null" json:"meal_type"`
	Date      time.Time `gorm:"type:date;not null;index:idx_intake_user_date" json:"date"`

	User *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Food *FoodItem `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT" json:"food,omitempty"`
}

func (e *IntakeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Calories returns the calories contributed by this entry. The food must
// be preloaded; entries without one contribute nothing.
func (e *IntakeEntry) Calories() float64 {
	if e.Food == nil {
		return 0
	}
	return e.Quantity * e.Food.CaloriesPerUnit
}
