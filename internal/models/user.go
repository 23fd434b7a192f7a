package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	ActivitySedentary  = "Sedentary"
	ActivityLight      = "Light"
	ActivityModerate   = "Moderate"
	ActivityActive     = "Active"
	ActivityVeryActive = "Very Active"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// ActivityLevels lists the supported activity levels in menu order.
var ActivityLevels = []string{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

type User struct {
	ID               uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Username         string         `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email            string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash     string         `gorm:"not null" json:"-"`
	Age              int            `gorm:"not null" json:"age"`
	Gender           string         `gorm:"size:10;not null" json:"gender"`
	HeightCm         float64        `gorm:"not null" json:"height_cm"`
	WeightKg         float64        `gorm:"not null" json:"weight_kg"`
	ActivityLevel    string         `gorm:"size:20;not null;default:'Sedentary'" json:"activity_level"`
	GoalType         string         `gorm:"size:10;not null;default:'maintain'" json:"goal_type"`
	GoalWeightKg     float64        `json:"goal_weight_kg"`
	DailyCalorieGoal int            `json:"daily_calorie_goal"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
