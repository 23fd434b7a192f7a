package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightEntry tracks a user's weight over time. One entry per user per day.
type WeightEntry struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:uidx_weight_user_date" json:"user_id"`
	WeightKg     float64   `gorm:"not null" json:"weight_kg"`
	BMI          float64   `json:"bmi"`
	RecordedDate time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weight_user_date" json:"recorded_date"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (w *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
