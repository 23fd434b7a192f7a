package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/calc"
	"github.com/caltrack/caltrack/internal/models"
)

// WeightService tracks weight over time and keeps the profile's current
// weight in sync with the latest measurement.
type WeightService struct {
	db *gorm.DB
}

// Ensure WeightService implements IWeightService
var _ IWeightService = (*WeightService)(nil)

// NewWeightService creates a new WeightService instance
func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

// RecordWeight upserts the user's weight for the given date (one entry per
// day) and updates the profile weight. The stored BMI uses the profile
// height.
func (s *WeightService) RecordWeight(ctx context.Context, userID uuid.UUID, weightKg float64, date time.Time) (*models.WeightEntry, error) {
	if weightKg < 2 || weightKg > 500 {
		return nil, fmt.Errorf("%w: weight must be between 2 and 500 kg", ErrInvalidInput)
	}
	day := DateOf(date)
	if day.After(today()) {
		return nil, fmt.Errorf("%w: cannot record weight for a future date", ErrInvalidInput)
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("record weight: lookup user", err)
	}

	bmi, err := calc.BMIFromCm(weightKg, user.HeightCm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var entry models.WeightEntry
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND recorded_date = ?", userID, day).
		First(&entry).Error
	switch {
	case err == nil:
		entry.WeightKg = weightKg
		entry.BMI = bmi
		if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
			return nil, storageErr("record weight: update entry", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.WeightEntry{
			UserID:       userID,
			WeightKg:     weightKg,
			BMI:          bmi,
			RecordedDate: day,
		}
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, storageErr("record weight: create entry", err)
		}
	default:
		return nil, storageErr("record weight: lookup entry", err)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("weight_kg", weightKg).Error; err != nil {
		return nil, storageErr("record weight: update profile", err)
	}

	return &entry, nil
}

// History returns the user's most recent weight entries, newest first.
func (s *WeightService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.WeightEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_date DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, storageErr("weight history", err)
	}
	return entries, nil
}
