package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/models"
)

// IntakeService records food consumption and answers per-day totals.
type IntakeService struct {
	db      *gorm.DB
	catalog ICatalogService
}

// Ensure IntakeService implements IIntakeService
var _ IIntakeService = (*IntakeService)(nil)

// NewIntakeService creates a new IntakeService instance
func NewIntakeService(db *gorm.DB, catalog ICatalogService) *IntakeService {
	return &IntakeService{db: db, catalog: catalog}
}

// AddEntry appends an intake record for the named food. The food must be
// cataloged, the quantity positive, the meal type known and the date not in
// the future.
func (s *IntakeService) AddEntry(ctx context.Context, userID uuid.UUID, foodName string, quantity float64, mealType string, date time.Time) (*models.IntakeEntry, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if !validMealType(mealType) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, mealType)
	}
	day := DateOf(date)
	if day.After(today()) {
		return nil, fmt.Errorf("%w: cannot log food for a future date", ErrInvalidInput)
	}

	food, err := s.catalog.GetFoodByName(ctx, foodName)
	if err != nil {
		return nil, err
	}

	entry := models.IntakeEntry{
		UserID:   userID,
		FoodID:   food.ID,
		Quantity: quantity,
		MealType: mealType,
		Date:     day,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, storageErr("add intake entry", err)
	}
	entry.Food = food
	return &entry, nil
}

// DailyTotal sums quantity x calories-per-unit over the user's entries for
// the given date. Returns 0 when there are none.
func (s *IntakeService) DailyTotal(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.IntakeEntry{}).
		Select("COALESCE(SUM(intake_entries.quantity * food_items.calories_per_unit), 0)").
		Joins("JOIN food_items ON food_items.id = intake_entries.food_id").
		Where("intake_entries.user_id = ? AND intake_entries.date = ?", userID, DateOf(date)).
		Scan(&total).Error
	if err != nil {
		return 0, storageErr("daily total", err)
	}
	return total, nil
}

// EntriesForDay lists the user's entries for the given date with foods
// preloaded, oldest first.
func (s *IntakeService) EntriesForDay(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.IntakeEntry, error) {
	var entries []models.IntakeEntry
	err := s.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND date = ?", userID, DateOf(date)).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, storageErr("entries for day", err)
	}
	return entries, nil
}

func validMealType(mealType string) bool {
	for _, m := range models.MealTypes {
		if m == mealType {
			return true
		}
	}
	return false
}
