package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/calc"
	"github.com/caltrack/caltrack/internal/models"
)

// DailyReport is the aggregate view of one user-day.
type DailyReport struct {
	Date          time.Time            `json:"date"`
	TotalCalories float64              `json:"total_calories"`
	TotalProtein  float64              `json:"total_protein_g"`
	TotalCarbs    float64              `json:"total_carbs_g"`
	TotalFat      float64              `json:"total_fat_g"`
	BMI           float64              `json:"bmi"`
	BMICategory   string               `json:"bmi_category"`
	DailyGoal     int                  `json:"daily_calorie_goal"`
	Remaining     float64              `json:"remaining_calories"`
	Entries       []models.IntakeEntry `json:"entries"`
}

// ReportService aggregates intake entries into daily reports. Read-only.
type ReportService struct {
	db     *gorm.DB
	intake IIntakeService
}

// Ensure ReportService implements IReportService
var _ IReportService = (*ReportService)(nil)

// NewReportService creates a new ReportService instance
func NewReportService(db *gorm.DB, intake IIntakeService) *ReportService {
	return &ReportService{db: db, intake: intake}
}

// DailyReport aggregates the user's intake for a date together with the
// profile's BMI category and calorie goal.
func (s *ReportService) DailyReport(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyReport, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("daily report: lookup user", err)
	}

	entries, err := s.intake.EntriesForDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	report := DailyReport{
		Date:      DateOf(date),
		DailyGoal: user.DailyCalorieGoal,
		Entries:   entries,
	}
	for _, e := range entries {
		if e.Food == nil {
			continue
		}
		report.TotalCalories += e.Quantity * e.Food.CaloriesPerUnit
		report.TotalProtein += e.Quantity * e.Food.ProteinG
		report.TotalCarbs += e.Quantity * e.Food.CarbsG
		report.TotalFat += e.Quantity * e.Food.FatG
	}
	report.Remaining = float64(report.DailyGoal) - report.TotalCalories

	if bmi, err := calc.BMIFromCm(user.WeightKg, user.HeightCm); err == nil {
		report.BMI = bmi
		report.BMICategory = calc.ClassifyBMI(bmi)
	}

	return &report, nil
}
