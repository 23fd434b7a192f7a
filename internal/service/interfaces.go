package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// ICatalogService defines the interface for food catalog operations
type ICatalogService interface {
	AddFood(ctx context.Context, food *models.FoodItem) (*models.FoodItem, error)
	GetFoodByName(ctx context.Context, name string) (*models.FoodItem, error)
	SearchFoods(ctx context.Context, term string, limit int) ([]models.FoodItem, error)
	ListFoods(ctx context.Context) ([]models.FoodItem, error)
}

// IIntakeService defines the interface for intake log operations
type IIntakeService interface {
	AddEntry(ctx context.Context, userID uuid.UUID, foodName string, quantity float64, mealType string, date time.Time) (*models.IntakeEntry, error)
	DailyTotal(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error)
	EntriesForDay(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.IntakeEntry, error)
}

// IWeightService defines the interface for weight tracking operations
type IWeightService interface {
	RecordWeight(ctx context.Context, userID uuid.UUID, weightKg float64, date time.Time) (*models.WeightEntry, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightEntry, error)
}

// IReportService defines the interface for report generation
type IReportService interface {
	DailyReport(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyReport, error)
}
