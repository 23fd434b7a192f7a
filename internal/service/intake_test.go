package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/internal/testhelpers"
)

func setupIntakeTest(t *testing.T) (*gorm.DB, *service.IntakeService, uuid.UUID) {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	require.NoError(t, database.SeedFoods(db))

	auth := service.NewAuthService(db, "test-secret")
	user, _, err := auth.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	catalog := service.NewCatalogService(db, nil)
	return db, service.NewIntakeService(db, catalog), user.ID
}

func TestAddEntryAndDailyTotal(t *testing.T) {
	_, svc, userID := setupIntakeTest(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	// apple is 52 kcal per unit; two units total 104
	entry, err := svc.AddEntry(ctx, userID, "Apple", 2, models.MealSnack, day)
	require.NoError(t, err)
	require.NotNil(t, entry.Food)
	assert.Equal(t, 104.0, entry.Calories())

	total, err := svc.DailyTotal(ctx, userID, day)
	require.NoError(t, err)
	assert.Equal(t, 104.0, total)

	// a second entry accumulates in the total
	_, err = svc.AddEntry(ctx, userID, "Banana", 1, models.MealBreakfast, day)
	require.NoError(t, err)

	total, err = svc.DailyTotal(ctx, userID, day)
	require.NoError(t, err)
	assert.Equal(t, 104.0+89.0, total)

	// other days are unaffected
	total, err = svc.DailyTotal(ctx, userID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAddEntryUnknownFood(t *testing.T) {
	_, svc, userID := setupIntakeTest(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddEntry(ctx, userID, "Unobtainium", 1, models.MealLunch, day)
	assert.ErrorIs(t, err, service.ErrUnknownFood)

	// the failed entry does not affect the daily total
	total, err := svc.DailyTotal(ctx, userID, day)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAddEntryValidation(t *testing.T) {
	_, svc, userID := setupIntakeTest(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddEntry(ctx, userID, "Apple", 0, models.MealLunch, day)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.AddEntry(ctx, userID, "Apple", -1, models.MealLunch, day)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.AddEntry(ctx, userID, "Apple", 1, "Brunch", day)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	future := time.Now().AddDate(0, 0, 2)
	_, err = svc.AddEntry(ctx, userID, "Apple", 1, models.MealLunch, future)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestEntriesForDay(t *testing.T) {
	_, svc, userID := setupIntakeTest(t)
	ctx := context.Background()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddEntry(ctx, userID, "Apple", 2, models.MealSnack, day)
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, userID, "Oatmeal", 3, models.MealBreakfast, day)
	require.NoError(t, err)

	entries, err := svc.EntriesForDay(ctx, userID, day)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.NotNil(t, e.Food)
		assert.Equal(t, service.DateOf(day), service.DateOf(e.Date))
	}
}

func TestDailyTotalEmptyDay(t *testing.T) {
	_, svc, userID := setupIntakeTest(t)

	total, err := svc.DailyTotal(context.Background(), userID, time.Now())
	require.NoError(t, err)
	assert.Zero(t, total)
}
