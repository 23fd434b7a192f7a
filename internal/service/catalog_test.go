package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/internal/testhelpers"
)

func TestAddAndGetFood(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewCatalogService(db, nil)
	ctx := context.Background()

	food, err := svc.AddFood(ctx, &models.FoodItem{
		Name:            "Apple",
		CaloriesPerUnit: 52,
		ProteinG:        0.3,
		CarbsG:          14,
		FatG:            0.2,
		Category:        "Fruit",
	})
	require.NoError(t, err)
	assert.Equal(t, "100g", food.Unit)

	got, err := svc.GetFoodByName(ctx, "Apple")
	require.NoError(t, err)
	assert.Equal(t, food.ID, got.ID)
	assert.Equal(t, 52.0, got.CaloriesPerUnit)
}

func TestGetFoodUnknown(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewCatalogService(db, nil)

	_, err := svc.GetFoodByName(context.Background(), "Unobtainium")
	assert.ErrorIs(t, err, service.ErrUnknownFood)
	assert.True(t, service.IsNotFoundErr(err))
}

func TestAddFoodRejectsDuplicatesAndBadInput(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewCatalogService(db, nil)
	ctx := context.Background()

	_, err := svc.AddFood(ctx, &models.FoodItem{Name: "Apple", CaloriesPerUnit: 52})
	require.NoError(t, err)

	_, err = svc.AddFood(ctx, &models.FoodItem{Name: "Apple", CaloriesPerUnit: 60})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.AddFood(ctx, &models.FoodItem{Name: "   ", CaloriesPerUnit: 10})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.AddFood(ctx, &models.FoodItem{Name: "Antifood", CaloriesPerUnit: -5})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestSearchFoods(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	require.NoError(t, database.SeedFoods(db))
	svc := service.NewCatalogService(db, nil)
	ctx := context.Background()

	foods, err := svc.SearchFoods(ctx, "apple", 10)
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	assert.Equal(t, "Apple", foods[0].Name)

	// category matches too
	foods, err = svc.SearchFoods(ctx, "Fruit", 10)
	require.NoError(t, err)
	assert.Len(t, foods, 5)

	// limit respected
	foods, err = svc.SearchFoods(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, foods, 10)
}

func TestListFoods(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	require.NoError(t, database.SeedFoods(db))
	svc := service.NewCatalogService(db, nil)

	foods, err := svc.ListFoods(context.Background())
	require.NoError(t, err)
	assert.Len(t, foods, 28)
}

func TestSeedFoodsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	require.NoError(t, database.SeedFoods(db))
	require.NoError(t, database.SeedFoods(db))

	var count int64
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&count).Error)
	assert.EqualValues(t, 28, count)
}
