package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/models"
)

const (
	foodCacheKeyPrefix = "caltrack:food:"
	foodCacheTTL       = time.Hour
)

// CatalogService manages the food catalog. The Redis client is optional;
// when nil, name lookups always hit the database.
type CatalogService struct {
	db    *gorm.DB
	cache *redis.Client
}

// Ensure CatalogService implements ICatalogService
var _ ICatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB, cache *redis.Client) *CatalogService {
	return &CatalogService{db: db, cache: cache}
}

// AddFood adds a food item to the catalog. Names are unique.
func (s *CatalogService) AddFood(ctx context.Context, food *models.FoodItem) (*models.FoodItem, error) {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return nil, fmt.Errorf("%w: food name must not be empty", ErrInvalidInput)
	}
	if food.CaloriesPerUnit < 0 {
		return nil, fmt.Errorf("%w: calories must not be negative", ErrInvalidInput)
	}
	if food.Unit == "" {
		food.Unit = "100g"
	}

	var existing models.FoodItem
	err := s.db.WithContext(ctx).Where("name = ?", food.Name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: food %q already cataloged", ErrInvalidInput, food.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr("add food: lookup", err)
	}

	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, storageErr("add food", err)
	}
	s.invalidate(ctx, food.Name)
	return food, nil
}

// GetFoodByName retrieves a food item by exact name, consulting the cache
// first when one is configured.
func (s *CatalogService) GetFoodByName(ctx context.Context, name string) (*models.FoodItem, error) {
	name = strings.TrimSpace(name)
	if food, ok := s.cached(ctx, name); ok {
		return food, nil
	}

	var food models.FoodItem
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFood, name)
		}
		return nil, storageErr("get food", err)
	}

	s.store(ctx, &food)
	return &food, nil
}

// SearchFoods returns up to limit foods whose name or category matches the
// term, case-insensitively. An empty term lists from the top of the catalog.
func (s *CatalogService) SearchFoods(ctx context.Context, term string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + strings.TrimSpace(term) + "%"

	var foods []models.FoodItem
	q := s.db.WithContext(ctx).Order("name").Limit(limit)
	if s.db.Dialector.Name() == "postgres" {
		q = q.Where("name ILIKE ? OR category ILIKE ?", pattern, pattern)
	} else {
		// sqlite LIKE is case-insensitive for ASCII already
		q = q.Where("name LIKE ? OR category LIKE ?", pattern, pattern)
	}
	if err := q.Find(&foods).Error; err != nil {
		return nil, storageErr("search foods", err)
	}
	return foods, nil
}

// ListFoods returns the whole catalog ordered by category then name.
func (s *CatalogService) ListFoods(ctx context.Context) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := s.db.WithContext(ctx).Order("category, name").Find(&foods).Error; err != nil {
		return nil, storageErr("list foods", err)
	}
	return foods, nil
}

func (s *CatalogService) cached(ctx context.Context, name string) (*models.FoodItem, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, foodCacheKeyPrefix+strings.ToLower(name)).Bytes()
	if err != nil {
		return nil, false
	}
	var food models.FoodItem
	if err := json.Unmarshal(data, &food); err != nil {
		return nil, false
	}
	return &food, true
}

func (s *CatalogService) store(ctx context.Context, food *models.FoodItem) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(food)
	if err != nil {
		return
	}
	// Cache failures are invisible to callers; the database stays canonical.
	s.cache.Set(ctx, foodCacheKeyPrefix+strings.ToLower(food.Name), data, foodCacheTTL)
}

func (s *CatalogService) invalidate(ctx context.Context, name string) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, foodCacheKeyPrefix+strings.ToLower(name))
}
