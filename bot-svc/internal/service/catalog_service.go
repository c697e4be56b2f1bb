package service

import (
	"context"
	"fmt"

	"overcooked-bot/bot-svc/internal/domain"
)

// CatalogService reads the active catalog. An empty filtered set is reported
// as domain.ErrNotFound.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ActiveRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	if len(restaurants) == 0 {
		return nil, domain.ErrNotFound
	}
	return restaurants, nil
}

func (s *CatalogService) Categories(ctx context.Context, restaurantID int) ([]string, error) {
	categories, err := s.repo.ActiveCategories(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list categories of restaurant %d: %w", restaurantID, err)
	}
	if len(categories) == 0 {
		return nil, domain.ErrNotFound
	}
	return categories, nil
}

func (s *CatalogService) Foods(ctx context.Context, restaurantID int, category string) ([]domain.FoodSummary, error) {
	foods, err := s.repo.ActiveFoods(ctx, restaurantID, category)
	if err != nil {
		return nil, fmt.Errorf("list foods of restaurant %d: %w", restaurantID, err)
	}
	if len(foods) == 0 {
		return nil, domain.ErrNotFound
	}
	return foods, nil
}

func (s *CatalogService) Food(ctx context.Context, foodID int) (*domain.FoodDetail, error) {
	return s.repo.FoodDetail(ctx, foodID)
}

func (s *CatalogService) Hours(ctx context.Context, restaurantID int) (*domain.RestaurantHours, error) {
	return s.repo.RestaurantHours(ctx, restaurantID)
}
