package services

import (
	"context"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

// MealService is the thin lookup layer over meal documents; everything that
// mutates meals lives in the favorite and delete services.
type MealService struct {
	store *store.Entities
}

func NewMealService(e *store.Entities) *MealService {
	return &MealService{store: e}
}

// MealDetails fetches one meal by ID.
func (s *MealService) MealDetails(ctx context.Context, id string) (*models.Meal, error) {
	meal, err := s.store.Meal(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

// SampleMeals returns up to limit meals for browsing.
func (s *MealService) SampleMeals(ctx context.Context, limit int64) ([]models.Meal, error) {
	return s.store.MealsList(ctx, limit)
}
