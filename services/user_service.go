package services

import (
	"context"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

// UserService covers registration, profile lookup/upsert and the per-user
// meal/workout listings.
type UserService struct {
	store *store.Entities
}

func NewUserService(e *store.Entities) *UserService {
	return &UserService{store: e}
}

// AddUser registers a user with empty favorite sets.
func (s *UserService) AddUser(ctx context.Context, user *models.User) (string, error) {
	if user.FavoritedMeals == nil {
		user.FavoritedMeals = []string{}
	}
	if user.FavoritedWorkouts == nil {
		user.FavoritedWorkouts = []string{}
	}
	return s.store.InsertUser(ctx, user)
}

// Profile resolves a user by email.
func (s *UserService) Profile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SaveProfile upserts profile fields keyed by email: an existing user is
// patched with the given fields, an unknown email creates a new document.
func (s *UserService) SaveProfile(ctx context.Context, email string, fields map[string]any) error {
	user, err := s.store.UserByEmail(ctx, email)
	if err == store.ErrNotFound {
		_, err = s.store.Insert(ctx, store.Users, store.Doc(fields))
		return err
	}
	if err != nil {
		return err
	}
	return s.store.Update(ctx, store.Users, user.ID.Hex(), store.Doc(fields))
}

// UserMeals lists the user's owned (non-favorite) meals.
func (s *UserService) UserMeals(ctx context.Context, email string) ([]models.Meal, error) {
	user, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	return fetchMeals(ctx, s.store, user.Meals), nil
}

// FavoriteMeals lists the user's favorited meals, IDs annotated.
func (s *UserService) FavoriteMeals(ctx context.Context, email string) ([]models.Meal, error) {
	user, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	return fetchMeals(ctx, s.store, user.FavoritedMeals), nil
}

// FavoriteWorkouts lists the user's favorited workouts with exercises
// denormalized.
func (s *UserService) FavoriteWorkouts(ctx context.Context, email string) ([]models.WorkoutDetails, error) {
	user, err := s.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	return fetchWorkoutDetails(ctx, s.store, user.FavoritedWorkouts), nil
}
