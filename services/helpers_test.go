package services

import (
	"context"
	"testing"
	"time"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

func newTestEntities() *store.Entities {
	return store.NewEntities(store.NewMemory())
}

func seedUser(t *testing.T, e *store.Entities, email string) string {
	t.Helper()
	id, err := e.InsertUser(context.Background(), &models.User{
		Email:             email,
		Name:              "Test User",
		FavoritedMeals:    []string{},
		FavoritedWorkouts: []string{},
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return id
}

func seedMeal(t *testing.T, e *store.Entities, name string) string {
	t.Helper()
	id, err := e.InsertMeal(context.Background(), &models.Meal{
		Name:        name,
		Calories:    500,
		Ingredients: []string{"rice"},
		Type:        "Lunch",
	})
	if err != nil {
		t.Fatalf("seed meal %s: %v", name, err)
	}
	return id
}

// fixedClock pins a FavoriteService to a date so "today" is deterministic.
func fixedClock(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t }
}

func userFavorites(t *testing.T, e *store.Entities, email string) *models.User {
	t.Helper()
	u, err := e.UserByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("lookup user %s: %v", email, err)
	}
	return u
}

func dayRoster(t *testing.T, e *store.Entities, date string) *models.Day {
	t.Helper()
	d, err := e.DayByDate(context.Background(), date)
	if err != nil {
		t.Fatalf("lookup day %s: %v", date, err)
	}
	return d
}
