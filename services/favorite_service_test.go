package services

import (
	"context"
	"testing"

	"fitcal-backend/models"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")
	mealID := seedMeal(t, e, "Bowl")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")

	if err := fs.AddFavorite(ctx, KindMeal, mealID, "a@x.com"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := fs.AddFavorite(ctx, KindMeal, mealID, "a@x.com"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	u := userFavorites(t, e, "a@x.com")
	if len(u.FavoritedMeals) != 1 || u.FavoritedMeals[0] != mealID {
		t.Fatalf("expected favorites to contain %s exactly once, got %v", mealID, u.FavoritedMeals)
	}

	day := dayRoster(t, e, "2023-01-01")
	if len(day.Meals) != 1 || day.Meals[0] != mealID {
		t.Fatalf("expected day roster to contain %s exactly once, got %v", mealID, day.Meals)
	}
	if day.DayOfWeek != "Sunday" {
		t.Fatalf("expected Sunday label, got %q", day.DayOfWeek)
	}
}

func TestAddFavoriteUnknownUser(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	fs := NewFavoriteService(e)

	err := fs.AddFavorite(context.Background(), KindMeal, "some-meal", "nobody@x.com")
	if err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRemoveFavoriteAbsentIsNoop(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	seedUser(t, e, "a@x.com")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")

	if err := fs.RemoveFavorite(context.Background(), KindMeal, "never-added", "a@x.com"); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}

func TestRemoveFavoriteTargetsTodaysDay(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")
	mealID := seedMeal(t, e, "Bowl")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")
	if err := fs.AddFavorite(ctx, KindMeal, mealID, "a@x.com"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Removal a day later targets the current date's roster, so the
	// original day keeps the entry while the favorite set is cleared.
	fs.now = fixedClock("2023-01-02")
	if err := fs.RemoveFavorite(ctx, KindMeal, mealID, "a@x.com"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	u := userFavorites(t, e, "a@x.com")
	if len(u.FavoritedMeals) != 0 {
		t.Fatalf("expected empty favorites, got %v", u.FavoritedMeals)
	}
	day := dayRoster(t, e, "2023-01-01")
	if len(day.Meals) != 1 {
		t.Fatalf("expected 2023-01-01 roster untouched, got %v", day.Meals)
	}
}

func TestIsFavoriteRoundTrip(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")
	ds := NewDeleteService(e)

	id, err := fs.CreateFavoriteMeal(ctx, "a@x.com", &models.Meal{Calories: 500, Type: "Lunch"})
	if err != nil {
		t.Fatalf("create favorite meal: %v", err)
	}

	fav, err := fs.IsFavorite(ctx, KindMeal, id, "a@x.com")
	if err != nil || !fav {
		t.Fatalf("expected favorite after create, got %v %v", fav, err)
	}

	if err := ds.DeleteMeal(ctx, id, "a@x.com"); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	fav, err = fs.IsFavorite(ctx, KindMeal, id, "a@x.com")
	if err != nil {
		t.Fatalf("is-favorite after delete must not error: %v", err)
	}
	if fav {
		t.Fatal("expected not favorite after delete")
	}
}

func TestCreateFavoriteWorkoutInsertsExercisesFirst(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")

	id, err := fs.CreateFavoriteWorkout(ctx, "a@x.com", WorkoutInput{
		Name:         "Push Day",
		TotalMinutes: 45,
		Exercises: []models.Exercise{
			{Name: "Bench Press", Reps: 8, Sets: 4, BodyParts: "Chest, Triceps"},
			{Name: "Overhead Press", Reps: 10, Sets: 3, BodyParts: "Shoulders, Triceps"},
		},
	})
	if err != nil {
		t.Fatalf("create favorite workout: %v", err)
	}

	w, err := e.Workout(ctx, id)
	if err != nil {
		t.Fatalf("workout lookup: %v", err)
	}
	if len(w.Exercises) != 2 {
		t.Fatalf("expected 2 exercise refs, got %v", w.Exercises)
	}
	for _, exID := range w.Exercises {
		if _, err := e.Exercise(ctx, exID); err != nil {
			t.Fatalf("exercise %s must resolve: %v", exID, err)
		}
	}
	if w.BodyPartFocus != "Chest, Shoulders, Triceps" {
		t.Fatalf("expected derived focus, got %q", w.BodyPartFocus)
	}

	day := dayRoster(t, e, "2023-01-01")
	if len(day.Workouts) != 1 || day.Workouts[0] != id {
		t.Fatalf("expected workout on today's roster, got %v", day.Workouts)
	}
}
