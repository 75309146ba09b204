package services

import (
	"context"
	"testing"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

func TestDeleteWorkoutCascadesToExercises(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")
	workoutID, err := fs.CreateFavoriteWorkout(ctx, "a@x.com", WorkoutInput{
		Name: "Legs",
		Exercises: []models.Exercise{
			{Name: "Squat", BodyParts: "Quads"},
			{Name: "Deadlift", BodyParts: "Hamstrings"},
			{Name: "Lunge", BodyParts: "Quads"},
		},
	})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	w, _ := e.Workout(ctx, workoutID)
	exerciseIDs := w.Exercises

	ds := NewDeleteService(e)
	if err := ds.DeleteWorkout(ctx, workoutID, "a@x.com"); err != nil {
		t.Fatalf("delete workout: %v", err)
	}

	if _, err := e.Workout(ctx, workoutID); err != store.ErrNotFound {
		t.Fatalf("workout must be gone, got %v", err)
	}
	for _, exID := range exerciseIDs {
		if _, err := e.Exercise(ctx, exID); err != store.ErrNotFound {
			t.Fatalf("exercise %s must be gone, got %v", exID, err)
		}
	}

	u := userFavorites(t, e, "a@x.com")
	if len(u.FavoritedWorkouts) != 0 {
		t.Fatalf("expected favorites cleared, got %v", u.FavoritedWorkouts)
	}
	day := dayRoster(t, e, "2023-01-01")
	if len(day.Workouts) != 0 {
		t.Fatalf("expected day roster cleared, got %v", day.Workouts)
	}
}

func TestDeleteMealMissingAbortsBeforeCleanup(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	userID := seedUser(t, e, "a@x.com")

	// A stale favorite pointing at a meal that no longer exists.
	if err := e.ArrayAdd(ctx, store.Users, userID, "favorited_meals", "ghost"); err != nil {
		t.Fatalf("seed stale favorite: %v", err)
	}

	ds := NewDeleteService(e)
	if err := ds.DeleteMeal(ctx, "ghost", "a@x.com"); err != ErrMealNotFound {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}

	// Fail-fast: the stale reference must not have been cleaned up.
	u := userFavorites(t, e, "a@x.com")
	if len(u.FavoritedMeals) != 1 {
		t.Fatalf("expected favorites untouched on abort, got %v", u.FavoritedMeals)
	}
}

func TestDeleteMealClearsEveryReference(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")
	mealID := seedMeal(t, e, "Bowl")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")
	if err := fs.AddFavorite(ctx, KindMeal, mealID, "a@x.com"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	// The same meal shows up on a second day as well.
	day2, _, err := e.FindOrCreateDay(ctx, "2023-01-02")
	if err != nil {
		t.Fatalf("create second day: %v", err)
	}
	if err := e.ArrayAdd(ctx, store.Days, day2.ID.Hex(), "meals", mealID); err != nil {
		t.Fatalf("seed second roster: %v", err)
	}

	ds := NewDeleteService(e)
	if err := ds.DeleteMeal(ctx, mealID, "a@x.com"); err != nil {
		t.Fatalf("delete meal: %v", err)
	}

	if _, err := e.Meal(ctx, mealID); err != store.ErrNotFound {
		t.Fatalf("meal must be gone, got %v", err)
	}
	for _, date := range []string{"2023-01-01", "2023-01-02"} {
		if day := dayRoster(t, e, date); len(day.Meals) != 0 {
			t.Fatalf("expected %s roster cleared, got %v", date, day.Meals)
		}
	}
	if u := userFavorites(t, e, "a@x.com"); len(u.FavoritedMeals) != 0 {
		t.Fatalf("expected favorites cleared, got %v", u.FavoritedMeals)
	}
}

func TestUnfavoriteAndDelete(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")
	mealID, err := fs.CreateFavoriteMeal(ctx, "a@x.com", &models.Meal{Type: "Dinner"})
	if err != nil {
		t.Fatalf("create favorite meal: %v", err)
	}

	ds := NewDeleteService(e)
	if err := ds.UnfavoriteAndDelete(ctx, KindMeal, mealID, "a@x.com"); err != nil {
		t.Fatalf("unfavorite and delete: %v", err)
	}

	if _, err := e.Meal(ctx, mealID); err != store.ErrNotFound {
		t.Fatalf("meal must be gone, got %v", err)
	}
	if u := userFavorites(t, e, "a@x.com"); len(u.FavoritedMeals) != 0 {
		t.Fatalf("expected favorites cleared, got %v", u.FavoritedMeals)
	}

	// Unknown caller is a user error before anything is touched.
	if err := ds.UnfavoriteAndDelete(ctx, KindMeal, mealID, "nobody@x.com"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
