package services

import (
	"context"
	"log"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

// fetchMeals resolves meal IDs to documents. IDs that no longer resolve are
// skipped and logged, never an error: a stale reference from an incomplete
// cascade must not break the whole listing.
func fetchMeals(ctx context.Context, e *store.Entities, ids []string) []models.Meal {
	meals := make([]models.Meal, 0, len(ids))
	for _, id := range ids {
		m, err := e.Meal(ctx, id)
		if err != nil {
			log.Printf("skipping unresolvable meal %s: %v", id, err)
			continue
		}
		meals = append(meals, *m)
	}
	return meals
}

// fetchWorkoutDetails resolves workout IDs and denormalizes each workout's
// exercises one level deep, with the same skip-and-log policy.
func fetchWorkoutDetails(ctx context.Context, e *store.Entities, ids []string) []models.WorkoutDetails {
	workouts := make([]models.WorkoutDetails, 0, len(ids))
	for _, id := range ids {
		w, err := e.Workout(ctx, id)
		if err != nil {
			log.Printf("skipping unresolvable workout %s: %v", id, err)
			continue
		}
		workouts = append(workouts, workoutDetails(ctx, e, w))
	}
	return workouts
}

func workoutDetails(ctx context.Context, e *store.Entities, w *models.Workout) models.WorkoutDetails {
	exercises := make([]models.Exercise, 0, len(w.Exercises))
	for _, exID := range w.Exercises {
		ex, err := e.Exercise(ctx, exID)
		if err != nil {
			log.Printf("skipping unresolvable exercise %s of workout %s: %v", exID, w.ID.Hex(), err)
			continue
		}
		exercises = append(exercises, *ex)
	}
	return models.WorkoutDetails{
		ID:            w.ID.Hex(),
		Name:          w.Name,
		TotalMinutes:  w.TotalMinutes,
		BodyPartFocus: w.BodyPartFocus,
		Exercises:     exercises,
	}
}
