package services

import (
	"context"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

// WorkoutService covers workout lookup and editing.
type WorkoutService struct {
	store *store.Entities
}

func NewWorkoutService(e *store.Entities) *WorkoutService {
	return &WorkoutService{store: e}
}

// WorkoutDetails fetches one workout with its exercises denormalized.
func (s *WorkoutService) WorkoutDetails(ctx context.Context, id string) (*models.WorkoutDetails, error) {
	workout, err := s.store.Workout(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	details := workoutDetails(ctx, s.store, workout)
	return &details, nil
}

// EditWorkout updates a workout's name and duration, and rewrites its
// exercises by position: the i-th payload entry updates the i-th existing
// exercise ID. Payload entries beyond the existing exercise count are
// dropped, not created.
func (s *WorkoutService) EditWorkout(ctx context.Context, id string, input WorkoutInput) error {
	workout, err := s.store.Workout(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return ErrWorkoutNotFound
		}
		return err
	}

	fields := store.Doc{
		"name":          input.Name,
		"total_minutes": input.TotalMinutes,
	}
	if input.BodyPartFocus != "" {
		fields["body_part_focus"] = input.BodyPartFocus
	}
	if err := s.store.Update(ctx, store.Workouts, id, fields); err != nil {
		return err
	}

	for i, ex := range input.Exercises {
		if i >= len(workout.Exercises) {
			break
		}
		err := s.store.Update(ctx, store.Exercises, workout.Exercises[i], store.Doc{
			"name":                ex.Name,
			"description":         ex.Description,
			"reps":                ex.Reps,
			"sets":                ex.Sets,
			"weight":              ex.Weight,
			"avg_calories_burned": ex.AvgCaloriesBurned,
			"body_parts":          ex.BodyParts,
		})
		if err != nil {
			if err == store.ErrNotFound {
				return ErrExerciseNotFound
			}
			return err
		}
	}
	return nil
}
