package services

import (
	"context"
	"log"

	"fitcal-backend/store"
)

// DeleteService removes meals and workouts together with every record that
// references them: Day rosters, user favorite sets, and (for workouts) the
// owned exercises. The primary entity is checked first and a missing one
// aborts the whole operation before any reference is touched. Cleanup steps
// after that are best-effort: a reference that fails to clear is logged and
// the cascade continues.
type DeleteService struct {
	store *store.Entities
}

func NewDeleteService(e *store.Entities) *DeleteService {
	return &DeleteService{store: e}
}

// DeleteMeal cascades the deletion of a meal. email is optional; when given,
// the meal is also removed from that user's favorite set.
func (s *DeleteService) DeleteMeal(ctx context.Context, mealID, email string) error {
	if _, err := s.store.Meal(ctx, mealID); err != nil {
		if err == store.ErrNotFound {
			return ErrMealNotFound
		}
		return err
	}

	s.purgeReferences(ctx, KindMeal, mealID, email)

	if err := s.store.Delete(ctx, store.Meals, mealID); err != nil && err != store.ErrNotFound {
		return err
	}
	return nil
}

// DeleteWorkout cascades the deletion of a workout and all exercises it
// owns. A missing workout aborts before any exercise is deleted.
func (s *DeleteService) DeleteWorkout(ctx context.Context, workoutID, email string) error {
	workout, err := s.store.Workout(ctx, workoutID)
	if err != nil {
		if err == store.ErrNotFound {
			return ErrWorkoutNotFound
		}
		return err
	}

	for _, exID := range workout.Exercises {
		if err := s.store.Delete(ctx, store.Exercises, exID); err != nil && err != store.ErrNotFound {
			log.Printf("delete workout %s: exercise %s not deleted: %v", workoutID, exID, err)
		}
	}

	s.purgeReferences(ctx, KindWorkout, workoutID, email)

	if err := s.store.Delete(ctx, store.Workouts, workoutID); err != nil && err != store.ErrNotFound {
		return err
	}
	return nil
}

// UnfavoriteAndDelete serves the remove-favorite routes: drop the id from the
// caller's favorite set, then cascade-delete the entity itself. The favorite
// removal happens first, so it sticks even when the entity document is
// already gone (which still reports not-found).
func (s *DeleteService) UnfavoriteAndDelete(ctx context.Context, kind Kind, id, email string) error {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.store.ArrayRemove(ctx, store.Users, user.ID.Hex(), kind.userField(), id); err != nil {
		return err
	}

	if kind == KindWorkout {
		return s.DeleteWorkout(ctx, id, "")
	}
	return s.DeleteMeal(ctx, id, "")
}

// purgeReferences clears id from every Day roster that lists it and, when
// email is given, from that user's favorite set. All best-effort.
func (s *DeleteService) purgeReferences(ctx context.Context, kind Kind, id, email string) {
	days, err := s.store.FindArrayContains(ctx, store.Days, kind.dayField(), id)
	if err != nil {
		log.Printf("delete %s %s: day lookup failed: %v", kind, id, err)
	}
	for _, day := range days {
		dayID := store.DocID(day)
		if err := s.store.ArrayRemove(ctx, store.Days, dayID, kind.dayField(), id); err != nil {
			log.Printf("delete %s %s: day %s roster not cleared: %v", kind, id, dayID, err)
		}
	}

	if email == "" {
		return
	}
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		log.Printf("delete %s %s: user %s not resolved: %v", kind, id, email, err)
		return
	}
	if err := s.store.ArrayRemove(ctx, store.Users, user.ID.Hex(), kind.userField(), id); err != nil {
		log.Printf("delete %s %s: favorites of %s not cleared: %v", kind, id, email, err)
	}
}
