package services

import "fitcal-backend/store"

// Kind selects which favorite set and Day roster an operation targets.
type Kind string

const (
	KindMeal    Kind = "meal"
	KindWorkout Kind = "workout"
)

// userField is the favorite-set field on the user document.
func (k Kind) userField() string {
	if k == KindWorkout {
		return "favorited_workouts"
	}
	return "favorited_meals"
}

// dayField is the roster field on the Day document.
func (k Kind) dayField() string {
	if k == KindWorkout {
		return "workouts"
	}
	return "meals"
}

func (k Kind) collection() string {
	if k == KindWorkout {
		return store.Workouts
	}
	return store.Meals
}

func (k Kind) notFound() error {
	if k == KindWorkout {
		return ErrWorkoutNotFound
	}
	return ErrMealNotFound
}
