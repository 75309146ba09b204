package services

import "errors"

// Sentinel errors for the operation-level taxonomy. The messages double as
// the API-facing diagnostics, so they keep the wording clients already match
// on.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrMealNotFound     = errors.New("Meal not found")
	ErrWorkoutNotFound  = errors.New("Workout not found")
	ErrExerciseNotFound = errors.New("Exercise not found")
	ErrDayNotLinked     = errors.New("Day is not linked to this user's calendar")
	ErrInvalidWeight    = errors.New("Weight must be an integer")
	ErrGenerationParse  = errors.New("Failed to parse model's response to JSON. Try again to generate a new response.")
)
