package services

import (
	"context"
	"log"
	"time"

	"fitcal-backend/models"
	"fitcal-backend/store"
	"fitcal-backend/utils"
)

// FavoriteService owns the favorite sets on user documents and their mirror
// on the current date's Day roster: adding a favorite touches today's Day,
// and removing one touches today's Day as well, regardless of when the
// favorite was added.
type FavoriteService struct {
	store *store.Entities
	now   func() time.Time
}

func NewFavoriteService(e *store.Entities) *FavoriteService {
	return &FavoriteService{store: e, now: time.Now}
}

// AddFavorite adds id to the user's favorite set and to today's Day roster,
// creating the Day lazily. The two writes are independent and not atomic:
// the user-set write is the primary one, the Day write is best-effort and a
// failure there is logged, not surfaced.
func (s *FavoriteService) AddFavorite(ctx context.Context, kind Kind, id, email string) error {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.store.ArrayAdd(ctx, store.Users, user.ID.Hex(), kind.userField(), id); err != nil {
		return err
	}

	date := utils.DateKey(s.now())
	day, _, err := s.store.FindOrCreateDay(ctx, date)
	if err != nil {
		log.Printf("favorite %s %s: could not resolve day %s: %v", kind, id, date, err)
		return nil
	}
	if err := s.store.ArrayAdd(ctx, store.Days, day.ID.Hex(), kind.dayField(), id); err != nil {
		log.Printf("favorite %s %s: day %s roster update failed: %v", kind, id, date, err)
	}
	return nil
}

// RemoveFavorite removes id from the user's favorite set and from today's
// Day roster. A Day that doesn't exist yet for today is skipped silently;
// removing an id that isn't present is a no-op. Note the roster side always
// targets the current date, even for favorites added on an earlier one.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, kind Kind, id, email string) error {
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

	date := utils.DateKey(s.now())
	day, err := s.store.DayByDate(ctx, date)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("unfavorite %s %s: day %s lookup failed: %v", kind, id, date, err)
		}
		return nil
	}
	if err := s.store.ArrayRemove(ctx, store.Days, day.ID.Hex(), kind.dayField(), id); err != nil {
		log.Printf("unfavorite %s %s: day %s roster update failed: %v", kind, id, date, err)
	}
	return nil
}

// IsFavorite reports membership of id in the user's favorite set.
func (s *FavoriteService) IsFavorite(ctx context.Context, kind Kind, id, email string) (bool, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return false, ErrUserNotFound
		}
		return false, err
	}

	set := user.FavoritedMeals
	if kind == KindWorkout {
		set = user.FavoritedWorkouts
	}
	for _, v := range set {
		if v == id {
			return true, nil
		}
	}
	return false, nil
}

// CreateFavoriteMeal inserts the meal and favorites it for the user. The
// insert happens first, so a missing user still leaves the meal created,
// matching the original behavior.
func (s *FavoriteService) CreateFavoriteMeal(ctx context.Context, email string, meal *models.Meal) (string, error) {
	id, err := s.store.InsertMeal(ctx, meal)
	if err != nil {
		return "", err
	}
	return id, s.AddFavorite(ctx, KindMeal, id, email)
}

// WorkoutInput is the create/edit payload for a workout with its nested
// exercises inline.
type WorkoutInput struct {
	Name          string            `json:"name"`
	TotalMinutes  int               `json:"total_minutes"`
	BodyPartFocus string            `json:"body_part_focus"`
	Exercises     []models.Exercise `json:"exercises"`
}

// CreateFavoriteWorkout inserts the nested exercises first, then the workout
// referencing them, then favorites it. When the payload carries no
// body_part_focus it is derived as the union of the exercises' body parts.
func (s *FavoriteService) CreateFavoriteWorkout(ctx context.Context, email string, input WorkoutInput) (string, error) {
	exerciseIDs := make([]string, 0, len(input.Exercises))
	for i := range input.Exercises {
		exID, err := s.store.InsertExercise(ctx, &input.Exercises[i])
		if err != nil {
			return "", err
		}
		exerciseIDs = append(exerciseIDs, exID)
	}

	focus := input.BodyPartFocus
	if focus == "" {
		parts := make([]string, 0, len(input.Exercises))
		for _, ex := range input.Exercises {
			parts = append(parts, ex.BodyParts)
		}
		focus = utils.UnionBodyParts(parts)
	}

	workout := &models.Workout{
		Name:          input.Name,
		TotalMinutes:  input.TotalMinutes,
		BodyPartFocus: focus,
		Exercises:     exerciseIDs,
	}
	id, err := s.store.InsertWorkout(ctx, workout)
	if err != nil {
		return "", err
	}
	return id, s.AddFavorite(ctx, KindWorkout, id, email)
}
