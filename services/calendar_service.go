package services

import (
	"context"
	"log"
	"strconv"

	"fitcal-backend/models"
	"fitcal-backend/store"
)

// CalendarService answers "what happened on date D for user U" by chaining
// Calendar → Day → {Meal, Workout → Exercise}, and owns the day-keyed weight
// samples.
type CalendarService struct {
	store *store.Entities
}

func NewCalendarService(e *store.Entities) *CalendarService {
	return &CalendarService{store: e}
}

// MealsOnDay returns the meals recorded on date for the user. A date with no
// Day record yields an empty list, not an error; a Day that exists but is
// not linked from the user's calendar fails with ErrDayNotLinked.
func (s *CalendarService) MealsOnDay(ctx context.Context, email, date string) ([]models.Meal, error) {
	day, err := s.resolveDay(ctx, email, date)
	if err != nil || day == nil {
		return []models.Meal{}, err
	}
	return fetchMeals(ctx, s.store, day.Meals), nil
}

// WorkoutsOnDay is MealsOnDay for the workout roster, with each workout's
// exercises denormalized one level deep.
func (s *CalendarService) WorkoutsOnDay(ctx context.Context, email, date string) ([]models.WorkoutDetails, error) {
	day, err := s.resolveDay(ctx, email, date)
	if err != nil || day == nil {
		return []models.WorkoutDetails{}, err
	}
	return fetchWorkoutDetails(ctx, s.store, day.Workouts), nil
}

// resolveDay runs the shared ownership chain. A nil Day with nil error means
// nothing was recorded for that date.
func (s *CalendarService) resolveDay(ctx context.Context, email, date string) (*models.Day, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	userID := user.ID.Hex()

	day, err := s.store.DayByDate(ctx, date)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	calendar, err := s.store.CalendarForUser(ctx, userID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrDayNotLinked
		}
		return nil, err
	}

	linked := false
	for _, dayID := range calendar.Days {
		if dayID == day.ID.Hex() {
			linked = true
			break
		}
	}
	if !linked {
		return nil, ErrDayNotLinked
	}
	// Redundant with the belongs_to filter above; kept as an explicit
	// ownership check.
	if calendar.BelongsTo != userID {
		return nil, ErrDayNotLinked
	}

	return day, nil
}

// CalendarDays returns every Day linked from the user's calendar. A user
// without a calendar gets an empty list.
func (s *CalendarService) CalendarDays(ctx context.Context, email string) ([]models.Day, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	calendar, err := s.store.CalendarForUser(ctx, user.ID.Hex())
	if err != nil {
		if err == store.ErrNotFound {
			return []models.Day{}, nil
		}
		return nil, err
	}

	days := make([]models.Day, 0, len(calendar.Days))
	for _, dayID := range calendar.Days {
		day, err := s.store.Day(ctx, dayID)
		if err != nil {
			log.Printf("calendar %s: skipping unresolvable day %s: %v", calendar.ID.Hex(), dayID, err)
			continue
		}
		days = append(days, *day)
	}
	return days, nil
}

// WeightOnDay returns the Day for date, creating it when absent.
func (s *CalendarService) WeightOnDay(ctx context.Context, date string) (*models.Day, error) {
	day, _, err := s.store.FindOrCreateDay(ctx, date)
	return day, err
}

// SetWeightOnDay records a weight sample on the Day for date, creating the
// Day when absent. weight must parse as an integer. Reports whether the Day
// was created by this call.
func (s *CalendarService) SetWeightOnDay(ctx context.Context, date, weight string) (bool, error) {
	w, err := strconv.Atoi(weight)
	if err != nil {
		return false, ErrInvalidWeight
	}

	day, created, err := s.store.FindOrCreateDay(ctx, date)
	if err != nil {
		return false, err
	}
	if err := s.store.Update(ctx, store.Days, day.ID.Hex(), store.Doc{"weight": w}); err != nil {
		return created, err
	}
	return created, nil
}
