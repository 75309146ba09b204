package store

import (
	"context"

	"fitcal-backend/models"
	"fitcal-backend/utils"
)

// Entities is the typed layer over the generic Store: one lookup/insert per
// record kind, plus the find-or-create used for Day-by-date upserts. Services
// reach through it for typed access and use the embedded Store directly for
// array mutations and cascades.
type Entities struct {
	Store
}

// NewEntities wraps a Store with typed accessors.
func NewEntities(s Store) *Entities {
	return &Entities{Store: s}
}

// UserByEmail resolves a user by the email business key, first match wins.
func (e *Entities) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, err := e.FindByField(ctx, Users, "email", email, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	var u models.User
	if err := decodeDoc(docs[0], &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (e *Entities) Meal(ctx context.Context, id string) (*models.Meal, error) {
	doc, err := e.GetByID(ctx, Meals, id)
	if err != nil {
		return nil, err
	}
	var m models.Meal
	if err := decodeDoc(doc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// MealsList returns up to limit meal documents, unordered.
func (e *Entities) MealsList(ctx context.Context, limit int64) ([]models.Meal, error) {
	docs, err := e.List(ctx, Meals, limit)
	if err != nil {
		return nil, err
	}
	meals := make([]models.Meal, 0, len(docs))
	for _, doc := range docs {
		var m models.Meal
		if err := decodeDoc(doc, &m); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, nil
}

func (e *Entities) Workout(ctx context.Context, id string) (*models.Workout, error) {
	doc, err := e.GetByID(ctx, Workouts, id)
	if err != nil {
		return nil, err
	}
	var w models.Workout
	if err := decodeDoc(doc, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (e *Entities) Exercise(ctx context.Context, id string) (*models.Exercise, error) {
	doc, err := e.GetByID(ctx, Exercises, id)
	if err != nil {
		return nil, err
	}
	var ex models.Exercise
	if err := decodeDoc(doc, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (e *Entities) Day(ctx context.Context, id string) (*models.Day, error) {
	doc, err := e.GetByID(ctx, Days, id)
	if err != nil {
		return nil, err
	}
	var d models.Day
	if err := decodeDoc(doc, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DayByDate finds the Day for a date key, limit-1: dates are not IDs.
func (e *Entities) DayByDate(ctx context.Context, date string) (*models.Day, error) {
	docs, err := e.FindByField(ctx, Days, "date", date, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	var d models.Day
	if err := decodeDoc(docs[0], &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindOrCreateDay returns the Day for date, creating an empty one when none
// exists yet. Reports whether it created. Concurrent first writes for one
// date can still race into duplicates; the limit-1 lookup keeps later writes
// converging on a single document.
func (e *Entities) FindOrCreateDay(ctx context.Context, date string) (*models.Day, bool, error) {
	d, err := e.DayByDate(ctx, date)
	if err == nil {
		return d, false, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}

	day := &models.Day{
		Date:      date,
		DayOfWeek: utils.WeekdayLabel(date),
		Meals:     []string{},
		Workouts:  []string{},
	}
	id, err := e.InsertDay(ctx, day)
	if err != nil {
		return nil, false, err
	}
	d, err = e.Day(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}

// CalendarForUser returns the user's calendar, first match wins (multiple
// calendars per user are unsupported).
func (e *Entities) CalendarForUser(ctx context.Context, userID string) (*models.Calendar, error) {
	docs, err := e.FindByField(ctx, Calendars, "belongs_to", userID, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	var c models.Calendar
	if err := decodeDoc(docs[0], &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (e *Entities) InsertUser(ctx context.Context, u *models.User) (string, error) {
	return e.insert(ctx, Users, u)
}

func (e *Entities) InsertMeal(ctx context.Context, m *models.Meal) (string, error) {
	return e.insert(ctx, Meals, m)
}

func (e *Entities) InsertWorkout(ctx context.Context, w *models.Workout) (string, error) {
	return e.insert(ctx, Workouts, w)
}

func (e *Entities) InsertExercise(ctx context.Context, ex *models.Exercise) (string, error) {
	return e.insert(ctx, Exercises, ex)
}

func (e *Entities) InsertDay(ctx context.Context, d *models.Day) (string, error) {
	return e.insert(ctx, Days, d)
}

func (e *Entities) insert(ctx context.Context, coll string, v any) (string, error) {
	doc, err := encodeDoc(v)
	if err != nil {
		return "", err
	}
	delete(doc, "_id") // store-generated
	return e.Insert(ctx, coll, doc)
}
