package services

import (
	"context"
	"testing"

	"fitcal-backend/models"
)

func TestAddUserInitializesFavoriteSets(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	us := NewUserService(e)

	_, err := us.AddUser(context.Background(), &models.User{Email: "a@x.com", Name: "A"})
	if err != nil {
		t.Fatalf("add user: %v", err)
	}

	u, err := us.Profile(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if u.FavoritedMeals == nil || u.FavoritedWorkouts == nil {
		t.Fatalf("favorite sets must be initialized empty, got %+v", u)
	}
	if len(u.FavoritedMeals) != 0 || len(u.FavoritedWorkouts) != 0 {
		t.Fatalf("favorite sets must start empty, got %+v", u)
	}
}

func TestSaveProfileUpsertsByEmail(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	us := NewUserService(e)
	ctx := context.Background()

	// Unknown email creates.
	err := us.SaveProfile(ctx, "a@x.com", map[string]any{"email": "a@x.com", "name": "A", "goal": "bulk"})
	if err != nil {
		t.Fatalf("create via save: %v", err)
	}
	u, err := us.Profile(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("profile after create: %v", err)
	}
	if u.Goal != "bulk" {
		t.Fatalf("expected goal persisted, got %+v", u)
	}

	// Known email patches without clobbering other fields.
	err = us.SaveProfile(ctx, "a@x.com", map[string]any{"email": "a@x.com", "goal": "cut"})
	if err != nil {
		t.Fatalf("update via save: %v", err)
	}
	u, _ = us.Profile(ctx, "a@x.com")
	if u.Goal != "cut" || u.Name != "A" {
		t.Fatalf("expected patched profile, got %+v", u)
	}
}

func TestFavoriteListingsSkipStaleRefs(t *testing.T) {
	t.Parallel()
	e := newTestEntities()
	ctx := context.Background()
	seedUser(t, e, "a@x.com")
	mealID := seedMeal(t, e, "Bowl")

	fs := NewFavoriteService(e)
	fs.now = fixedClock("2023-01-01")
	for _, id := range []string{mealID, "stale-ref"} {
		if err := fs.AddFavorite(ctx, KindMeal, id, "a@x.com"); err != nil {
			t.Fatalf("add favorite %s: %v", id, err)
		}
	}

	us := NewUserService(e)
	meals, err := us.FavoriteMeals(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("favorite meals: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "Bowl" {
		t.Fatalf("expected the one resolvable favorite, got %v", meals)
	}
}
