package main

import (
	"context"
	"log"

	"fitcal-backend/config"
	"fitcal-backend/controllers"
	"fitcal-backend/routes"
	"fitcal-backend/services"
	"fitcal-backend/store"
)

func main() {
	config.Load()

	s, err := config.NewStore(context.Background())
	if err != nil {
		log.Fatalf("failed to connect to store: %v", err)
	}
	entities := store.NewEntities(s)

	favoriteSvc := services.NewFavoriteService(entities)
	deleteSvc := services.NewDeleteService(entities)
	calendarSvc := services.NewCalendarService(entities)
	userSvc := services.NewUserService(entities)
	mealSvc := services.NewMealService(entities)
	workoutSvc := services.NewWorkoutService(entities)
	generateSvc := services.NewGenerateService(config.NewGenerator(), entities)

	r := routes.SetupRouter(
		controllers.NewUserController(userSvc),
		controllers.NewMealController(mealSvc, favoriteSvc, deleteSvc),
		controllers.NewWorkoutController(workoutSvc, favoriteSvc, deleteSvc),
		controllers.NewCalendarController(calendarSvc),
		controllers.NewGenerateController(generateSvc),
	)

	if err := r.Run(config.Port()); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
