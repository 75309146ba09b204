package routes

import (
	"net/http"

	"fitcal-backend/controllers"
	"fitcal-backend/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route to its controller. The paths are the
// contract the frontend was built against, so they stay flat and verb-y.
func SetupRouter(
	uc *controllers.UserController,
	mc *controllers.MealController,
	wc *controllers.WorkoutController,
	cc *controllers.CalendarController,
	gc *controllers.GenerateController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "App is running!")
	})

	// Users and profiles
	r.POST("/add_user", uc.AddUser)
	r.GET("/get_profile", uc.GetProfile)
	r.POST("/save_profile", uc.SaveProfile)
	r.GET("/get_user_meals", uc.GetUserMeals)
	r.GET("/get_favorite_meals", uc.GetFavoriteMeals)
	r.GET("/get_favorite_workouts", uc.GetFavoriteWorkouts)

	// Meals and meal favorites
	r.POST("/create_favorite_meal", mc.CreateFavoriteMeal)
	r.POST("/add_meal_to_favorites", mc.AddMealToFavorites)
	r.POST("/check_is_favorite_meal", mc.CheckIsFavoriteMeal)
	r.POST("/unfavorite_meal", mc.UnfavoriteMeal)
	r.POST("/remove_favorite_meal", mc.RemoveFavoriteMeal)
	r.DELETE("/remove_meal", mc.RemoveMeal)
	r.GET("/get_meal_details", mc.GetMealDetails)
	r.GET("/get_n_meals", mc.GetNMeals)

	// Workouts and workout favorites
	r.POST("/create_favorite_workout", wc.CreateFavoriteWorkout)
	r.POST("/add_workout_to_favorites", wc.AddWorkoutToFavorites)
	r.POST("/check_is_favorite_workout", wc.CheckIsFavoriteWorkout)
	r.POST("/unfavorite_workout", wc.UnfavoriteWorkout)
	r.POST("/remove_favorite_workout", wc.RemoveFavoriteWorkout)
	r.DELETE("/remove_workout", wc.RemoveWorkout)
	r.GET("/get_workout_details", wc.GetWorkoutDetails)
	r.PUT("/edit_user_workout/:workout_id", wc.EditUserWorkout)

	// Day and calendar aggregation
	r.POST("/get_meals_on_day", cc.GetMealsOnDay)
	r.POST("/get_workouts_on_day", cc.GetWorkoutsOnDay)
	r.POST("/get_weight_on_day", cc.GetWeightOnDay)
	r.POST("/update_weight_on_day", cc.UpdateWeightOnDay)
	r.GET("/get_calendar", cc.GetCalendar)

	// Generation
	r.POST("/generate_meal", gc.GenerateMeal)
	r.POST("/generate_workout", gc.GenerateWorkout)

	return r
}
