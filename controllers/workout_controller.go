package controllers

import (
	"net/http"

	"fitcal-backend/models"
	"fitcal-backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts  *services.WorkoutService
	favorites *services.FavoriteService
	deletes   *services.DeleteService
}

func NewWorkoutController(ws *services.WorkoutService, fs *services.FavoriteService, ds *services.DeleteService) *WorkoutController {
	return &WorkoutController{workouts: ws, favorites: fs, deletes: ds}
}

func (wc *WorkoutController) CreateFavoriteWorkout(c *gin.Context) {
	var body struct {
		Email         string            `json:"email"`
		Name          string            `json:"name"`
		TotalMinutes  int               `json:"total_minutes"`
		BodyPartFocus string            `json:"body_part_focus"`
		Exercises     []models.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" {
		failBadRequest(c, "Email is required")
		return
	}

	id, err := wc.favorites.CreateFavoriteWorkout(c.Request.Context(), body.Email, services.WorkoutInput{
		Name:          body.Name,
		TotalMinutes:  body.TotalMinutes,
		BodyPartFocus: body.BodyPartFocus,
		Exercises:     body.Exercises,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout created and added to favorites", "workout_id": id})
}

func (wc *WorkoutController) AddWorkoutToFavorites(c *gin.Context) {
	var body struct {
		Email     string `json:"email"`
		WorkoutID string `json:"workout_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.WorkoutID == "" {
		failBadRequest(c, "Workout ID and email are required")
		return
	}
	if err := wc.favorites.AddFavorite(c.Request.Context(), services.KindWorkout, body.WorkoutID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout added to favorites successfully", "workout_id": body.WorkoutID})
}

func (wc *WorkoutController) CheckIsFavoriteWorkout(c *gin.Context) {
	var body struct {
		Email     string `json:"email"`
		WorkoutID string `json:"workout_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.WorkoutID == "" {
		failBadRequest(c, "Workout ID and email are required")
		return
	}
	isFavorite, err := wc.favorites.IsFavorite(c.Request.Context(), services.KindWorkout, body.WorkoutID, body.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

func (wc *WorkoutController) UnfavoriteWorkout(c *gin.Context) {
	var body struct {
		Email     string `json:"email"`
		WorkoutID string `json:"workout_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.WorkoutID == "" {
		failBadRequest(c, "Email and Workout ID are required")
		return
	}
	if err := wc.favorites.RemoveFavorite(c.Request.Context(), services.KindWorkout, body.WorkoutID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout unfavorited successfully", "workout_id": body.WorkoutID})
}

// RemoveFavoriteWorkout unfavorites the workout for the caller and then
// cascade-deletes it, owned exercises included.
func (wc *WorkoutController) RemoveFavoriteWorkout(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		ID    string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.ID == "" {
		failBadRequest(c, "Email and Workout ID are required")
		return
	}
	if err := wc.deletes.UnfavoriteAndDelete(c.Request.Context(), services.KindWorkout, body.ID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout removed from favorites and deleted successfully"})
}

func (wc *WorkoutController) RemoveWorkout(c *gin.Context) {
	var body struct {
		WorkoutID string `json:"workout_id"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.WorkoutID == "" {
		failBadRequest(c, "Workout ID is required")
		return
	}
	if err := wc.deletes.DeleteWorkout(c.Request.Context(), body.WorkoutID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

func (wc *WorkoutController) GetWorkoutDetails(c *gin.Context) {
	workoutID := c.Query("workoutId")
	if workoutID == "" {
		failBadRequest(c, "workoutId parameter is required")
		return
	}
	details, err := wc.workouts.WorkoutDetails(c.Request.Context(), workoutID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (wc *WorkoutController) EditUserWorkout(c *gin.Context) {
	workoutID := c.Param("workout_id")
	var body services.WorkoutInput
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if err := wc.workouts.EditWorkout(c.Request.Context(), workoutID, body); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout updated successfully"})
}
