package controllers

import (
	"net/http"

	"fitcal-backend/services"

	"github.com/gin-gonic/gin"
)

type GenerateController struct {
	generate *services.GenerateService
}

func NewGenerateController(gs *services.GenerateService) *GenerateController {
	return &GenerateController{generate: gs}
}

func (gc *GenerateController) GenerateMeal(c *gin.Context) {
	var criteria services.MealCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	meal, id, err := gc.generate.GenerateMeal(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Meal generated successfully",
		"meal_id":   id,
		"meal_data": meal,
	})
}

func (gc *GenerateController) GenerateWorkout(c *gin.Context) {
	var criteria services.WorkoutCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	workout, id, err := gc.generate.GenerateWorkout(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Workout generated successfully",
		"workout_id":   id,
		"workout_data": workout,
	})
}
