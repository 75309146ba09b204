package controllers

import (
	"net/http"

	"fitcal-backend/services"
	"fitcal-backend/store"

	"github.com/gin-gonic/gin"
)

// statusFor maps the service error taxonomy onto HTTP statuses. Anything
// unrecognized is a store/internal failure surfaced as a 500 with the
// underlying message.
func statusFor(err error) int {
	switch err {
	case services.ErrUserNotFound,
		services.ErrMealNotFound,
		services.ErrWorkoutNotFound,
		services.ErrExerciseNotFound,
		store.ErrNotFound:
		return http.StatusNotFound
	case services.ErrDayNotLinked:
		return http.StatusForbidden
	case services.ErrInvalidWeight:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func failBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
