package controllers

import (
	"fmt"
	"net/http"

	"fitcal-backend/services"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	calendar *services.CalendarService
}

func NewCalendarController(cs *services.CalendarService) *CalendarController {
	return &CalendarController{calendar: cs}
}

func (cc *CalendarController) GetMealsOnDay(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		Date  string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.Date == "" {
		failBadRequest(c, "Email and date are required")
		return
	}
	meals, err := cc.calendar.MealsOnDay(c.Request.Context(), body.Email, body.Date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (cc *CalendarController) GetWorkoutsOnDay(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		Date  string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.Date == "" {
		failBadRequest(c, "Email and date are required")
		return
	}
	workouts, err := cc.calendar.WorkoutsOnDay(c.Request.Context(), body.Email, body.Date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (cc *CalendarController) GetWeightOnDay(c *gin.Context) {
	var body struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Date == "" {
		failBadRequest(c, "Date is required")
		return
	}
	day, err := cc.calendar.WeightOnDay(c.Request.Context(), body.Date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day.Date, "weight": day.Weight})
}

func (cc *CalendarController) UpdateWeightOnDay(c *gin.Context) {
	var body struct {
		Date   string `json:"date"`
		Weight any    `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Date == "" || body.Weight == nil {
		failBadRequest(c, "Date and weight are required")
		return
	}

	// Clients send weight as either a string or a bare number.
	weight := fmt.Sprint(body.Weight)
	if f, ok := body.Weight.(float64); ok && f == float64(int(f)) {
		weight = fmt.Sprint(int(f))
	}

	created, err := cc.calendar.SetWeightOnDay(c.Request.Context(), body.Date, weight)
	if err != nil {
		fail(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Weight added successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight updated successfully"})
}

func (cc *CalendarController) GetCalendar(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		failBadRequest(c, "Email parameter is required")
		return
	}
	days, err := cc.calendar.CalendarDays(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
