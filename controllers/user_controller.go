package controllers

import (
	"net/http"

	"fitcal-backend/models"
	"fitcal-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(us *services.UserService) *UserController {
	return &UserController{users: us}
}

func (uc *UserController) AddUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if _, err := uc.users.AddUser(c.Request.Context(), &user); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully"})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		failBadRequest(c, "Email parameter is required")
		return
	}
	user, err := uc.users.Profile(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) SaveProfile(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	email, _ := body["email"].(string)
	if email == "" {
		failBadRequest(c, "Email is required")
		return
	}
	if err := uc.users.SaveProfile(c.Request.Context(), email, body); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully"})
}

func (uc *UserController) GetUserMeals(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		failBadRequest(c, "Email parameter is required")
		return
	}
	meals, err := uc.users.UserMeals(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	if len(meals) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No meals found for this user"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (uc *UserController) GetFavoriteMeals(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		failBadRequest(c, "Email parameter is required")
		return
	}
	meals, err := uc.users.FavoriteMeals(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	if len(meals) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No meals found for this user"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (uc *UserController) GetFavoriteWorkouts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		failBadRequest(c, "Email parameter is required")
		return
	}
	workouts, err := uc.users.FavoriteWorkouts(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	if len(workouts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No workouts found for this user"})
		return
	}
	c.JSON(http.StatusOK, workouts)
}
