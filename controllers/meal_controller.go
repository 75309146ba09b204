package controllers

import (
	"net/http"

	"fitcal-backend/models"
	"fitcal-backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals     *services.MealService
	favorites *services.FavoriteService
	deletes   *services.DeleteService
}

func NewMealController(ms *services.MealService, fs *services.FavoriteService, ds *services.DeleteService) *MealController {
	return &MealController{meals: ms, favorites: fs, deletes: ds}
}

func (mc *MealController) CreateFavoriteMeal(c *gin.Context) {
	var body struct {
		Email       string   `json:"email"`
		Name        string   `json:"name"`
		Calories    int      `json:"calories"`
		Carbs       int      `json:"carbs"`
		Fats        int      `json:"fats"`
		Proteins    int      `json:"proteins"`
		Ingredients []string `json:"ingredients"`
		Type        string   `json:"type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" {
		failBadRequest(c, "Email is required")
		return
	}

	meal := models.Meal{
		Name:        body.Name,
		Calories:    body.Calories,
		Carbs:       body.Carbs,
		Fats:        body.Fats,
		Proteins:    body.Proteins,
		Ingredients: body.Ingredients,
		Type:        body.Type,
	}
	id, err := mc.favorites.CreateFavoriteMeal(c.Request.Context(), body.Email, &meal)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal created and added to favorites", "meal_id": id})
}

func (mc *MealController) AddMealToFavorites(c *gin.Context) {
	var body struct {
		Email  string `json:"email"`
		MealID string `json:"meal_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.MealID == "" {
		failBadRequest(c, "Meal ID and email are required")
		return
	}
	if err := mc.favorites.AddFavorite(c.Request.Context(), services.KindMeal, body.MealID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal added to favorites successfully", "meal_id": body.MealID})
}

func (mc *MealController) CheckIsFavoriteMeal(c *gin.Context) {
	var body struct {
		Email  string `json:"email"`
		MealID string `json:"meal_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.MealID == "" {
		failBadRequest(c, "Meal ID and email are required")
		return
	}
	isFavorite, err := mc.favorites.IsFavorite(c.Request.Context(), services.KindMeal, body.MealID, body.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_favorite": isFavorite})
}

func (mc *MealController) UnfavoriteMeal(c *gin.Context) {
	var body struct {
		Email  string `json:"email"`
		MealID string `json:"meal_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.MealID == "" {
		failBadRequest(c, "Email and Meal ID are required")
		return
	}
	if err := mc.favorites.RemoveFavorite(c.Request.Context(), services.KindMeal, body.MealID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal unfavorited successfully", "meal_id": body.MealID})
}

// RemoveFavoriteMeal unfavorites the meal for the caller and then deletes
// the meal document itself, cascading to every Day roster that lists it.
func (mc *MealController) RemoveFavoriteMeal(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		ID    string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.Email == "" || body.ID == "" {
		failBadRequest(c, "Email and Meal ID are required")
		return
	}
	if err := mc.deletes.UnfavoriteAndDelete(c.Request.Context(), services.KindMeal, body.ID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal removed from favorites and deleted successfully"})
}

func (mc *MealController) RemoveMeal(c *gin.Context) {
	var body struct {
		MealID string `json:"meal_id"`
		Email  string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		failBadRequest(c, err.Error())
		return
	}
	if body.MealID == "" {
		failBadRequest(c, "Meal ID is required")
		return
	}
	if err := mc.deletes.DeleteMeal(c.Request.Context(), body.MealID, body.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

func (mc *MealController) GetMealDetails(c *gin.Context) {
	mealID := c.Query("mealId")
	if mealID == "" {
		failBadRequest(c, "mealId parameter is required")
		return
	}
	meal, err := mc.meals.MealDetails(c.Request.Context(), mealID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) GetNMeals(c *gin.Context) {
	meals, err := mc.meals.SampleMeals(c.Request.Context(), 3)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}
