package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User profile document. Email is the business key used by every route;
// uniqueness is by convention (find-by-email takes the first match), not a
// store constraint.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email             string             `bson:"email" json:"email"`
	Name              string             `bson:"name" json:"name"`
	DateOfBirth       string             `bson:"date_of_birth" json:"date_of_birth"`
	Height            float64            `bson:"height" json:"height"`
	Weight            float64            `bson:"weight" json:"weight"`
	AvgCalIntake      int                `bson:"avg_cal_intake" json:"avg_cal_intake"`
	Goal              string             `bson:"goal" json:"goal"`
	FavoritedMeals    []string           `bson:"favorited_meals" json:"favorited_meals"`
	FavoritedWorkouts []string           `bson:"favorited_workouts" json:"favorited_workouts"`
	// Owned, non-favorite associations.
	Meals    []string `bson:"meals,omitempty" json:"meals,omitempty"`
	Workouts []string `bson:"workouts,omitempty" json:"workouts,omitempty"`
}
