package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal document. Created standalone, via create-and-favorite, or by the
// generator. Deleting a meal must also purge its ID from user favorite sets
// and Day rosters.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Calories    int                `bson:"calories" json:"calories"`
	Carbs       int                `bson:"carbs" json:"carbs"`
	Fats        int                `bson:"fats" json:"fats"`
	Proteins    int                `bson:"proteins" json:"proteins"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	Type        string             `bson:"type" json:"type"` // "Breakfast"|"Lunch"|...
}
