package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise document, owned by exactly one Workout.
type Exercise struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description" json:"description"`
	Reps              int                `bson:"reps" json:"reps"`
	Sets              int                `bson:"sets" json:"sets"`
	Weight            int                `bson:"weight" json:"weight"`
	AvgCaloriesBurned int                `bson:"avg_calories_burned" json:"avg_calories_burned"`
	BodyParts         string             `bson:"body_parts" json:"body_parts"` // comma-separated, e.g. "Chest, Triceps"
}
