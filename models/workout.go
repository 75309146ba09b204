package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout document. A workout exclusively owns its exercises: no Exercise ID
// appears in more than one workout, and deleting the workout deletes them.
type Workout struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	TotalMinutes  int                `bson:"total_minutes" json:"total_minutes"`
	BodyPartFocus string             `bson:"body_part_focus" json:"body_part_focus"`
	Exercises     []string           `bson:"exercises" json:"exercises"`
}

// WorkoutDetails is a Workout with its exercises denormalized one level deep,
// as returned by the detail and on-day lookups.
type WorkoutDetails struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TotalMinutes  int        `json:"total_minutes"`
	BodyPartFocus string     `json:"body_part_focus"`
	Exercises     []Exercise `json:"exercises"`
}
