package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Day is the aggregate record of all activity for one calendar date. Days are
// global (one per date, not per user) and are created lazily by the first
// favorite or weight write for that date.
type Day struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      string             `bson:"date" json:"date"` // "2006-01-02"
	DayOfWeek string             `bson:"day" json:"day"`   // "Monday"|...
	Meals     []string           `bson:"meals" json:"meals"`
	Workouts  []string           `bson:"workouts" json:"workouts"`
	Weight    *int               `bson:"weight,omitempty" json:"weight,omitempty"`
}
