package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Calendar indexes which Day records belong to a user. No route writes
// calendars; population is an external precondition and the aggregator only
// reads them.
type Calendar struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BelongsTo string             `bson:"belongs_to" json:"belongs_to"` // user document ID
	Days      []string           `bson:"days" json:"days"`
}
