package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, as the original data was laid out.
const (
	Users     = "users"
	Meals     = "Meal"
	Workouts  = "Workout"
	Exercises = "Exercise"
	Days      = "Day"
	Calendars = "Calendar"
)

// ErrNotFound is returned when a document lookup, update or delete matches
// nothing.
var ErrNotFound = errors.New("document not found")

// Doc is a raw store document. Documents returned by a Store carry their
// generated ID under "_id".
type Doc = bson.M

// Store is the generic document-store contract the rest of the service is
// written against. Array operations have set semantics: adding a value that
// is already present, or removing one that is absent, is a no-op, not an
// error. Multi-document consistency is the caller's problem; the store only
// promises per-call atomicity.
type Store interface {
	FindByField(ctx context.Context, coll, field string, value any, limit int64) ([]Doc, error)
	List(ctx context.Context, coll string, limit int64) ([]Doc, error)
	GetByID(ctx context.Context, coll, id string) (Doc, error)
	Insert(ctx context.Context, coll string, doc Doc) (string, error)
	Update(ctx context.Context, coll, id string, fields Doc) error
	Delete(ctx context.Context, coll, id string) error
	ArrayAdd(ctx context.Context, coll, id, field, value string) error
	ArrayRemove(ctx context.Context, coll, id, field, value string) error
	// FindArrayContains returns every document whose array field contains
	// value. Used by the cascade engine to locate referencing Day records.
	FindArrayContains(ctx context.Context, coll, field, value string) ([]Doc, error)
}

// DocID extracts the hex ID of a document returned by a Store.
func DocID(d Doc) string {
	if oid, ok := d["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func decodeDoc(d Doc, out any) error {
	raw, err := bson.Marshal(d)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func encodeDoc(in any) (Doc, error) {
	raw, err := bson.Marshal(in)
	if err != nil {
		return nil, err
	}
	var d Doc
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}
