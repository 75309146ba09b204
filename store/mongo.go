package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// opTimeout bounds every single store call.
const opTimeout = 5 * time.Second

// Mongo implements Store on a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

var _ Store = (*Mongo)(nil)

// NewMongo connects to the given URI and pings the deployment before
// returning, so startup fails loudly on a bad connection string.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(cctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{db: client.Database(dbName)}, nil
}

// withRetry runs fn with a per-attempt timeout and retries exactly once on a
// transient transport error. All store writes are idempotent, so a blind
// second attempt is safe.
func (m *Mongo) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	run := func() error {
		cctx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()
		return fn(cctx)
	}
	err := run()
	if err == nil || !isTransient(err) {
		return err
	}
	return run()
}

func isTransient(err error) bool {
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}

func (m *Mongo) FindByField(ctx context.Context, coll, field string, value any, limit int64) ([]Doc, error) {
	var docs []Doc
	err := m.withRetry(ctx, func(ctx context.Context) error {
		opts := options.Find()
		if limit > 0 {
			opts.SetLimit(limit)
		}
		cur, err := m.db.Collection(coll).Find(ctx, bson.M{field: value}, opts)
		if err != nil {
			return err
		}
		docs = nil
		return cur.All(ctx, &docs)
	})
	return docs, err
}

func (m *Mongo) List(ctx context.Context, coll string, limit int64) ([]Doc, error) {
	var docs []Doc
	err := m.withRetry(ctx, func(ctx context.Context) error {
		opts := options.Find()
		if limit > 0 {
			opts.SetLimit(limit)
		}
		cur, err := m.db.Collection(coll).Find(ctx, bson.M{}, opts)
		if err != nil {
			return err
		}
		docs = nil
		return cur.All(ctx, &docs)
	})
	return docs, err
}

func (m *Mongo) GetByID(ctx context.Context, coll, id string) (Doc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc Doc
	err = m.withRetry(ctx, func(ctx context.Context) error {
		res := m.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid})
		if err := res.Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			return err
		}
		return res.Decode(&doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) Insert(ctx context.Context, coll string, doc Doc) (string, error) {
	var id string
	err := m.withRetry(ctx, func(ctx context.Context) error {
		res, err := m.db.Collection(coll).InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			oid = primitive.NilObjectID
		}
		id = oid.Hex()
		return nil
	})
	return id, err
}

func (m *Mongo) Update(ctx context.Context, coll, id string, fields Doc) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return m.withRetry(ctx, func(ctx context.Context) error {
		res, err := m.db.Collection(coll).UpdateByID(ctx, oid, bson.M{"$set": fields})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (m *Mongo) Delete(ctx context.Context, coll, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return m.withRetry(ctx, func(ctx context.Context) error {
		res, err := m.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (m *Mongo) ArrayAdd(ctx context.Context, coll, id, field, value string) error {
	return m.arrayOp(ctx, coll, id, bson.M{"$addToSet": bson.M{field: value}})
}

func (m *Mongo) ArrayRemove(ctx context.Context, coll, id, field, value string) error {
	return m.arrayOp(ctx, coll, id, bson.M{"$pull": bson.M{field: value}})
}

func (m *Mongo) arrayOp(ctx context.Context, coll, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return m.withRetry(ctx, func(ctx context.Context) error {
		res, err := m.db.Collection(coll).UpdateByID(ctx, oid, update)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (m *Mongo) FindArrayContains(ctx context.Context, coll, field, value string) ([]Doc, error) {
	// Equality against an array field matches documents containing the value.
	return m.FindByField(ctx, coll, field, value, 0)
}
