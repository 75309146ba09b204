package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store on in-process maps. It backs the test suite and
// the no-MONGO_URI dev mode. The mutex serializes everything, so the
// find-or-create race that exists against a real deployment cannot be
// reproduced here.
type Memory struct {
	mu    sync.Mutex
	colls map[string]map[string]Doc
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{colls: make(map[string]map[string]Doc)}
}

func (m *Memory) coll(name string) map[string]Doc {
	c, ok := m.colls[name]
	if !ok {
		c = make(map[string]Doc)
		m.colls[name] = c
	}
	return c
}

func (m *Memory) FindByField(ctx context.Context, coll, field string, value any, limit int64) ([]Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var docs []Doc
	for _, d := range m.coll(coll) {
		if d[field] == value {
			docs = append(docs, copyDoc(d))
			if limit > 0 && int64(len(docs)) == limit {
				break
			}
		}
	}
	return docs, nil
}

func (m *Memory) List(ctx context.Context, coll string, limit int64) ([]Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var docs []Doc
	for _, d := range m.coll(coll) {
		docs = append(docs, copyDoc(d))
		if limit > 0 && int64(len(docs)) == limit {
			break
		}
	}
	return docs, nil
}

func (m *Memory) GetByID(ctx context.Context, coll, id string) (Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.coll(coll)[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(d), nil
}

func (m *Memory) Insert(ctx context.Context, coll string, doc Doc) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oid := primitive.NewObjectID()
	d := copyDoc(doc)
	d["_id"] = oid
	m.coll(coll)[oid.Hex()] = d
	return oid.Hex(), nil
}

func (m *Memory) Update(ctx context.Context, coll, id string, fields Doc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.coll(coll)[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range copyDoc(fields) {
		d[k] = v
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, coll, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.coll(coll)
	if _, ok := c[id]; !ok {
		return ErrNotFound
	}
	delete(c, id)
	return nil
}

func (m *Memory) ArrayAdd(ctx context.Context, coll, id, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.coll(coll)[id]
	if !ok {
		return ErrNotFound
	}
	vals := asStrings(d[field])
	for _, v := range vals {
		if v == value {
			return nil
		}
	}
	d[field] = append(vals, value)
	return nil
}

func (m *Memory) ArrayRemove(ctx context.Context, coll, id, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.coll(coll)[id]
	if !ok {
		return ErrNotFound
	}
	vals := asStrings(d[field])
	kept := vals[:0]
	for _, v := range vals {
		if v != value {
			kept = append(kept, v)
		}
	}
	d[field] = kept
	return nil
}

func (m *Memory) FindArrayContains(ctx context.Context, coll, field, value string) ([]Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var docs []Doc
	for _, d := range m.coll(coll) {
		for _, v := range asStrings(d[field]) {
			if v == value {
				docs = append(docs, copyDoc(d))
				break
			}
		}
	}
	return docs, nil
}

// asStrings normalizes the shapes an array field can take after a bson
// round-trip ([]string directly, or primitive.A of interface values).
func asStrings(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case primitive.A:
		out := make([]string, 0, len(vals))
		for _, e := range vals {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(vals))
		for _, e := range vals {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func copyDoc(d Doc) Doc {
	out := make(Doc, len(d))
	for k, v := range d {
		if vals := asStrings(v); vals != nil {
			// Keep empty arrays non-nil: a nil slice marshals to BSON
			// null and an empty favorite set would come back as null.
			cp := make([]string, len(vals))
			copy(cp, vals)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}
