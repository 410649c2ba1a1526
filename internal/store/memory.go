package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/vinicius-lino-figueiredo/gedb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps each collection in an in-memory gedb datastore. It backs
// local runs and tests. Identifiers are stored as ObjectID hex strings, so the
// _id index yields documents in insertion order.
type MemoryStore struct {
	// mu guards collections and serializes Replace.
	mu          sync.Mutex
	collections map[string]gedb.GEDB
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]gedb.GEDB)}
}

func (s *MemoryStore) collection(name string) (gedb.GEDB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collectionLocked(name)
}

func (s *MemoryStore) collectionLocked(name string) (gedb.GEDB, error) {
	if db, ok := s.collections[name]; ok {
		return db, nil
	}
	db, err := gedb.NewDB(gedb.WithInMemoryOnly(true))
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", name, err)
	}
	s.collections[name] = db
	return db, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, p query.Predicate, dest any) error {
	db, err := s.collection(collection)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := db.FindOne(ctx, p.GEDB(), &doc); err != nil {
		if errors.Is(err, gedb.ErrNotFound) {
			return ErrNoDocument
		}
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return decodeInto(exposeID(doc), dest)
}

func (s *MemoryStore) FindMany(ctx context.Context, collection string, p query.Predicate, page query.Page, dest any) error {
	db, err := s.collection(collection)
	if err != nil {
		return err
	}

	opts := []gedb.FindOption{gedb.WithSkip(page.Skip)}
	if !page.Unbounded() {
		opts = append(opts, gedb.WithLimit(page.Limit))
	}
	docs, err := s.scanAll(ctx, db, p, opts...)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	for i := range docs {
		docs[i] = exposeID(docs[i])
	}
	return decodeInto(docs, dest)
}

func (s *MemoryStore) scanAll(ctx context.Context, db gedb.GEDB, p query.Predicate, opts ...gedb.FindOption) ([]map[string]any, error) {
	cur, err := db.Find(ctx, p.GEDB(), opts...)
	if err != nil {
		return nil, err
	}

	docs := []map[string]any{}
	for cur.Next() {
		var doc map[string]any
		if err := cur.Scan(ctx, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cur.Err()
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	body, err := embeddedBody(doc, id)
	if err != nil {
		return primitive.NilObjectID, err
	}

	db, err := s.collection(collection)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := db.Insert(ctx, body); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *MemoryStore) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error {
	body, err := embeddedBody(doc, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.collectionLocked(collection)
	if err != nil {
		return err
	}
	filter := query.ByID(id).GEDB()
	n, err := db.Count(ctx, filter)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", collection, err)
	}
	if n == 0 {
		return ErrNoDocument
	}
	if _, err := db.Update(ctx, filter, body); err != nil {
		return fmt.Errorf("replace in %s: %w", collection, err)
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	db, err := s.collection(collection)
	if err != nil {
		return err
	}

	n, err := db.Remove(ctx, query.ByID(id).GEDB())
	if err != nil {
		return fmt.Errorf("delete from %s: %w", collection, err)
	}
	if n == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, p query.Predicate) (int64, error) {
	db, err := s.collection(collection)
	if err != nil {
		return 0, err
	}

	n, err := db.Count(ctx, p.GEDB())
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *MemoryStore) AggregateCount(ctx context.Context, collection, field string, p query.Predicate) (map[string]int64, error) {
	db, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	docs, err := s.scanAll(ctx, db, p)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s by %s: %w", collection, field, err)
	}
	out := make(map[string]int64)
	for _, doc := range docs {
		out[groupValue(doc[field])]++
	}
	return out, nil
}

func (s *MemoryStore) EnsureIndexes(ctx context.Context, collection string, fields ...string) error {
	db, err := s.collection(collection)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := db.EnsureIndex(ctx, gedb.WithFields(f)); err != nil {
			return fmt.Errorf("ensure index %s.%s: %w", collection, f, err)
		}
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for name, db := range s.collections {
		if err := db.DropDatabase(ctx); err != nil {
			errs = append(errs, fmt.Errorf("drop %s: %w", name, err))
		}
	}
	s.collections = make(map[string]gedb.GEDB)
	return errors.Join(errs...)
}

// embeddedBody encodes doc through its bson tags, so field names match the
// mongo driver, and stores it under id.
func embeddedBody(doc any, id primitive.ObjectID) (map[string]any, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	body, _ := query.EmbeddedValue(m).(map[string]any)
	body[query.IDField] = id.Hex()
	return body, nil
}

// exposeID moves the stored identifier to "id", the json key of every entity.
func exposeID(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	out["id"] = doc[query.IDField]
	delete(out, query.IDField)
	return out
}

var _ Store = (*MemoryStore)(nil)
