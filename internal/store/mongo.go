package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Domenick1991/airfleet/internal/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type MongoConfig struct {
	URI              string
	Database         string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
}

// MongoStore is the MongoDB driver.
type MongoStore struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
	log      *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// NewMongoStore connects and pings the primary. It does not create
// collections or indexes.
func NewMongoStore(ctx context.Context, cfg MongoConfig, log *zap.Logger) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongodb uri is required")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongodb database is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 5 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("mongodb connection established", zap.String("database", cfg.Database))
	return &MongoStore{
		client:   client,
		database: cfg.Database,
		timeout:  cfg.OperationTimeout,
		log:      log,
	}, nil
}

func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.client.Database(s.database).Collection(name)
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, p query.Predicate, dest any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.collection(collection).FindOne(ctx, p.BSON()).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	return err
}

func (s *MongoStore) FindMany(ctx context.Context, collection string, p query.Predicate, page query.Page, dest any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSkip(page.Skip)
	if !page.Unbounded() {
		opts.SetLimit(page.Limit)
	}
	cur, err := s.collection(collection).Find(ctx, p.BSON(), opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, dest)
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *MongoStore) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context, collection string, p query.Predicate) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.collection(collection).CountDocuments(ctx, p.BSON())
}

func (s *MongoStore) AggregateCount(ctx context.Context, collection, field string, p query.Predicate) (map[string]int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: p.BSON()}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "total": bson.M{"$sum": 1}}}},
	}
	cur, err := s.collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID    any   `bson:"_id"`
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[groupKey(r.ID)] += r.Total
	}
	return out, nil
}

func (s *MongoStore) EnsureIndexes(ctx context.Context, collection string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	models := make([]mongo.IndexModel, 0, len(fields))
	for _, f := range fields {
		models = append(models, mongo.IndexModel{Keys: bson.D{{Key: f, Value: 1}}})
	}
	_, err := s.collection(collection).Indexes().CreateMany(ctx, models)
	return err
}

func (s *MongoStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return errors.New("mongodb store is closed")
	}
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("close mongodb: %w", err)
	}
	return nil
}

// withTimeout bounds an operation unless the caller already set a deadline.
func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func groupKey(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

var _ Store = (*MongoStore)(nil)
