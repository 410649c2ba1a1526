// Package store holds the document store adapters. Every adapter takes and
// returns whole documents; filters arrive as query.Predicate values.
package store

import (
	"context"
	"errors"

	"github.com/Domenick1991/airfleet/internal/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoDocument is returned when no document matches a single-document
// operation.
var ErrNoDocument = errors.New("no document")

// Store is the document store contract shared by all drivers.
type Store interface {
	// FindOne decodes the first match into dest.
	FindOne(ctx context.Context, collection string, p query.Predicate, dest any) error
	// FindMany decodes matches in natural storage order into dest, a pointer
	// to a slice.
	FindMany(ctx context.Context, collection string, p query.Predicate, page query.Page, dest any) error
	// Insert stores doc and returns the identifier assigned to it.
	Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	// Replace overwrites the whole document with the given identifier.
	Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error
	Delete(ctx context.Context, collection string, id primitive.ObjectID) error
	Count(ctx context.Context, collection string, p query.Predicate) (int64, error)
	// AggregateCount groups matches by field and counts each group. Keys are
	// the group values rendered as strings; identifiers render as hex.
	AggregateCount(ctx context.Context, collection, field string, p query.Predicate) (map[string]int64, error)
	// EnsureIndexes creates single-field indexes on the given fields.
	EnsureIndexes(ctx context.Context, collection string, fields ...string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
