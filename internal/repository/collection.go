package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// collection is the typed view of one store collection shared by the
// entity repositories. kind names the entity in errors.
type collection[T any] struct {
	store store.Store
	name  string
	kind  string
}

func (c collection[T]) get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := c.store.FindOne(ctx, c.name, query.ByID(id), &doc)
	if errors.Is(err, store.ErrNoDocument) {
		return nil, fmt.Errorf("%s %s: %w", c.kind, id.Hex(), domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.kind, err)
	}
	return &doc, nil
}

func (c collection[T]) list(ctx context.Context, p query.Predicate, page query.Page) ([]T, error) {
	docs := make([]T, 0)
	if err := c.store.FindMany(ctx, c.name, p, page, &docs); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind, err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (c collection[T]) insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	id, err := c.store.Insert(ctx, c.name, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", c.kind, err)
	}
	return id, nil
}

func (c collection[T]) replace(ctx context.Context, id primitive.ObjectID, doc *T) error {
	err := c.store.Replace(ctx, c.name, id, doc)
	if errors.Is(err, store.ErrNoDocument) {
		return fmt.Errorf("%s %s: %w", c.kind, id.Hex(), domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("replace %s: %w", c.kind, err)
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	err := c.store.Delete(ctx, c.name, id)
	if errors.Is(err, store.ErrNoDocument) {
		return fmt.Errorf("%s %s: %w", c.kind, id.Hex(), domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.kind, err)
	}
	return nil
}

func (c collection[T]) count(ctx context.Context, p query.Predicate) (int64, error) {
	n, err := c.store.Count(ctx, c.name, p)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.kind, err)
	}
	return n, nil
}

func (c collection[T]) countBy(ctx context.Context, field string, p query.Predicate) (map[string]int64, error) {
	out, err := c.store.AggregateCount(ctx, c.name, field, p)
	if err != nil {
		return nil, fmt.Errorf("count %s by %s: %w", c.kind, field, err)
	}
	if out == nil {
		out = map[string]int64{}
	}
	return out, nil
}
