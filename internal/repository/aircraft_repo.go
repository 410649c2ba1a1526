package repository

import (
	"context"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AircraftRepository interface {
	Create(ctx context.Context, aircraft *domain.Aircraft) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Aircraft, error)
	List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Aircraft, error)
	Update(ctx context.Context, aircraft *domain.Aircraft) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, p query.Predicate) (int64, error)
}

type StoreAircraftRepository struct {
	docs collection[domain.Aircraft]
}

func NewAircraftRepository(s store.Store) AircraftRepository {
	return &StoreAircraftRepository{docs: collection[domain.Aircraft]{store: s, name: domain.AircraftCollection, kind: "aircraft"}}
}

func (r *StoreAircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	aircraft.ID = primitive.NilObjectID
	id, err := r.docs.insert(ctx, aircraft)
	if err != nil {
		return err
	}
	aircraft.ID = id
	return nil
}

func (r *StoreAircraftRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Aircraft, error) {
	return r.docs.get(ctx, id)
}

func (r *StoreAircraftRepository) List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Aircraft, error) {
	return r.docs.list(ctx, p, page)
}

func (r *StoreAircraftRepository) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	return r.docs.replace(ctx, aircraft.ID, aircraft)
}

func (r *StoreAircraftRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.delete(ctx, id)
}

func (r *StoreAircraftRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	return r.docs.count(ctx, p)
}

var _ AircraftRepository = (*StoreAircraftRepository)(nil)
