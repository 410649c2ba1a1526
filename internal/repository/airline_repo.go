package repository

import (
	"context"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AirlineRepository interface {
	Create(ctx context.Context, airline *domain.Airline) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error)
	List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Airline, error)
	Update(ctx context.Context, airline *domain.Airline) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type StoreAirlineRepository struct {
	docs collection[domain.Airline]
}

func NewAirlineRepository(s store.Store) AirlineRepository {
	return &StoreAirlineRepository{docs: collection[domain.Airline]{store: s, name: domain.AirlineCollection, kind: "airline"}}
}

func (r *StoreAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	airline.ID = primitive.NilObjectID
	id, err := r.docs.insert(ctx, airline)
	if err != nil {
		return err
	}
	airline.ID = id
	return nil
}

func (r *StoreAirlineRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	return r.docs.get(ctx, id)
}

func (r *StoreAirlineRepository) List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Airline, error) {
	return r.docs.list(ctx, p, page)
}

func (r *StoreAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	return r.docs.replace(ctx, airline.ID, airline)
}

func (r *StoreAirlineRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.delete(ctx, id)
}

var _ AirlineRepository = (*StoreAirlineRepository)(nil)
