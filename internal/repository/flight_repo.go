package repository

import (
	"context"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error)
	List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Flight, error)
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context, p query.Predicate) (int64, error)
	// CountBy groups flights by a reference field ("cia" or "aeronave").
	CountBy(ctx context.Context, field string, p query.Predicate) (map[string]int64, error)
}

type StoreFlightRepository struct {
	docs collection[domain.Flight]
}

func NewFlightRepository(s store.Store) FlightRepository {
	return &StoreFlightRepository{docs: collection[domain.Flight]{store: s, name: domain.FlightCollection, kind: "flight"}}
}

func (r *StoreFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	flight.ID = primitive.NilObjectID
	id, err := r.docs.insert(ctx, flight)
	if err != nil {
		return err
	}
	flight.ID = id
	return nil
}

func (r *StoreFlightRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	return r.docs.get(ctx, id)
}

func (r *StoreFlightRepository) List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Flight, error) {
	return r.docs.list(ctx, p, page)
}

func (r *StoreFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	return r.docs.replace(ctx, flight.ID, flight)
}

func (r *StoreFlightRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.delete(ctx, id)
}

func (r *StoreFlightRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	return r.docs.count(ctx, p)
}

func (r *StoreFlightRepository) CountBy(ctx context.Context, field string, p query.Predicate) (map[string]int64, error) {
	return r.docs.countBy(ctx, field, p)
}

var _ FlightRepository = (*StoreFlightRepository)(nil)
