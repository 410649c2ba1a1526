// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AirlineRepository struct {
	mock.Mock
}

func (m *AirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *AirlineRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *AirlineRepository) List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Airline, error) {
	args := m.Called(ctx, p, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *AirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *AirlineRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AircraftRepository struct {
	mock.Mock
}

func (m *AircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *AircraftRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *AircraftRepository) List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Aircraft, error) {
	args := m.Called(ctx, p, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *AircraftRepository) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *AircraftRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AircraftRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

type FlightRepository struct {
	mock.Mock
}

func (m *FlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *FlightRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *FlightRepository) List(ctx context.Context, p query.Predicate, page query.Page) ([]domain.Flight, error) {
	args := m.Called(ctx, p, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *FlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *FlightRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FlightRepository) Count(ctx context.Context, p query.Predicate) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FlightRepository) CountBy(ctx context.Context, field string, p query.Predicate) (map[string]int64, error) {
	args := m.Called(ctx, field, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

var (
	_ repository.AirlineRepository  = (*AirlineRepository)(nil)
	_ repository.AircraftRepository = (*AircraftRepository)(nil)
	_ repository.FlightRepository   = (*FlightRepository)(nil)
)
