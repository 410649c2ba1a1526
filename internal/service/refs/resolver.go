// Package refs resolves entity references. On write a reference must point at
// an existing entity and is stored as its canonical identifier; on read a
// stored identifier is expanded into a summary, or nil when it dangles.
package refs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airfleet/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AirlineFinder interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error)
}

type AircraftFinder interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Aircraft, error)
}

type Resolver struct {
	airlines AirlineFinder
	aircraft AircraftFinder
}

func NewResolver(airlines AirlineFinder, aircraft AircraftFinder) *Resolver {
	return &Resolver{airlines: airlines, aircraft: aircraft}
}

// Airline returns the canonical identifier of the referenced airline.
func (r *Resolver) Airline(ctx context.Context, ref domain.Reference) (primitive.ObjectID, error) {
	id, err := ref.Normalize()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("cia: %w", err)
	}
	airline, err := r.airlines.GetByID(ctx, id)
	if err != nil {
		return primitive.NilObjectID, lookupErr("cia", id, err)
	}
	return airline.ID, nil
}

// Aircraft returns the canonical identifier of the referenced aircraft.
func (r *Resolver) Aircraft(ctx context.Context, ref domain.Reference) (primitive.ObjectID, error) {
	id, err := ref.Normalize()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("aeronave: %w", err)
	}
	aircraft, err := r.aircraft.GetByID(ctx, id)
	if err != nil {
		return primitive.NilObjectID, lookupErr("aeronave", id, err)
	}
	return aircraft.ID, nil
}

// AirlineSummary expands id, returning nil when the airline no longer exists.
func (r *Resolver) AirlineSummary(ctx context.Context, id primitive.ObjectID) (*domain.AirlineSummary, error) {
	if id.IsZero() {
		return nil, nil
	}
	airline, err := r.airlines.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return airline.Summary(), nil
}

// AircraftSummary expands id, returning nil when the aircraft no longer exists.
func (r *Resolver) AircraftSummary(ctx context.Context, id primitive.ObjectID) (*domain.AircraftSummary, error) {
	if id.IsZero() {
		return nil, nil
	}
	aircraft, err := r.aircraft.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return aircraft.Summary(), nil
}

func lookupErr(field string, id primitive.ObjectID, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", field, id.Hex(), domain.ErrReferenceNotFound)
	}
	return err
}
