package airlines

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/repository"
	"github.com/Domenick1991/airfleet/internal/repository/mocks"
	"github.com/Domenick1991/airfleet/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	airlines repository.AirlineRepository
	aircraft repository.AircraftRepository
	flights  repository.FlightRepository
	service  *AirlineService
}

func newFixture(opts ...AirlineServiceOption) *fixture {
	s := store.NewMemoryStore()
	f := &fixture{
		airlines: repository.NewAirlineRepository(s),
		aircraft: repository.NewAircraftRepository(s),
		flights:  repository.NewFlightRepository(s),
	}
	f.service = NewAirlineService(f.airlines, f.aircraft, f.flights, opts...)
	return f
}

func (f *fixture) airline(t *testing.T, nome, iata string) *domain.Airline {
	t.Helper()
	a, err := f.service.Create(context.Background(), domain.AirlineInput{Nome: nome, CodIATA: iata})
	require.NoError(t, err)
	return a
}

func firstPage(t *testing.T) query.Page {
	t.Helper()
	page, err := query.NewPage(0, query.DefaultLimit)
	require.NoError(t, err)
	return page
}

func TestAirlineService_CreateStartsWithEmptyFleet(t *testing.T) {
	f := newFixture()
	azul := f.airline(t, "Azul", "AD")

	require.NotNil(t, azul.Aeronaves)
	require.NotNil(t, azul.Voos)
	body, err := json.Marshal(azul)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"aeronaves":[]`)
	assert.Contains(t, string(body), `"voos":[]`)
}

func TestAirlineService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.airline(t, "LATAM", "LA")
	azul := f.airline(t, "Azul", "AD")
	f.airline(t, "Gol", "G3")

	t.Run("no filters keeps storage order", func(t *testing.T) {
		got, err := f.service.List(ctx, ListParams{Page: firstPage(t)})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"LATAM", "Azul", "Gol"}, []string{got[0].Nome, got[1].Nome, got[2].Nome})
	})

	t.Run("name search is case-insensitive", func(t *testing.T) {
		got, err := f.service.List(ctx, ListParams{BuscaTexto: "az", Page: firstPage(t)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, azul.ID, got[0].ID)
	})

	t.Run("sorted by name", func(t *testing.T) {
		got, err := f.service.List(ctx, ListParams{Ordenacao: "nome", Page: firstPage(t)})
		require.NoError(t, err)
		assert.Equal(t, []string{"Azul", "Gol", "LATAM"}, []string{got[0].Nome, got[1].Nome, got[2].Nome})
	})

	t.Run("no match is empty", func(t *testing.T) {
		got, err := f.service.List(ctx, ListParams{CodIATA: "zz", Page: firstPage(t)})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("bad id filter", func(t *testing.T) {
		_, err := f.service.List(ctx, ListParams{ID: "xyz", Page: firstPage(t)})
		assert.ErrorIs(t, err, domain.ErrInvalidFilterValue)
	})
}

func TestAirlineService_UpdateKeepsAbsentFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	azul := f.airline(t, "Azul", "AD")

	nome := "Azul Linhas Aéreas"
	got, err := f.service.Update(ctx, azul.ID, domain.AirlinePatch{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, nome, got.Nome)
	assert.Equal(t, "AD", got.CodIATA)

	_, err = f.service.Update(ctx, primitive.NewObjectID(), domain.AirlinePatch{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineService_DeleteMissing(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineService_DeleteReferenced(t *testing.T) {
	ctx := context.Background()
	airlines := new(mocks.AirlineRepository)
	aircraft := new(mocks.AircraftRepository)
	flights := new(mocks.FlightRepository)
	service := NewAirlineService(airlines, aircraft, flights)

	id := primitive.NewObjectID()
	airlines.On("GetByID", ctx, id).Return(&domain.Airline{ID: id}, nil)
	aircraft.On("Count", ctx, query.Where("cia", id)).Return(int64(2), nil)
	flights.On("Count", ctx, query.Where("cia", id)).Return(int64(0), nil)

	err := service.Delete(ctx, id)

	assert.ErrorIs(t, err, domain.ErrConflict)
	airlines.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	aircraft.AssertExpectations(t)
	flights.AssertExpectations(t)
}

func TestAirlineService_DeleteUnreferenced(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	azul := f.airline(t, "Azul", "AD")

	require.NoError(t, f.service.Delete(ctx, azul.ID))

	_, err := f.service.GetByID(ctx, azul.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineService_DeleteCountFailure(t *testing.T) {
	ctx := context.Background()
	airlines := new(mocks.AirlineRepository)
	aircraft := new(mocks.AircraftRepository)
	flights := new(mocks.FlightRepository)
	service := NewAirlineService(airlines, aircraft, flights)

	id := primitive.NewObjectID()
	boom := errors.New("connection reset")
	airlines.On("GetByID", ctx, id).Return(&domain.Airline{ID: id}, nil)
	aircraft.On("Count", ctx, mock.Anything).Return(int64(0), boom)

	assert.ErrorIs(t, service.Delete(ctx, id), boom)
}

func TestAirlineService_CountsAndComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	azul := f.airline(t, "Azul", "AD")
	gol := f.airline(t, "Gol", "G3")

	a320 := &domain.Aircraft{Modelo: "A320", Capacidade: 174, Cia: azul.ID}
	require.NoError(t, f.aircraft.Create(ctx, a320))
	require.NoError(t, f.aircraft.Create(ctx, &domain.Aircraft{Modelo: "737", Capacidade: 186, Cia: gol.ID}))
	flight := &domain.Flight{NumeroVoo: 4050, Origem: "VCP", Destino: "REC", Aeronave: a320.ID, Cia: azul.ID}
	require.NoError(t, f.flights.Create(ctx, flight))

	n, err := f.service.CountAircraft(ctx, azul.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = f.service.CountFlights(ctx, gol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = f.service.CountFlights(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.service.Complete(ctx, CompleteParams{ID: azul.ID.Hex(), Page: firstPage(t)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Azul", got[0].Nome)
	require.Len(t, got[0].Aeronaves, 1)
	assert.Equal(t, "A320", got[0].Aeronaves[0].Modelo)
	require.Len(t, got[0].Voos, 1)
	assert.Equal(t, 4050, got[0].Voos[0].NumeroVoo)

	all, err := f.service.Complete(ctx, CompleteParams{Page: firstPage(t)})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotNil(t, all[1].Voos)
	assert.Empty(t, all[1].Voos)

	_, err = f.service.Complete(ctx, CompleteParams{ID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A referenced airline can no longer be deleted.
	assert.ErrorIs(t, f.service.Delete(ctx, azul.ID), domain.ErrConflict)
}

func TestAirlineService_Reindex(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newFixture(WithClock(func() time.Time { return at }))
	azul := f.airline(t, "Azul", "AD")
	gol := f.airline(t, "Gol", "G3")

	a320 := &domain.Aircraft{Modelo: "A320", Capacidade: 174, Cia: azul.ID}
	require.NoError(t, f.aircraft.Create(ctx, a320))
	flight := &domain.Flight{NumeroVoo: 4050, Aeronave: a320.ID, Cia: azul.ID}
	require.NoError(t, f.flights.Create(ctx, flight))

	got, err := f.service.Reindex(ctx, azul.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a320.ID}, got.Aeronaves)
	assert.Equal(t, []primitive.ObjectID{flight.ID}, got.Voos)

	stored, err := f.service.GetByID(ctx, azul.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a320.ID}, stored.Aeronaves)
	require.NotNil(t, stored.IndexadoEm)
	assert.True(t, at.Equal(*stored.IndexadoEm))

	n, err := f.service.ReindexAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stored, err = f.service.GetByID(ctx, gol.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Aeronaves)
	assert.NotNil(t, stored.IndexadoEm)

	_, err = f.service.Reindex(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
