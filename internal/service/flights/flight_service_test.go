package flights

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/repository"
	"github.com/Domenick1991/airfleet/internal/repository/mocks"
	"github.com/Domenick1991/airfleet/internal/service/refs"
	"github.com/Domenick1991/airfleet/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	airlines repository.AirlineRepository
	aircraft repository.AircraftRepository
	service  *FlightService

	azul, gol *domain.Airline
	a320      *domain.Aircraft
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	f := &fixture{
		airlines: repository.NewAirlineRepository(s),
		aircraft: repository.NewAircraftRepository(s),
	}
	flights := repository.NewFlightRepository(s)
	f.service = NewFlightService(flights, f.airlines, refs.NewResolver(f.airlines, f.aircraft))

	f.azul = &domain.Airline{Nome: "Azul", CodIATA: "AD"}
	f.gol = &domain.Airline{Nome: "Gol", CodIATA: "G3"}
	require.NoError(t, f.airlines.Create(ctx, f.azul))
	require.NoError(t, f.airlines.Create(ctx, f.gol))
	f.a320 = &domain.Aircraft{Modelo: "A320", Capacidade: 174, Cia: f.azul.ID}
	require.NoError(t, f.aircraft.Create(ctx, f.a320))
	return f
}

func (f *fixture) flight(t *testing.T, numero int, origem, destino, partida string, cia primitive.ObjectID) *domain.Flight {
	t.Helper()
	dep, err := time.Parse(time.RFC3339, partida)
	require.NoError(t, err)
	created, err := f.service.Create(context.Background(), domain.FlightInput{
		NumeroVoo: numero,
		Origem:    origem,
		Destino:   destino,
		HrPartida: dep,
		HrChegada: dep.Add(2 * time.Hour),
		Status:    "Programado",
		Aeronave:  domain.RefOf(f.a320.ID),
		Cia:       domain.RefOf(cia),
	})
	require.NoError(t, err)
	return created
}

func page(t *testing.T) query.Page {
	t.Helper()
	p, err := query.NewPage(0, query.MaxLimit)
	require.NoError(t, err)
	return p
}

func TestFlightService_CreateResolvesReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	dep := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	base := domain.FlightInput{
		NumeroVoo: 4050,
		Origem:    "VCP",
		Destino:   "REC",
		HrPartida: dep,
		HrChegada: dep.Add(3 * time.Hour),
		Aeronave:  domain.RefOf(f.a320.ID),
		Cia:       domain.RefOf(f.azul.ID),
	}

	created, err := f.service.Create(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, f.azul.ID, created.Cia)
	assert.Equal(t, f.a320.ID, created.Aeronave)

	missingCia := base
	missingCia.Cia = domain.RefOf(primitive.NewObjectID())
	_, err = f.service.Create(ctx, missingCia)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	missingAircraft := base
	missingAircraft.Aeronave = domain.NewReference("nonexistent")
	_, err = f.service.Create(ctx, missingAircraft)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	noTimes := base
	noTimes.HrChegada = time.Time{}
	_, err = f.service.Create(ctx, noTimes)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	all, err := f.service.List(ctx, ListParams{Page: page(t)})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFlightService_ListFilters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.flight(t, 4050, "VCP", "REC", "2024-06-01T09:00:00Z", f.azul.ID)
	f.flight(t, 1200, "GRU", "Recife", "2024-06-02T00:00:00Z", f.gol.ID)
	f.flight(t, 3001, "CNF", "POA", "2024-06-03T12:00:00Z", f.azul.ID)

	tests := []struct {
		name   string
		params ListParams
		want   []int
	}{
		{"no filters", ListParams{}, []int{4050, 1200, 3001}},
		{"text on origin or destination", ListParams{BuscaTexto: "rec"}, []int{4050, 1200}},
		{"inclusive departure range", ListParams{DataInicio: "2024-06-02", DataFim: "2024-06-02"}, []int{1200}},
		{"open range", ListParams{DataInicio: "2024-06-02"}, []int{1200, 3001}},
		{"airline id", ListParams{CiaID: f.gol.ID.Hex()}, []int{1200}},
		{"airline name", ListParams{CompanhiaNome: "AZU"}, []int{4050, 3001}},
		{"airline name without match", ListParams{CompanhiaNome: "LATAM"}, []int{}},
		{"status partial", ListParams{Status: "program"}, []int{4050, 1200, 3001}},
		{"sorted by number", ListParams{Ordenacao: "numero_voo"}, []int{1200, 3001, 4050}},
		{"unknown sort key", ListParams{Ordenacao: "preco"}, []int{4050, 1200, 3001}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Page = page(t)
			got, err := f.service.List(ctx, tt.params)
			require.NoError(t, err)
			numbers := make([]int, 0, len(got))
			for _, fl := range got {
				numbers = append(numbers, fl.NumeroVoo)
			}
			assert.Equal(t, tt.want, numbers)
		})
	}

	_, err := f.service.List(ctx, ListParams{AeronaveID: "A320", Page: page(t)})
	assert.ErrorIs(t, err, domain.ErrInvalidFilterValue)
}

func TestFlightService_CompleteAndCounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fl := f.flight(t, 4050, "VCP", "REC", "2024-06-01T09:00:00Z", f.azul.ID)
	f.flight(t, 4051, "REC", "VCP", "2024-06-01T15:00:00Z", f.azul.ID)
	f.flight(t, 1200, "GRU", "SSA", "2024-06-02T00:00:00Z", f.gol.ID)

	got, err := f.service.Complete(ctx, CompleteParams{ID: fl.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Cia)
	require.NotNil(t, got[0].Aeronave)
	assert.Equal(t, "Azul", got[0].Cia.Nome)
	assert.Equal(t, "A320", got[0].Aeronave.Modelo)

	require.NoError(t, f.aircraft.Delete(ctx, f.a320.ID))
	got, err = f.service.Complete(ctx, CompleteParams{Page: page(t)})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Nil(t, got[2].Aeronave)
	assert.Equal(t, "Gol", got[2].Cia.Nome)

	counts, err := f.service.CountByAirline(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{f.azul.ID.Hex(): 2, f.gol.ID.Hex(): 1}, counts)

	_, err = f.service.Complete(ctx, CompleteParams{ID: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFlightService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fl := f.flight(t, 4050, "VCP", "REC", "2024-06-01T09:00:00Z", f.azul.ID)

	input := domain.FlightInput{
		NumeroVoo: 4050,
		Origem:    "VCP",
		Destino:   "REC",
		HrPartida: fl.HrPartida,
		HrChegada: fl.HrChegada,
		Status:    "Cancelado",
		Aeronave:  domain.RefOf(f.a320.ID),
		Cia:       domain.RefOf(f.gol.ID),
	}
	updated, err := f.service.Update(ctx, fl.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Cancelado", updated.Status)
	assert.Equal(t, f.gol.ID, updated.Cia)

	require.NoError(t, f.service.Delete(ctx, fl.ID))
	assert.ErrorIs(t, f.service.Delete(ctx, fl.ID), domain.ErrNotFound)

	_, err = f.service.Update(ctx, fl.ID, input)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFlightService_CompanhiaNomeUsesAirlineIDs(t *testing.T) {
	ctx := context.Background()
	flightRepo := new(mocks.FlightRepository)
	airlineRepo := new(mocks.AirlineRepository)
	service := NewFlightService(flightRepo, airlineRepo, refs.NewResolver(airlineRepo, new(mocks.AircraftRepository)))

	azul := domain.Airline{ID: primitive.NewObjectID(), Nome: "Azul"}
	byName, err := query.NewBuilder().Contains("nome", "azul").Build()
	require.NoError(t, err)
	want, err := query.NewBuilder().In("cia", []primitive.ObjectID{azul.ID}).Build()
	require.NoError(t, err)

	airlineRepo.On("List", ctx, byName, query.All).Return([]domain.Airline{azul}, nil)
	flightRepo.On("List", ctx, want, mock.Anything).Return([]domain.Flight{}, nil)

	got, err := service.List(ctx, ListParams{CompanhiaNome: "azul", Page: query.Page{Limit: 10}})

	require.NoError(t, err)
	assert.Empty(t, got)
	airlineRepo.AssertExpectations(t)
	flightRepo.AssertExpectations(t)
}
