package airlines

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AirlineUseCase interface {
	Create(ctx context.Context, input domain.AirlineInput) (*domain.Airline, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error)
	List(ctx context.Context, params ListParams) ([]domain.Airline, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.AirlinePatch) (*domain.Airline, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountAircraft(ctx context.Context, id primitive.ObjectID) (int64, error)
	CountFlights(ctx context.Context, id primitive.ObjectID) (int64, error)
	Complete(ctx context.Context, params CompleteParams) ([]domain.AirlineComplete, error)
	Reindex(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error)
	ReindexAll(ctx context.Context) (int, error)
}

// ListParams are the raw filter values of an airline listing.
type ListParams struct {
	ID         string
	CodIATA    string
	BuscaTexto string
	Ordenacao  string
	Page       query.Page
}

// CompleteParams selects one airline by ID, or a page of all airlines when ID
// is empty.
type CompleteParams struct {
	ID   string
	Page query.Page
}

var sortKeys = query.SortKeys[domain.Airline]{
	"nome":     func(a, b domain.Airline) int { return strings.Compare(a.Nome, b.Nome) },
	"cod_iata": func(a, b domain.Airline) int { return strings.Compare(a.CodIATA, b.CodIATA) },
}

type AirlineService struct {
	airlines repository.AirlineRepository
	aircraft repository.AircraftRepository
	flights  repository.FlightRepository
	log      *zap.Logger
	now      func() time.Time
}

type AirlineServiceOption func(*AirlineService)

func WithLogger(log *zap.Logger) AirlineServiceOption {
	return func(s *AirlineService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) AirlineServiceOption {
	return func(s *AirlineService) {
		s.now = now
	}
}

func NewAirlineService(
	airlines repository.AirlineRepository,
	aircraft repository.AircraftRepository,
	flights repository.FlightRepository,
	opts ...AirlineServiceOption,
) *AirlineService {
	service := &AirlineService{
		airlines: airlines,
		aircraft: aircraft,
		flights:  flights,
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AirlineService) Create(ctx context.Context, input domain.AirlineInput) (*domain.Airline, error) {
	airline := &domain.Airline{
		Nome:    input.Nome,
		CodIATA: input.CodIATA,
		FleetIndex: domain.FleetIndex{
			Aeronaves: []primitive.ObjectID{},
			Voos:      []primitive.ObjectID{},
		},
	}
	if err := s.airlines.Create(ctx, airline); err != nil {
		return nil, err
	}
	s.log.Debug("airline created", zap.String("id", airline.ID.Hex()), zap.String("cod_iata", airline.CodIATA))
	return airline, nil
}

func (s *AirlineService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	return s.airlines.GetByID(ctx, id)
}

func (s *AirlineService) List(ctx context.Context, params ListParams) ([]domain.Airline, error) {
	p, err := query.NewBuilder().
		ID(params.ID).
		Contains("cod_iata", params.CodIATA).
		Contains("nome", params.BuscaTexto).
		Build()
	if err != nil {
		return nil, err
	}
	airlines, err := s.airlines.List(ctx, p, params.Page)
	if err != nil {
		return nil, err
	}
	query.SortStable(airlines, params.Ordenacao, sortKeys)
	return airlines, nil
}

func (s *AirlineService) Update(ctx context.Context, id primitive.ObjectID, patch domain.AirlinePatch) (*domain.Airline, error) {
	airline, err := s.airlines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(airline)
	if err := s.airlines.Update(ctx, airline); err != nil {
		return nil, err
	}
	return airline, nil
}

// Delete removes an airline that nothing references any more.
func (s *AirlineService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.airlines.GetByID(ctx, id); err != nil {
		return err
	}
	byCia := query.Where("cia", id)
	aircraft, err := s.aircraft.Count(ctx, byCia)
	if err != nil {
		return err
	}
	flights, err := s.flights.Count(ctx, byCia)
	if err != nil {
		return err
	}
	if aircraft > 0 || flights > 0 {
		return fmt.Errorf("airline %s is referenced by %d aircraft and %d flights: %w",
			id.Hex(), aircraft, flights, domain.ErrConflict)
	}
	if err := s.airlines.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug("airline deleted", zap.String("id", id.Hex()))
	return nil
}

func (s *AirlineService) CountAircraft(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, err := s.airlines.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return s.aircraft.Count(ctx, query.Where("cia", id))
}

func (s *AirlineService) CountFlights(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, err := s.airlines.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return s.flights.Count(ctx, query.Where("cia", id))
}

func (s *AirlineService) Complete(ctx context.Context, params CompleteParams) ([]domain.AirlineComplete, error) {
	var airlines []domain.Airline
	if strings.TrimSpace(params.ID) != "" {
		id, err := domain.ParseID("airline", params.ID)
		if err != nil {
			return nil, err
		}
		airline, err := s.airlines.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		airlines = []domain.Airline{*airline}
	} else {
		var err error
		airlines, err = s.airlines.List(ctx, query.Predicate{}, params.Page)
		if err != nil {
			return nil, err
		}
	}

	out := make([]domain.AirlineComplete, 0, len(airlines))
	for _, a := range airlines {
		complete, err := s.complete(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, complete)
	}
	return out, nil
}

func (s *AirlineService) complete(ctx context.Context, a domain.Airline) (domain.AirlineComplete, error) {
	byCia := query.Where("cia", a.ID)
	aircraft, err := s.aircraft.List(ctx, byCia, query.All)
	if err != nil {
		return domain.AirlineComplete{}, err
	}
	flights, err := s.flights.List(ctx, byCia, query.All)
	if err != nil {
		return domain.AirlineComplete{}, err
	}

	complete := domain.AirlineComplete{
		ID:        a.ID,
		Nome:      a.Nome,
		CodIATA:   a.CodIATA,
		Aeronaves: make([]domain.AircraftDetail, 0, len(aircraft)),
		Voos:      make([]domain.FlightDetail, 0, len(flights)),
	}
	for _, ac := range aircraft {
		complete.Aeronaves = append(complete.Aeronaves, ac.Detail())
	}
	for _, f := range flights {
		complete.Voos = append(complete.Voos, f.Detail())
	}
	return complete, nil
}

// Reindex rebuilds the airline's back-reference cache from the aircraft and
// flights that currently reference it.
func (s *AirlineService) Reindex(ctx context.Context, id primitive.ObjectID) (*domain.Airline, error) {
	airline, err := s.airlines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.reindex(ctx, airline); err != nil {
		return nil, err
	}
	return airline, nil
}

func (s *AirlineService) ReindexAll(ctx context.Context) (int, error) {
	airlines, err := s.airlines.List(ctx, query.Predicate{}, query.All)
	if err != nil {
		return 0, err
	}
	for i := range airlines {
		if err := s.reindex(ctx, &airlines[i]); err != nil {
			return i, err
		}
	}
	s.log.Info("airlines reindexed", zap.Int("count", len(airlines)))
	return len(airlines), nil
}

func (s *AirlineService) reindex(ctx context.Context, airline *domain.Airline) error {
	byCia := query.Where("cia", airline.ID)
	aircraft, err := s.aircraft.List(ctx, byCia, query.All)
	if err != nil {
		return err
	}
	flights, err := s.flights.List(ctx, byCia, query.All)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	airline.FleetIndex = domain.FleetIndex{
		Aeronaves:  make([]primitive.ObjectID, 0, len(aircraft)),
		Voos:       make([]primitive.ObjectID, 0, len(flights)),
		IndexadoEm: &now,
	}
	for _, ac := range aircraft {
		airline.Aeronaves = append(airline.Aeronaves, ac.ID)
	}
	for _, f := range flights {
		airline.Voos = append(airline.Voos, f.ID)
	}
	if err := s.airlines.Update(ctx, airline); err != nil {
		s.log.Error("reindex airline", zap.String("id", airline.ID.Hex()), zap.Error(err))
		return err
	}
	return nil
}

var _ AirlineUseCase = (*AirlineService)(nil)
