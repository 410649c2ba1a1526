package aircraft

import (
	"cmp"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/repository"
	"github.com/Domenick1991/airfleet/internal/service/refs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AircraftUseCase interface {
	Create(ctx context.Context, input domain.AircraftInput) (*domain.Aircraft, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Aircraft, error)
	List(ctx context.Context, params ListParams) ([]domain.Aircraft, error)
	Update(ctx context.Context, id primitive.ObjectID, input domain.AircraftInput) (*domain.Aircraft, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Complete(ctx context.Context, params CompleteParams) ([]domain.AircraftComplete, error)
	FlightsPerModel(ctx context.Context) (map[string]int64, error)
}

type ListParams struct {
	ID              string
	Modelo          string
	Capacidade      string
	CiaID           string
	LastCheckInicio string
	LastCheckFim    string
	NextCheckInicio string
	NextCheckFim    string
	Ordenacao       string
	Page            query.Page
}

type CompleteParams struct {
	ID   string
	Page query.Page
}

var sortKeys = query.SortKeys[domain.Aircraft]{
	"modelo":     func(a, b domain.Aircraft) int { return strings.Compare(a.Modelo, b.Modelo) },
	"capacidade": func(a, b domain.Aircraft) int { return cmp.Compare(a.Capacidade, b.Capacidade) },
	"last_check": func(a, b domain.Aircraft) int { return a.LastCheck.Compare(b.LastCheck) },
	"next_check": func(a, b domain.Aircraft) int { return a.NextCheck.Compare(b.NextCheck) },
}

type AircraftService struct {
	aircraft repository.AircraftRepository
	flights  repository.FlightRepository
	refs     *refs.Resolver
	log      *zap.Logger
	now      func() time.Time
}

type AircraftServiceOption func(*AircraftService)

func WithLogger(log *zap.Logger) AircraftServiceOption {
	return func(s *AircraftService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) AircraftServiceOption {
	return func(s *AircraftService) {
		s.now = now
	}
}

func NewAircraftService(
	aircraft repository.AircraftRepository,
	flights repository.FlightRepository,
	resolver *refs.Resolver,
	opts ...AircraftServiceOption,
) *AircraftService {
	service := &AircraftService{
		aircraft: aircraft,
		flights:  flights,
		refs:     resolver,
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AircraftService) Create(ctx context.Context, input domain.AircraftInput) (*domain.Aircraft, error) {
	aircraft, err := s.fromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.aircraft.Create(ctx, aircraft); err != nil {
		return nil, err
	}
	s.log.Debug("aircraft created", zap.String("id", aircraft.ID.Hex()), zap.String("cia", aircraft.Cia.Hex()))
	return aircraft, nil
}

func (s *AircraftService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Aircraft, error) {
	return s.aircraft.GetByID(ctx, id)
}

func (s *AircraftService) List(ctx context.Context, params ListParams) ([]domain.Aircraft, error) {
	p, err := query.NewBuilder().
		ID(params.ID).
		Contains("modelo", params.Modelo).
		IntEqual("capacidade", params.Capacidade).
		Ref("cia", params.CiaID).
		From("last_check", params.LastCheckInicio).
		To("last_check", params.LastCheckFim).
		From("next_check", params.NextCheckInicio).
		To("next_check", params.NextCheckFim).
		Build()
	if err != nil {
		return nil, err
	}
	aircraft, err := s.aircraft.List(ctx, p, params.Page)
	if err != nil {
		return nil, err
	}
	query.SortStable(aircraft, params.Ordenacao, sortKeys)
	return aircraft, nil
}

// Update overwrites every field of an existing aircraft.
func (s *AircraftService) Update(ctx context.Context, id primitive.ObjectID, input domain.AircraftInput) (*domain.Aircraft, error) {
	if _, err := s.aircraft.GetByID(ctx, id); err != nil {
		return nil, err
	}
	aircraft, err := s.fromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	aircraft.ID = id
	if err := s.aircraft.Update(ctx, aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (s *AircraftService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.aircraft.Delete(ctx, id)
}

func (s *AircraftService) Complete(ctx context.Context, params CompleteParams) ([]domain.AircraftComplete, error) {
	var aircraft []domain.Aircraft
	if strings.TrimSpace(params.ID) != "" {
		id, err := domain.ParseID("aircraft", params.ID)
		if err != nil {
			return nil, err
		}
		a, err := s.aircraft.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		aircraft = []domain.Aircraft{*a}
	} else {
		var err error
		aircraft, err = s.aircraft.List(ctx, query.Predicate{}, params.Page)
		if err != nil {
			return nil, err
		}
	}

	out := make([]domain.AircraftComplete, 0, len(aircraft))
	for _, a := range aircraft {
		cia, err := s.refs.AirlineSummary(ctx, a.Cia)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.AircraftComplete{AircraftDetail: a.Detail(), Cia: cia})
	}
	return out, nil
}

// FlightsPerModel counts flights per aircraft model. Every model in the fleet
// appears, with zero when none of its aircraft flies.
func (s *AircraftService) FlightsPerModel(ctx context.Context) (map[string]int64, error) {
	perAircraft, err := s.flights.CountBy(ctx, "aeronave", query.Predicate{})
	if err != nil {
		return nil, err
	}
	fleet, err := s.aircraft.List(ctx, query.Predicate{}, query.All)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(fleet))
	for _, a := range fleet {
		out[a.Modelo] += perAircraft[a.ID.Hex()]
	}
	return out, nil
}

func (s *AircraftService) fromInput(ctx context.Context, input domain.AircraftInput) (*domain.Aircraft, error) {
	if strings.TrimSpace(input.Modelo) == "" {
		return nil, fmt.Errorf("modelo is required: %w", domain.ErrInvalidInput)
	}
	if input.Capacidade <= 0 {
		return nil, fmt.Errorf("capacidade must be positive, got %d: %w", input.Capacidade, domain.ErrInvalidInput)
	}
	voos, err := domain.ParseIDs("voos", input.Voos)
	if err != nil {
		return nil, err
	}
	cia, err := s.refs.Airline(ctx, input.Cia)
	if err != nil {
		return nil, err
	}

	// BSON datetimes keep millisecond precision.
	now := s.now().UTC().Truncate(time.Millisecond)
	aircraft := &domain.Aircraft{
		Modelo:     input.Modelo,
		Capacidade: input.Capacidade,
		LastCheck:  now,
		NextCheck:  now,
		Cia:        cia,
		Voos:       voos,
	}
	if input.LastCheck != nil {
		aircraft.LastCheck = input.LastCheck.UTC()
	}
	if input.NextCheck != nil {
		aircraft.NextCheck = input.NextCheck.UTC()
	}
	return aircraft, nil
}

var _ AircraftUseCase = (*AircraftService)(nil)
