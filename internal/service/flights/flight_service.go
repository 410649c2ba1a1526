package flights

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/repository"
	"github.com/Domenick1991/airfleet/internal/service/refs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error)
	List(ctx context.Context, params ListParams) ([]domain.Flight, error)
	Update(ctx context.Context, id primitive.ObjectID, input domain.FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Complete(ctx context.Context, params CompleteParams) ([]domain.FlightComplete, error)
	CountByAirline(ctx context.Context) (map[string]int64, error)
}

type ListParams struct {
	ID         string
	DataInicio string
	DataFim    string
	BuscaTexto string
	CiaID      string
	AeronaveID string
	Status     string
	// CompanhiaNome selects flights whose airline name contains the value.
	CompanhiaNome string
	Ordenacao     string
	Page          query.Page
}

type CompleteParams struct {
	ID   string
	Page query.Page
}

var sortKeys = query.SortKeys[domain.Flight]{
	"hr_partida": func(a, b domain.Flight) int { return a.HrPartida.Compare(b.HrPartida) },
	"hr_chegada": func(a, b domain.Flight) int { return a.HrChegada.Compare(b.HrChegada) },
	"numero_voo": func(a, b domain.Flight) int { return cmp.Compare(a.NumeroVoo, b.NumeroVoo) },
}

type FlightService struct {
	flights  repository.FlightRepository
	airlines repository.AirlineRepository
	refs     *refs.Resolver
	log      *zap.Logger
}

type FlightServiceOption func(*FlightService)

func WithLogger(log *zap.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.log = log
	}
}

func NewFlightService(
	flights repository.FlightRepository,
	airlines repository.AirlineRepository,
	resolver *refs.Resolver,
	opts ...FlightServiceOption,
) *FlightService {
	service := &FlightService{
		flights:  flights,
		airlines: airlines,
		refs:     resolver,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	flight, err := s.fromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.log.Debug("flight created", zap.String("id", flight.ID.Hex()), zap.Int("numero_voo", flight.NumeroVoo))
	return flight, nil
}

func (s *FlightService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

func (s *FlightService) List(ctx context.Context, params ListParams) ([]domain.Flight, error) {
	b := query.NewBuilder().
		ID(params.ID).
		From("hr_partida", params.DataInicio).
		To("hr_partida", params.DataFim).
		AnyContains(params.BuscaTexto, "origem", "destino").
		Ref("cia", params.CiaID).
		Ref("aeronave", params.AeronaveID).
		Contains("status", params.Status)

	if params.CompanhiaNome != "" {
		p, err := query.NewBuilder().Contains("nome", params.CompanhiaNome).Build()
		if err != nil {
			return nil, err
		}
		airlines, err := s.airlines.List(ctx, p, query.All)
		if err != nil {
			return nil, err
		}
		ids := make([]primitive.ObjectID, 0, len(airlines))
		for _, a := range airlines {
			ids = append(ids, a.ID)
		}
		b.In("cia", ids)
	}

	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	flights, err := s.flights.List(ctx, p, params.Page)
	if err != nil {
		return nil, err
	}
	query.SortStable(flights, params.Ordenacao, sortKeys)
	return flights, nil
}

func (s *FlightService) Update(ctx context.Context, id primitive.ObjectID, input domain.FlightInput) (*domain.Flight, error) {
	if _, err := s.flights.GetByID(ctx, id); err != nil {
		return nil, err
	}
	flight, err := s.fromInput(ctx, input)
	if err != nil {
		return nil, err
	}
	flight.ID = id
	if err := s.flights.Update(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.flights.Delete(ctx, id)
}

func (s *FlightService) Complete(ctx context.Context, params CompleteParams) ([]domain.FlightComplete, error) {
	var flights []domain.Flight
	if strings.TrimSpace(params.ID) != "" {
		id, err := domain.ParseID("flight", params.ID)
		if err != nil {
			return nil, err
		}
		f, err := s.flights.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		flights = []domain.Flight{*f}
	} else {
		var err error
		flights, err = s.flights.List(ctx, query.Predicate{}, params.Page)
		if err != nil {
			return nil, err
		}
	}

	out := make([]domain.FlightComplete, 0, len(flights))
	for _, f := range flights {
		cia, err := s.refs.AirlineSummary(ctx, f.Cia)
		if err != nil {
			return nil, err
		}
		aeronave, err := s.refs.AircraftSummary(ctx, f.Aeronave)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.FlightComplete{FlightDetail: f.Detail(), Cia: cia, Aeronave: aeronave})
	}
	return out, nil
}

// CountByAirline maps airline identifiers to their number of flights.
// Airlines without flights are absent.
func (s *FlightService) CountByAirline(ctx context.Context) (map[string]int64, error) {
	return s.flights.CountBy(ctx, "cia", query.Predicate{})
}

func (s *FlightService) fromInput(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	if input.HrPartida.IsZero() || input.HrChegada.IsZero() {
		return nil, fmt.Errorf("hr_partida and hr_chegada are required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Origem) == "" || strings.TrimSpace(input.Destino) == "" {
		return nil, fmt.Errorf("origem and destino are required: %w", domain.ErrInvalidInput)
	}
	cia, err := s.refs.Airline(ctx, input.Cia)
	if err != nil {
		return nil, err
	}
	aeronave, err := s.refs.Aircraft(ctx, input.Aeronave)
	if err != nil {
		return nil, err
	}
	return &domain.Flight{
		NumeroVoo: input.NumeroVoo,
		Origem:    input.Origem,
		Destino:   input.Destino,
		HrPartida: input.HrPartida.UTC(),
		HrChegada: input.HrChegada.UTC(),
		Status:    input.Status,
		Aeronave:  aeronave,
		Cia:       cia,
	}, nil
}

var _ FlightUseCase = (*FlightService)(nil)
