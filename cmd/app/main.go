package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airfleet/config"
	"github.com/Domenick1991/airfleet/internal/bootstrap"
	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/logger"
	"github.com/Domenick1991/airfleet/internal/repository"
	"github.com/Domenick1991/airfleet/internal/service/aircraft"
	"github.com/Domenick1991/airfleet/internal/service/airlines"
	"github.com/Domenick1991/airfleet/internal/service/flights"
	"github.com/Domenick1991/airfleet/internal/service/refs"
	"github.com/Domenick1991/airfleet/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//	@title			airfleet API
//	@version		1.0
//	@description	Airlines, aircraft and flights.
//	@BasePath		/
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	root := &cobra.Command{
		Use:           "airfleet",
		Short:         "Airline, aircraft and flight registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), cfgPath, serve)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", cfgPath, "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the HTTP API",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), cfgPath, serve)
			},
		},
		&cobra.Command{
			Use:   "ensure-indexes",
			Short: "Create store indexes on the reference fields",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), cfgPath, ensureIndexes)
			},
		},
		&cobra.Command{
			Use:   "reindex",
			Short: "Rebuild every airline's aircraft and flight lists",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), cfgPath, reindex)
			},
		},
	)
	return root
}

type app struct {
	cfg      *config.Config
	log      *zap.Logger
	store    store.Store
	services bootstrap.Services
}

// withApp loads config, opens the store and builds the services around fn.
// The store is closed when fn returns.
func withApp(parent context.Context, cfgPath string, fn func(ctx context.Context, a *app) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	s, err := store.Open(ctx, cfg.StoreOptions(), log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			log.Warn("close store", zap.Error(err))
		}
	}()

	airlineRepo := repository.NewAirlineRepository(s)
	aircraftRepo := repository.NewAircraftRepository(s)
	flightRepo := repository.NewFlightRepository(s)
	resolver := refs.NewResolver(airlineRepo, aircraftRepo)

	a := &app{
		cfg:   cfg,
		log:   log,
		store: s,
		services: bootstrap.Services{
			Airlines: airlines.NewAirlineService(airlineRepo, aircraftRepo, flightRepo,
				airlines.WithLogger(log.Named("airlines"))),
			Aircraft: aircraft.NewAircraftService(aircraftRepo, flightRepo, resolver,
				aircraft.WithLogger(log.Named("aircraft"))),
			Flights: flights.NewFlightService(flightRepo, airlineRepo, resolver,
				flights.WithLogger(log.Named("flights"))),
		},
	}
	return fn(ctx, a)
}

func serve(ctx context.Context, a *app) error {
	a.log.Info("starting airfleet", zap.String("store", a.cfg.Store.Driver))
	if err := bootstrap.Run(ctx, a.cfg, a.services, a.store, a.log); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, a *app) error {
	indexes := map[string][]string{
		domain.AirlineCollection:  {"cod_iata"},
		domain.AircraftCollection: {"cia"},
		domain.FlightCollection:   {"cia", "aeronave", "hr_partida"},
	}
	for collection, fields := range indexes {
		if err := a.store.EnsureIndexes(ctx, collection, fields...); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", collection, err)
		}
		a.log.Info("indexes ensured", zap.String("collection", collection), zap.Strings("fields", fields))
	}
	return nil
}

func reindex(ctx context.Context, a *app) error {
	n, err := a.services.Airlines.ReindexAll(ctx)
	if err != nil {
		return fmt.Errorf("reindex after %d airlines: %w", n, err)
	}
	a.log.Info("reindex complete", zap.Int("airlines", n))
	return nil
}
