package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/airfleet/api"
	"github.com/Domenick1991/airfleet/config"
	_ "github.com/Domenick1991/airfleet/docs"
	"github.com/Domenick1991/airfleet/internal/metrics"
	"github.com/Domenick1991/airfleet/internal/service/aircraft"
	"github.com/Domenick1991/airfleet/internal/service/airlines"
	"github.com/Domenick1991/airfleet/internal/service/flights"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Airlines airlines.AirlineUseCase
	Aircraft aircraft.AircraftUseCase
	Flights  flights.FlightUseCase
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires middleware, the resource handlers and the operational
// endpoints onto a gin engine.
func NewRouter(cfg *config.Config, svc Services, store Pinger, log *zap.Logger) *gin.Engine {
	r := gin.New()
	m := metrics.NewHTTP("airfleet")
	r.Use(requestID(), recovery(log), accessLog(log), m.Middleware())

	opts := []api.HandlerOption{api.WithDefaultLimit(cfg.Pagination.DefaultLimit)}
	api.NewAirlineHandler(svc.Airlines, opts...).Register(r.Group("/cias"))
	api.NewAircraftHandler(svc.Aircraft, opts...).Register(r.Group("/aeronaves"))
	api.NewFlightHandler(svc.Flights, opts...).Register(r.Group("/voos"))

	r.GET("/healthz", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	if cfg.HTTP.Swagger {
		r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}
	return r
}

// Run serves HTTP until ctx is canceled or the listener fails.
func Run(ctx context.Context, cfg *config.Config, svc Services, store Pinger, log *zap.Logger) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, svc, store, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen http %s: %w", cfg.HTTP.Address, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
		defer cancel()
		log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
