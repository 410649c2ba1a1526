package api

import (
	"fmt"
	"strconv"

	"github.com/Domenick1991/airfleet/internal/domain"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/gin-gonic/gin"
)

type handlerConfig struct {
	defaultLimit int
}

type HandlerOption func(*handlerConfig)

// WithDefaultLimit sets the page size used when a request has no limit.
func WithDefaultLimit(limit int) HandlerOption {
	return func(cfg *handlerConfig) {
		if limit > 0 {
			cfg.defaultLimit = limit
		}
	}
}

func newHandlerConfig(opts []HandlerOption) handlerConfig {
	cfg := handlerConfig{defaultLimit: query.DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// page reads offset and limit from the query string.
func (cfg handlerConfig) page(c *gin.Context) (query.Page, error) {
	offset, err := intParam(c, "offset", 0)
	if err != nil {
		return query.Page{}, err
	}
	limit, err := intParam(c, "limit", cfg.defaultLimit)
	if err != nil {
		return query.Page{}, err
	}
	return query.NewPage(offset, limit)
}

func intParam(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer: %w", name, raw, domain.ErrInvalidPagination)
	}
	return n, nil
}
