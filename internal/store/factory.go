package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Options struct {
	Driver      string
	Mongo       MongoConfig
	PostgresDSN string
}

// Open builds the store selected by opts.Driver. The caller owns the result
// and must Close it.
func Open(ctx context.Context, opts Options, log *zap.Logger) (Store, error) {
	switch opts.Driver {
	case DriverMongo, "":
		return NewMongoStore(ctx, opts.Mongo, log)
	case DriverPostgres:
		return NewPostgresStore(ctx, opts.PostgresDSN, log)
	case DriverMemory:
		log.Warn("using in-memory store, data is lost on exit")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
