package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	seq        BIGSERIAL PRIMARY KEY,
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	doc        JSONB NOT NULL,
	UNIQUE (collection, id)
);

CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
`

var fieldName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PostgresStore keeps every collection in one JSONB table. seq preserves
// insertion order, which stands in for natural storage order.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// NewPostgresStore opens a pool, pings it and creates the documents table.
func NewPostgresStore(ctx context.Context, dsn string, log *zap.Logger) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, documentsSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	log.Info("postgres connection established")
	return &PostgresStore{pool: pool, log: log}, nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, p query.Predicate, dest any) error {
	where, args := p.SQL("doc", 1)
	sql := `SELECT doc || jsonb_build_object('id', id) FROM documents WHERE collection = $1 AND ` +
		where + ` ORDER BY seq LIMIT 1`

	var raw []byte
	err := s.pool.QueryRow(ctx, sql, append([]any{collection}, args...)...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoDocument
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindMany(ctx context.Context, collection string, p query.Predicate, page query.Page, dest any) error {
	where, args := p.SQL("doc", 1)
	sql := `SELECT doc || jsonb_build_object('id', id) FROM documents WHERE collection = $1 AND ` +
		where + ` ORDER BY seq`
	args = append([]any{collection}, args...)
	if !page.Unbounded() {
		sql += fmt.Sprintf(" LIMIT %d", page.Limit)
	}
	if page.Skip > 0 {
		sql += fmt.Sprintf(" OFFSET %d", page.Skip)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	docs := make([]json.RawMessage, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		docs = append(docs, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return decodeInto(docs, dest)
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	body, err := encodeBody(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`,
		collection, id.Hex(), body)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *PostgresStore) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error {
	body, err := encodeBody(doc)
	if err != nil {
		return err
	}
	cmd, err := s.pool.Exec(ctx,
		`UPDATE documents SET doc = $3 WHERE collection = $1 AND id = $2`,
		collection, id.Hex(), body)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	cmd, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id.Hex())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNoDocument
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string, p query.Predicate) (int64, error) {
	where, args := p.SQL("doc", 1)
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM documents WHERE collection = $1 AND `+where,
		append([]any{collection}, args...)...).Scan(&n)
	return n, err
}

func (s *PostgresStore) AggregateCount(ctx context.Context, collection, field string, p query.Predicate) (map[string]int64, error) {
	if !fieldName.MatchString(field) {
		return nil, fmt.Errorf("invalid group field %q", field)
	}
	where, args := p.SQL("doc", 2)
	rows, err := s.pool.Query(ctx,
		`SELECT coalesce(doc->>($2::text), ''), count(*) FROM documents WHERE collection = $1 AND `+where+` GROUP BY 1`,
		append([]any{collection, field}, args...)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

func (s *PostgresStore) EnsureIndexes(ctx context.Context, collection string, fields ...string) error {
	if !fieldName.MatchString(collection) {
		return fmt.Errorf("invalid collection %q", collection)
	}
	for _, f := range fields {
		if !fieldName.MatchString(f) {
			return fmt.Errorf("invalid index field %q", f)
		}
		stmt := fmt.Sprintf(
			`CREATE INDEX IF NOT EXISTS idx_documents_%s_%s ON documents ((doc->>'%s')) WHERE collection = '%s'`,
			collection, f, f, collection)
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create index on %s.%s: %w", collection, f, err)
		}
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

var _ Store = (*PostgresStore)(nil)
