package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airfleet/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Builder collects the constraints that were actually supplied. Every method
// is a no-op for an empty raw value. The first parse failure is kept and
// returned by Build.
type Builder struct {
	conds []Condition
	err   error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// ID matches the primary identifier exactly.
func (b *Builder) ID(raw string) *Builder {
	raw = strings.TrimSpace(raw)
	if raw == "" || b.err != nil {
		return b
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		b.err = fmt.Errorf("id %q: %w", raw, domain.ErrInvalidFilterValue)
		return b
	}
	b.conds = append(b.conds, Condition{Field: IDField, Op: OpEq, Value: id})
	return b
}

// Contains is a case-insensitive substring match.
func (b *Builder) Contains(field, s string) *Builder {
	if s == "" {
		return b
	}
	b.conds = append(b.conds, Condition{Field: field, Op: OpContains, Value: s})
	return b
}

func (b *Builder) Equal(field string, v any) *Builder {
	b.conds = append(b.conds, Condition{Field: field, Op: OpEq, Value: v})
	return b
}

// IntEqual parses raw as an integer and matches it exactly.
func (b *Builder) IntEqual(field, raw string) *Builder {
	raw = strings.TrimSpace(raw)
	if raw == "" || b.err != nil {
		return b
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		b.err = fmt.Errorf("%s %q: %w", field, raw, domain.ErrInvalidFilterValue)
		return b
	}
	return b.Equal(field, n)
}

// From is an inclusive lower bound on a timestamp field.
func (b *Builder) From(field, raw string) *Builder {
	return b.bound(field, raw, OpGte)
}

// To is an inclusive upper bound on a timestamp field.
func (b *Builder) To(field, raw string) *Builder {
	return b.bound(field, raw, OpLte)
}

func (b *Builder) bound(field, raw string, op Op) *Builder {
	raw = strings.TrimSpace(raw)
	if raw == "" || b.err != nil {
		return b
	}
	t, err := ParseDate(raw)
	if err != nil {
		b.err = fmt.Errorf("%s %q: %w", field, raw, domain.ErrInvalidFilterValue)
		return b
	}
	b.conds = append(b.conds, Condition{Field: field, Op: op, Value: t})
	return b
}

// AnyContains matches when at least one of fields contains s.
func (b *Builder) AnyContains(s string, fields ...string) *Builder {
	if s == "" || len(fields) == 0 {
		return b
	}
	alts := make([]Condition, 0, len(fields))
	for _, f := range fields {
		alts = append(alts, Condition{Field: f, Op: OpContains, Value: s})
	}
	b.conds = append(b.conds, Condition{Op: OpOr, Any: alts})
	return b
}

// Ref matches a foreign-key field exactly.
func (b *Builder) Ref(field, raw string) *Builder {
	raw = strings.TrimSpace(raw)
	if raw == "" || b.err != nil {
		return b
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		b.err = fmt.Errorf("%s %q: %w", field, raw, domain.ErrInvalidFilterValue)
		return b
	}
	b.conds = append(b.conds, Condition{Field: field, Op: OpEq, Value: id})
	return b
}

// In restricts field to a set of identifiers. An empty set matches nothing.
func (b *Builder) In(field string, ids []primitive.ObjectID) *Builder {
	set := make([]primitive.ObjectID, len(ids))
	copy(set, ids)
	b.conds = append(b.conds, Condition{Field: field, Op: OpIn, Value: set})
	return b
}

func (b *Builder) Build() (Predicate, error) {
	if b.err != nil {
		return Predicate{}, b.err
	}
	return Predicate{Conditions: b.conds}, nil
}

// ParseDate accepts a calendar date (midnight UTC) or an RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
