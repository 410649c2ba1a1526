package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SQL renders the predicate as a WHERE clause over a JSONB column. The
// identifier lives in its own text column named id. Placeholders start at
// $argStart+1 so the clause can follow other arguments.
func (p Predicate) SQL(column string, argStart int) (string, []any) {
	if p.IsEmpty() {
		return "TRUE", nil
	}
	w := sqlWriter{column: column, n: argStart}
	parts := make([]string, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		parts = append(parts, w.condition(c))
	}
	return strings.Join(parts, " AND "), w.args
}

type sqlWriter struct {
	column string
	n      int
	args   []any
}

func (w *sqlWriter) arg(v any) string {
	w.args = append(w.args, v)
	w.n++
	return fmt.Sprintf("$%d", w.n)
}

func (w *sqlWriter) text(field string) string {
	if field == IDField {
		return "id"
	}
	return fmt.Sprintf("%s->>'%s'", w.column, strings.ReplaceAll(field, "'", "''"))
}

func (w *sqlWriter) condition(c Condition) string {
	switch c.Op {
	case OpOr:
		alts := make([]string, 0, len(c.Any))
		for _, alt := range c.Any {
			alts = append(alts, w.condition(alt))
		}
		return "(" + strings.Join(alts, " OR ") + ")"
	case OpContains:
		s, _ := c.Value.(string)
		return fmt.Sprintf("%s ILIKE %s", w.text(c.Field), w.arg("%"+escapeLike(s)+"%"))
	case OpGte:
		return w.compare(c.Field, ">=", c.Value)
	case OpLte:
		return w.compare(c.Field, "<=", c.Value)
	case OpIn:
		ids, _ := c.Value.([]primitive.ObjectID)
		if len(ids) == 0 {
			return "FALSE"
		}
		hex := make([]string, 0, len(ids))
		for _, id := range ids {
			hex = append(hex, id.Hex())
		}
		return fmt.Sprintf("%s = ANY(%s)", w.text(c.Field), w.arg(hex))
	default:
		return w.compare(c.Field, "=", c.Value)
	}
}

func (w *sqlWriter) compare(field, op string, v any) string {
	switch val := v.(type) {
	case primitive.ObjectID:
		return fmt.Sprintf("%s %s %s", w.text(field), op, w.arg(val.Hex()))
	case time.Time:
		return fmt.Sprintf("(%s)::timestamptz %s %s", w.text(field), op, w.arg(val))
	case int, int32, int64, float64:
		return fmt.Sprintf("(%s)::numeric %s %s", w.text(field), op, w.arg(val))
	default:
		return fmt.Sprintf("%s %s %s", w.text(field), op, w.arg(fmt.Sprint(val)))
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
