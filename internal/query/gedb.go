package query

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GEDB renders the predicate as a query for the embedded store. Documents
// there hold identifiers as hex strings and numbers as float64, so values are
// converted the same way. Equality is a plain value, as the matcher has no
// $eq; any other clash on a field falls back to $and like BSON.
func (p Predicate) GEDB() map[string]any {
	if p.IsEmpty() {
		return map[string]any{}
	}

	out := map[string]any{}
	clash := false
	for _, c := range p.Conditions {
		if c.Op == OpOr {
			if _, exists := out["$or"]; exists {
				clash = true
				break
			}
			alts := make([]any, 0, len(c.Any))
			for _, alt := range c.Any {
				alts = append(alts, Predicate{Conditions: []Condition{alt}}.GEDB())
			}
			out["$or"] = alts
			continue
		}

		existing, exists := out[c.Field]
		if c.Op == OpEq {
			if exists {
				clash = true
				break
			}
			out[c.Field] = EmbeddedValue(c.Value)
			continue
		}
		ops, isOps := existing.(map[string]any)
		if exists && !isOps {
			clash = true
			break
		}
		if ops == nil {
			ops = map[string]any{}
			out[c.Field] = ops
		}
		for k, v := range embeddedOperator(c) {
			if _, exists := ops[k]; exists {
				clash = true
			}
			ops[k] = v
		}
		if clash {
			break
		}
	}
	if !clash {
		return out
	}

	all := make([]any, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		all = append(all, Predicate{Conditions: []Condition{c}}.GEDB())
	}
	return map[string]any{"$and": all}
}

// embeddedOperator renders every Op but OpEq and OpOr.
func embeddedOperator(c Condition) map[string]any {
	switch c.Op {
	case OpContains:
		s, _ := c.Value.(string)
		return map[string]any{"$regex": regexp.MustCompile("(?i)" + regexp.QuoteMeta(s))}
	case OpGte:
		return map[string]any{"$gte": EmbeddedValue(c.Value)}
	case OpLte:
		return map[string]any{"$lte": EmbeddedValue(c.Value)}
	default:
		return map[string]any{"$in": EmbeddedValue(c.Value)}
	}
}

// EmbeddedValue converts a document or query value to the form kept by the
// embedded store.
func EmbeddedValue(v any) any {
	switch val := v.(type) {
	case primitive.M:
		out := make(map[string]any, len(val))
		for k, x := range val {
			out[k] = EmbeddedValue(x)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = EmbeddedValue(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, 0, len(val))
		for _, x := range val {
			out = append(out, EmbeddedValue(x))
		}
		return out
	case []primitive.ObjectID:
		out := make([]any, 0, len(val))
		for _, id := range val {
			out = append(out, id.Hex())
		}
		return out
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	case time.Time:
		return val.UTC()
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return val
	}
}
