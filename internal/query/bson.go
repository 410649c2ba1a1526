package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BSON renders the predicate as a MongoDB filter. Operators on the same field
// are merged into one document; repeated operators fall back to $and.
func (p Predicate) BSON() bson.M {
	if p.IsEmpty() {
		return bson.M{}
	}

	out := bson.M{}
	clash := false
	for _, c := range p.Conditions {
		if c.Op == OpOr {
			if _, exists := out["$or"]; exists {
				clash = true
				break
			}
			alts := make(bson.A, 0, len(c.Any))
			for _, alt := range c.Any {
				alts = append(alts, bson.M{alt.Field: operator(alt)})
			}
			out["$or"] = alts
			continue
		}

		ops, _ := out[c.Field].(bson.M)
		if ops == nil {
			ops = bson.M{}
			out[c.Field] = ops
		}
		for k, v := range operator(c) {
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

	all := make(bson.A, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		all = append(all, Predicate{Conditions: []Condition{c}}.BSON())
	}
	return bson.M{"$and": all}
}

func operator(c Condition) bson.M {
	switch c.Op {
	case OpContains:
		s, _ := c.Value.(string)
		return bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}}
	case OpGte:
		return bson.M{"$gte": c.Value}
	case OpLte:
		return bson.M{"$lte": c.Value}
	case OpIn:
		return bson.M{"$in": c.Value}
	default:
		return bson.M{"$eq": c.Value}
	}
}
