// Package query builds backend-neutral filter predicates from optional request
// parameters and renders them for each document store.
package query

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField names the primary identifier in every collection.
const IDField = "_id"

type Op int

const (
	OpEq Op = iota
	OpContains
	OpGte
	OpLte
	OpIn
	OpOr
)

// Condition is a single constraint. Value holds a primitive.ObjectID, string,
// int, time.Time or []primitive.ObjectID depending on Op. Any is used by OpOr
// only.
type Condition struct {
	Field string
	Op    Op
	Value any
	Any   []Condition
}

// Predicate is the AND of its conditions. The zero value selects everything.
type Predicate struct {
	Conditions []Condition
}

func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// And returns a predicate holding the conditions of both.
func (p Predicate) And(other Predicate) Predicate {
	out := make([]Condition, 0, len(p.Conditions)+len(other.Conditions))
	out = append(out, p.Conditions...)
	out = append(out, other.Conditions...)
	return Predicate{Conditions: out}
}

func ByID(id primitive.ObjectID) Predicate {
	return Predicate{Conditions: []Condition{{Field: IDField, Op: OpEq, Value: id}}}
}

// Where is an equality predicate on a single field.
func Where(field string, value any) Predicate {
	return Predicate{Conditions: []Condition{{Field: field, Op: OpEq, Value: value}}}
}
