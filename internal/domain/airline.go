package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AirlineCollection = "cia"

// Airline is the Cia document.
type Airline struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Nome    string             `bson:"nome" json:"nome"`
	CodIATA string             `bson:"cod_iata" json:"cod_iata"`

	FleetIndex `bson:",inline"`
}

// FleetIndex is a derived cache of the aircraft and flights that reference an
// airline. Aircraft and flight writes never touch it; it is rebuilt by querying
// those collections by their cia reference. It is not a source of truth.
type FleetIndex struct {
	Aeronaves  []primitive.ObjectID `bson:"aeronaves" json:"aeronaves" swaggertype:"array,string"`
	Voos       []primitive.ObjectID `bson:"voos" json:"voos" swaggertype:"array,string"`
	IndexadoEm *time.Time           `bson:"indexado_em,omitempty" json:"indexado_em,omitempty"`
}

// AirlinePatch carries the fields of a partial update. A nil field is absent
// and keeps the stored value; a non-nil field overwrites it, empty string
// included.
type AirlinePatch struct {
	Nome    *string `json:"nome"`
	CodIATA *string `json:"cod_iata"`
}

func (p AirlinePatch) Apply(a *Airline) {
	if p.Nome != nil {
		a.Nome = *p.Nome
	}
	if p.CodIATA != nil {
		a.CodIATA = *p.CodIATA
	}
}

type AirlineSummary struct {
	ID      primitive.ObjectID `json:"id" swaggertype:"string"`
	Nome    string             `json:"nome"`
	CodIATA string             `json:"cod_iata"`
}

func (a *Airline) Summary() *AirlineSummary {
	if a == nil {
		return nil
	}
	return &AirlineSummary{ID: a.ID, Nome: a.Nome, CodIATA: a.CodIATA}
}

// AirlineComplete is an airline with the aircraft and flights that currently
// reference it.
type AirlineComplete struct {
	ID        primitive.ObjectID `json:"id" swaggertype:"string"`
	Nome      string             `json:"nome"`
	CodIATA   string             `json:"cod_iata"`
	Aeronaves []AircraftDetail   `json:"aeronaves"`
	Voos      []FlightDetail     `json:"voos"`
}

type AirlineInput struct {
	Nome    string `json:"nome" binding:"required"`
	CodIATA string `json:"cod_iata" binding:"required"`
}
