package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AircraftCollection = "aeronave"

// Aircraft is the Aeronave document. Cia always holds the canonical airline
// identifier, never an embedded airline.
type Aircraft struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Modelo     string               `bson:"modelo" json:"modelo"`
	Capacidade int                  `bson:"capacidade" json:"capacidade"`
	LastCheck  time.Time            `bson:"last_check" json:"last_check"`
	NextCheck  time.Time            `bson:"next_check" json:"next_check"`
	Cia        primitive.ObjectID   `bson:"cia" json:"cia" swaggertype:"string"`
	Voos       []primitive.ObjectID `bson:"voos" json:"voos" swaggertype:"array,string"`
}

// AircraftInput is the create/update payload. Updates overwrite every field.
type AircraftInput struct {
	Modelo     string     `json:"modelo" binding:"required"`
	Capacidade int        `json:"capacidade" binding:"required,gt=0"`
	LastCheck  *time.Time `json:"last_check"`
	NextCheck  *time.Time `json:"next_check"`
	Cia        Reference  `json:"cia" swaggertype:"string"`
	Voos       []string   `json:"voos"`
}

type AircraftSummary struct {
	ID         primitive.ObjectID `json:"id" swaggertype:"string"`
	Modelo     string             `json:"modelo"`
	Capacidade int                `json:"capacidade"`
}

func (a *Aircraft) Summary() *AircraftSummary {
	if a == nil {
		return nil
	}
	return &AircraftSummary{ID: a.ID, Modelo: a.Modelo, Capacidade: a.Capacidade}
}

type AircraftDetail struct {
	ID         primitive.ObjectID `json:"id" swaggertype:"string"`
	Modelo     string             `json:"modelo"`
	Capacidade int                `json:"capacidade"`
	LastCheck  time.Time          `json:"last_check"`
	NextCheck  time.Time          `json:"next_check"`
}

func (a Aircraft) Detail() AircraftDetail {
	return AircraftDetail{
		ID:         a.ID,
		Modelo:     a.Modelo,
		Capacidade: a.Capacidade,
		LastCheck:  a.LastCheck,
		NextCheck:  a.NextCheck,
	}
}

// AircraftComplete is an aircraft with its airline expanded. Cia is nil when
// the referenced airline no longer exists.
type AircraftComplete struct {
	AircraftDetail
	Cia *AirlineSummary `json:"cia"`
}
