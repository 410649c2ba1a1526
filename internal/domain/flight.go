package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const FlightCollection = "voo"

// Flight is the Voo document. Status is an opaque label.
type Flight struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	NumeroVoo int                `bson:"numero_voo" json:"numero_voo"`
	Origem    string             `bson:"origem" json:"origem"`
	Destino   string             `bson:"destino" json:"destino"`
	HrPartida time.Time          `bson:"hr_partida" json:"hr_partida"`
	HrChegada time.Time          `bson:"hr_chegada" json:"hr_chegada"`
	Status    string             `bson:"status" json:"status"`
	Aeronave  primitive.ObjectID `bson:"aeronave" json:"aeronave" swaggertype:"string"`
	Cia       primitive.ObjectID `bson:"cia" json:"cia" swaggertype:"string"`
}

type FlightInput struct {
	NumeroVoo int       `json:"numero_voo" binding:"required"`
	Origem    string    `json:"origem" binding:"required"`
	Destino   string    `json:"destino" binding:"required"`
	HrPartida time.Time `json:"hr_partida"`
	HrChegada time.Time `json:"hr_chegada"`
	Status    string    `json:"status"`
	Aeronave  Reference `json:"aeronave" swaggertype:"string"`
	Cia       Reference `json:"cia" swaggertype:"string"`
}

type FlightDetail struct {
	ID        primitive.ObjectID `json:"id" swaggertype:"string"`
	NumeroVoo int                `json:"numero_voo"`
	Origem    string             `json:"origem"`
	Destino   string             `json:"destino"`
	HrPartida time.Time          `json:"hr_partida"`
	HrChegada time.Time          `json:"hr_chegada"`
	Status    string             `json:"status"`
}

func (f Flight) Detail() FlightDetail {
	return FlightDetail{
		ID:        f.ID,
		NumeroVoo: f.NumeroVoo,
		Origem:    f.Origem,
		Destino:   f.Destino,
		HrPartida: f.HrPartida,
		HrChegada: f.HrChegada,
		Status:    f.Status,
	}
}

// FlightComplete is a flight with its airline and aircraft expanded; either
// is nil when dangling.
type FlightComplete struct {
	FlightDetail
	Cia      *AirlineSummary  `json:"cia"`
	Aeronave *AircraftSummary `json:"aeronave"`
}
