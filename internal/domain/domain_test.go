package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReference_UnmarshalJSON(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name string
		in   string
		want Reference
	}{
		{"raw id", `"` + id.Hex() + `"`, Reference{Raw: id.Hex()}},
		{"embedded id", `{"id":"` + id.Hex() + `","nome":"Azul"}`, Reference{Raw: id.Hex(), Embedded: true}},
		{"embedded _id", `{"_id":"` + id.Hex() + `"}`, Reference{Raw: id.Hex(), Embedded: true}},
		{"embedded without id", `{"nome":"Azul"}`, Reference{Embedded: true}},
		{"null", `null`, Reference{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Reference
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad Reference
	assert.ErrorIs(t, json.Unmarshal([]byte(`42`), &bad), ErrInvalidInput)
}

func TestReference_Normalize(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := Reference{Raw: "  " + id.Hex()}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = NewReference("nonexistent").Normalize()
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	_, err = Reference{}.Normalize()
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestAirlinePatch_ExplicitPresence(t *testing.T) {
	airline := Airline{Nome: "Azul", CodIATA: "AD"}

	var patch AirlinePatch
	require.NoError(t, json.Unmarshal([]byte(`{"cod_iata":""}`), &patch))
	patch.Apply(&airline)

	assert.Equal(t, "Azul", airline.Nome)
	assert.Equal(t, "", airline.CodIATA)
}

func TestAirline_JSONKeepsCacheFlat(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := json.Marshal(Airline{ID: id, Nome: "Azul", FleetIndex: FleetIndex{Voos: []primitive.ObjectID{id}}})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, id.Hex(), m["id"])
	assert.Equal(t, []any{id.Hex()}, m["voos"])
	assert.NotContains(t, m, "FleetIndex")
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := ParseID("airline", id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("airline", "42")
	assert.ErrorIs(t, err, ErrInvalidInput)

	ids, err := ParseIDs("voos", []string{id.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{id}, ids)

	_, err = ParseIDs("voos", []string{"x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
