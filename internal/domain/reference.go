package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reference is a foreign key as it arrives in a request payload. Clients send
// either the raw identifier or, in malformed input, an embedded object
// carrying "id" or "_id".
type Reference struct {
	Raw      string
	Embedded bool
}

func NewReference(raw string) Reference {
	return Reference{Raw: raw}
}

// RefOf builds a Reference from a canonical identifier.
func RefOf(id primitive.ObjectID) Reference {
	return Reference{Raw: id.Hex()}
}

func (r Reference) IsZero() bool {
	return strings.TrimSpace(r.Raw) == ""
}

// Normalize parses the reference into an ObjectID.
func (r Reference) Normalize() (primitive.ObjectID, error) {
	raw := strings.TrimSpace(r.Raw)
	if raw == "" {
		return primitive.NilObjectID, fmt.Errorf("empty reference: %w", ErrReferenceNotFound)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("reference %q: %w", raw, ErrReferenceNotFound)
	}
	return id, nil
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Reference{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reference{Raw: s}
		return nil
	}

	if data[0] == '{' {
		var obj struct {
			ID  *string `json:"id"`
			OID *string `json:"_id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		switch {
		case obj.ID != nil:
			*r = Reference{Raw: *obj.ID, Embedded: true}
		case obj.OID != nil:
			*r = Reference{Raw: *obj.OID, Embedded: true}
		default:
			*r = Reference{Embedded: true}
		}
		return nil
	}

	return fmt.Errorf("reference must be a string or an object with an id: %w", ErrInvalidInput)
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Raw)
}
