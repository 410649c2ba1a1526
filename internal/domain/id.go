package domain

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID parses an identifier taken from a request path.
func ParseID(kind, raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s id %q: %w", kind, raw, ErrInvalidInput)
	}
	return id, nil
}

// ParseIDs parses a list of identifiers from a payload.
func ParseIDs(field string, raw []string) ([]primitive.ObjectID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an identifier: %w", field, r, ErrInvalidInput)
		}
		out = append(out, id)
	}
	return out, nil
}
