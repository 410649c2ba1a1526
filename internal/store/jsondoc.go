package store

import (
	"encoding/json"
	"fmt"
)

// JSON documents back the postgres driver. The identifier is kept apart from
// the body and merged back under "id" on read, the key every entity uses for
// its json identifier. The memory driver decodes through the same path.

func encodeBody(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	delete(body, "id")
	delete(body, "_id")
	return body, nil
}

// decodeInto round-trips v through JSON into dest.
func decodeInto(v any, dest any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func groupValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprint(val)
	}
}
