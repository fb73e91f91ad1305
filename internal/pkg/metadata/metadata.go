// Package metadata is the single codec between the structured notification
// metadata map and its persisted text column.
package metadata

import "encoding/json"

// Encode serializes a metadata map to its column value. Only a nil map means
// "no metadata" and persists as NULL; an empty map a client sent on purpose
// persists as "{}" and round-trips back as an empty map.
func Encode(m map[string]interface{}) (*string, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// Decode parses a stored column value back into a map. Malformed stored text
// yields nil: a corrupt row must degrade to "no metadata", never fail the
// call that read it.
func Decode(s *string) map[string]interface{} {
	if s == nil || *s == "" {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(*s), &m); err != nil {
		return nil
	}
	return m
}
