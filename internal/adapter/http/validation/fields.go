package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// stringField returns the field when it holds a JSON string.
func stringField(raw map[string]json.RawMessage, field string) (string, bool) {
	value, ok := raw[field]
	if !ok || isJSONNull(value) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

// numberField accepts JSON numbers and numeric strings that are finite.
func numberField(raw map[string]json.RawMessage, field string) *float64 {
	value, ok := raw[field]
	if !ok || isJSONNull(value) {
		return nil
	}

	text := strings.TrimSpace(string(value))
	if s, isString := stringField(raw, field); isString {
		text = strings.TrimSpace(s)
	}
	if text == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	return &parsed
}

// dateField reports whether the field was present. A null or empty value
// clears the date (nil, true, nil); an unparseable one returns invalid.
func dateField(raw map[string]json.RawMessage, field string, invalid error) (*time.Time, bool, error) {
	value, ok := raw[field]
	if !ok {
		return nil, false, nil
	}
	if isJSONNull(value) {
		return nil, true, nil
	}

	s, isString := stringField(raw, field)
	if !isString {
		return nil, true, invalid
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true, nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return nil, true, invalid
	}
	return &parsed, true, nil
}

// ParseDate parses s with the accepted layouts and normalizes it to UTC
// millisecond precision.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed.UTC().Truncate(time.Millisecond), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
