package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

// MileageFallback is rendered when a mileage value is absent or unusable.
const MileageFallback = "N/A km"

// FormatMileage renders a raw mileage value as a grouped display string,
// e.g. 80000 -> "80,000 km". Absent, zero, or non-integer input yields the
// fallback; no input ever causes a panic.
func FormatMileage(raw any, locale i18n.Locale) string {
	n, ok := parseInt(raw)
	if !ok || n <= 0 {
		return MileageFallback
	}
	p := message.NewPrinter(locale.Tag())
	return p.Sprintf("%d km", n)
}

// ParsePrice reads a raw price value with base-10 integer semantics.
// Unparsable or negative input maps to 0; currency symbols are a rendering
// concern and never appear here.
func ParsePrice(raw any) int {
	n, ok := parseInt(raw)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// parseInt accepts the value shapes the CMS actually emits for numeric
// fields: JSON numbers decode as float64, but several records carry numbers
// as strings.
func parseInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// DefaultSpecifications returns the fixed specification set substituted when
// a listing carries none.
func DefaultSpecifications() []SpecEntry {
	na := BiText{EN: "N/A", JA: "N/A"}
	return []SpecEntry{
		{Name: "engine", Value: na},
		{Name: "transmission", Value: na},
		{Name: "fuel", Value: na},
		{Name: "color", Value: na},
	}
}

// ResolveSpecifications normalises the specifications payload, which the CMS
// stores either as a JSON object of {name: {en, ja}} pairs or as that object
// serialised into a JSON string. Absent payloads substitute the default set.
// A payload that is present but undecodable returns ErrMalformedSpecifications
// rather than partial data.
func ResolveSpecifications(raw json.RawMessage) ([]SpecEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return DefaultSpecifications(), nil
	}

	switch trimmed[0] {
	case '{':
		return decodeSpecObject(trimmed)
	case '"':
		var serialized string
		if err := json.Unmarshal(trimmed, &serialized); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSpecifications, err)
		}
		inner := strings.TrimSpace(serialized)
		if inner == "" {
			return DefaultSpecifications(), nil
		}
		if !strings.HasPrefix(inner, "{") {
			return nil, fmt.Errorf("%w: serialized form is not an object", ErrMalformedSpecifications)
		}
		return decodeSpecObject([]byte(inner))
	default:
		return nil, fmt.Errorf("%w: unexpected payload shape", ErrMalformedSpecifications)
	}
}

// decodeSpecObject walks the object token by token so entries keep the key
// order the CMS delivered. json.Unmarshal into a map would lose it.
func decodeSpecObject(data []byte) ([]SpecEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSpecifications, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected object", ErrMalformedSpecifications)
	}

	var entries []SpecEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSpecifications, err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key", ErrMalformedSpecifications)
		}

		var value struct {
			EN string `json:"en"`
			JA string `json:"ja"`
		}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value for %q: %v", ErrMalformedSpecifications, name, err)
		}
		entries = append(entries, SpecEntry{Name: name, Value: bilingual(value.EN, value.JA)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSpecifications, err)
	}
	if len(entries) == 0 {
		return DefaultSpecifications(), nil
	}
	return entries, nil
}
