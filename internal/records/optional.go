package records

import (
	"bytes"
	"encoding/json"
	"math"
)

// OptionalInt decodes a JSON number and treats anything else (strings, null,
// fractions) as absent. Admin forms post numeric inputs as strings, which must
// fall back to the default instead of failing the request.
type OptionalInt struct {
	Value int
	Set   bool
}

func Int(v int) OptionalInt {
	return OptionalInt{Value: v, Set: true}
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil
	}
	*o = OptionalInt{Value: int(f), Set: true}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Or returns the value when set, fallback otherwise.
func (o OptionalInt) Or(fallback int) int {
	if o.Set {
		return o.Value
	}
	return fallback
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
