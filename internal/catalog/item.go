package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Item is a single blouse design from the catalog dataset. It is loaded once
// at startup and never mutated afterwards.
//
// The source dataset is loosely typed: fabric may be a single string or a
// list, prices may arrive as numbers or strings, and items carry extra
// descriptive fields we do not interpret. The raw JSON object is retained so
// that API responses pass items through byte-for-byte.
type Item struct {
	ID           string
	Title        string
	Price        int
	PriceCoerced bool
	Fabric       FieldValue
	Sleeve       string
	Neckline     string
	OccasionTags []string
	Description  string

	raw json.RawMessage
}

// MarshalJSON emits the original source object when the item came from the
// dataset, so unknown descriptive fields survive the round trip. Items built
// in code (fixtures) fall back to the canonical field set.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.raw != nil {
		return it.raw, nil
	}
	return json.Marshal(map[string]any{
		"design_id":     it.ID,
		"title":         it.Title,
		"price_inr":     it.Price,
		"fabric":        it.Fabric.Values(),
		"sleeve":        it.Sleeve,
		"neckline":      it.Neckline,
		"occasion_tags": it.OccasionTags,
		"description":   it.Description,
	})
}

// FieldValue is an attribute that is either a single string or a list of
// strings in the source data. The shape is resolved once at decode time so
// matching code never has to type-switch on raw JSON.
type FieldValue struct {
	values []string
	scalar bool
}

// Scalar builds a single-valued FieldValue.
func Scalar(v string) FieldValue {
	return FieldValue{values: []string{v}, scalar: true}
}

// List builds a list-valued FieldValue.
func List(vs ...string) FieldValue {
	return FieldValue{values: vs}
}

// Values returns the underlying values. A scalar yields a one-element slice;
// the zero FieldValue yields nil.
func (f FieldValue) Values() []string { return f.values }

// IsScalar reports whether the source field was a single value.
func (f FieldValue) IsScalar() bool { return f.scalar }

// IsEmpty reports whether no value is present at all.
func (f FieldValue) IsEmpty() bool { return len(f.values) == 0 }

// UnmarshalJSON accepts a string, a list, or a bare number and normalizes it
// into the tagged union. Anything else decodes to the empty value.
func (f *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*f = FieldValue{}
		return nil
	}
	switch trimmed[0] {
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			*f = FieldValue{}
			return nil
		}
		values := make([]string, 0, len(raws))
		for _, r := range raws {
			if s, ok := asString(r); ok {
				values = append(values, s)
			}
		}
		*f = FieldValue{values: values}
	default:
		if s, ok := asString(data); ok {
			*f = Scalar(s)
		} else {
			*f = FieldValue{}
		}
	}
	return nil
}

// MarshalJSON preserves the source shape: scalars stay scalars.
func (f FieldValue) MarshalJSON() ([]byte, error) {
	if f.scalar && len(f.values) == 1 {
		return json.Marshal(f.values[0])
	}
	if f.values == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f.values)
}

// asString stringifies a raw JSON scalar the way the dataset expects:
// strings as-is, numbers and booleans by their literal text.
func asString(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return "", false
	}
	return trimmed, true
}

// CoercePrice converts a loosely typed price value to rupees. Numbers are
// truncated to integers, numeric strings are parsed after trimming, and
// everything else coerces to 0. The second return reports whether the value
// had to be coerced to 0 from something non-numeric.
func CoercePrice(raw json.RawMessage) (int, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, false
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, true
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, true
		}
		return n, false
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, true
	}
	if i, err := num.Int64(); err == nil {
		return int(i), false
	}
	if fl, err := num.Float64(); err == nil {
		return int(fl), false
	}
	return 0, true
}

// Normalize applies the shared normalization rule for vocabulary values and
// criteria: lowercase plus surrounding-whitespace trim.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
