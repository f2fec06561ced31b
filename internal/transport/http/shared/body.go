package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
)

var ErrNotObject = errors.New("request body must be a JSON object")

// Fields is a decoded JSON object. Keeping the raw values lets handlers tell
// an absent property from an explicit null.
type Fields map[string]json.RawMessage

func DecodeFields(r *http.Request) (Fields, error) {
	var fields Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, ErrNotObject
	}
	return fields, nil
}

func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f Fields) IsNull(name string) bool {
	raw, ok := f[name]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// String reads a string property. Absent or null values add an issue when
// required; a null is also rejected when nullable is false.
func (f Fields) String(v *Validator, name string, required, nullable bool) *string {
	if !f.checkPresence(v, name, required, nullable) {
		return nil
	}
	var out string
	if err := json.Unmarshal(f[name], &out); err != nil {
		v.Add(name, "str type expected")
		return nil
	}
	return &out
}

func (f Fields) Float(v *Validator, name string, required, nullable bool) *float64 {
	if !f.checkPresence(v, name, required, nullable) {
		return nil
	}
	var out float64
	if err := json.Unmarshal(f[name], &out); err != nil {
		v.Add(name, "value is not a valid float")
		return nil
	}
	return &out
}

func (f Fields) Int(v *Validator, name string, required, nullable bool) *int64 {
	if !f.checkPresence(v, name, required, nullable) {
		return nil
	}
	var out float64
	if err := json.Unmarshal(f[name], &out); err != nil || out != math.Trunc(out) || math.Abs(out) >= math.MaxInt64 {
		v.Add(name, "value is not a valid integer")
		return nil
	}
	n := int64(out)
	return &n
}

// checkPresence reports whether a non-null value is there to decode.
func (f Fields) checkPresence(v *Validator, name string, required, nullable bool) bool {
	if !f.Has(name) {
		v.Present(name, !required)
		return false
	}
	if f.IsNull(name) {
		if !nullable {
			v.Add(name, "none is not an allowed value")
		}
		return false
	}
	return true
}
