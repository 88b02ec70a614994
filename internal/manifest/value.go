package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"
)

// Kind identifies the JSON type held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value is a read-only view over a parsed JSON value.
// The zero Value is null.
type Value struct {
	raw any
}

// Parse decodes a single JSON document into a Value.
// Numbers are kept as json.Number. Input must be valid UTF-8.
func Parse(data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return Value{}, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmptyDocument
		}
		return Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, ErrTrailingData
	}

	return Value{raw: raw}, nil
}

// Kind returns the JSON type of the value
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNull
	}
}

// IsNull reports whether the value is null or absent
func (v Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Lookup returns the named field of an object value.
// ok is false when v is not an object or has no such field.
func (v Value) Lookup(name string) (Value, bool) {
	obj, isObj := v.raw.(map[string]any)
	if !isObj {
		return Value{}, false
	}
	field, ok := obj[name]
	return Value{raw: field}, ok
}

// Field returns the named field, or a null Value when it cannot be found
func (v Value) Field(name string) Value {
	field, _ := v.Lookup(name)
	return field
}

// Object returns the members of an object value
func (v Value) Object() (map[string]Value, bool) {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return nil, false
	}
	members := make(map[string]Value, len(obj))
	for name, raw := range obj {
		members[name] = Value{raw: raw}
	}
	return members, true
}

// AsString returns the value of a string
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// Len returns the number of members or elements of an object or array,
// and zero for every other kind.
func (v Value) Len() int {
	switch raw := v.raw.(type) {
	case map[string]any:
		return len(raw)
	case []any:
		return len(raw)
	}
	return 0
}
