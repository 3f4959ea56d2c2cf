// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

var nullLiteral = []byte("null")

// Value is a catalog value passed through verbatim. The catalog mostly
// serves strings ("100000", "unknown") but any JSON value is accepted and
// re-encoded unchanged. The zero Value is null, so an absent key encodes
// as null.
type Value struct {
	raw json.RawMessage
}

// StringValue returns a Value holding the JSON string s.
func StringValue(s string) Value {
	raw, _ := json.Marshal(s)
	return Value{raw: raw}
}

// RawValue returns a Value holding the given JSON text, compacted.
// Invalid or null input yields the null Value.
func RawValue(data []byte) Value {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return Value{}
	}
	return v
}

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool {
	return len(v.raw) == 0
}

// String returns the unquoted text of a JSON string, the literal JSON text
// of any other value, or "" for null.
func (v Value) String() string {
	if v.IsNull() {
		return ""
	}
	if v.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(v.raw, &s); err == nil {
			return s
		}
	}
	return string(v.raw)
}

// Equal reports whether both values hold the same JSON text.
func (v Value) Equal(o Value) bool {
	return bytes.Equal(v.raw, o.raw)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNull() {
		return nullLiteral, nil
	}
	return v.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		v.raw = nil
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	v.raw = buf.Bytes()
	return nil
}
