package oms

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the variants a customization default or
// selection can hold.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindString
	KindStringArray
	KindNumber
	KindBoolean
)

// Value is the untagged union used for customization defaults and
// selection values. On the wire it is a bare JSON string, string array,
// number or boolean; decoding attempts the variants in exactly that
// order so that ambiguous payloads resolve the same way everywhere.
type Value struct {
	Kind     ValueKind
	Str      string
	StrArray []string
	Num      float64
	Bool     bool
}

func StringValue(s string) Value        { return Value{Kind: KindString, Str: s} }
func StringArrayValue(s []string) Value { return Value{Kind: KindStringArray, StrArray: s} }
func NumberValue(n float64) Value       { return Value{Kind: KindNumber, Num: n} }
func BoolValue(b bool) Value            { return Value{Kind: KindBoolean, Bool: b} }

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindStringArray:
		if v.StrArray == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.StrArray)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBoolean:
		return json.Marshal(v.Bool)
	}
	return nil, fmt.Errorf("%w: cannot encode empty customization value", ErrInvalidFieldValue)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: customization value must not be null", ErrInvalidFieldValue)
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*v = StringArrayValue(arr)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	return fmt.Errorf("%w: unsupported customization value %s", ErrInvalidFieldValue, data)
}

// AsString reports the string variant, with ok=false for other kinds.
func (v Value) AsString() (string, bool) {
	return v.Str, v.Kind == KindString
}

// AsStringArray reports the string-array variant.
func (v Value) AsStringArray() ([]string, bool) {
	return v.StrArray, v.Kind == KindStringArray
}

// AsNumber reports the numeric variant.
func (v Value) AsNumber() (float64, bool) {
	return v.Num, v.Kind == KindNumber
}

// AsBool reports the boolean variant.
func (v Value) AsBool() (bool, bool) {
	return v.Bool, v.Kind == KindBoolean
}
