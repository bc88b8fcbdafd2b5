package oms

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValueDecodePrecedence(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind ValueKind
	}{
		{"string", `"medium"`, KindString},
		{"string array", `["vanilla","caramel"]`, KindStringArray},
		{"number", `2.5`, KindNumber},
		{"boolean", `true`, KindBoolean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.data), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != tt.kind {
				t.Fatalf("expected kind %v, got %v", tt.kind, v.Kind)
			}
		})
	}
}

func TestValueDecodeVariants(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`"large"`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := v.AsString(); !ok || s != "large" {
		t.Fatalf("expected string large, got %q (ok=%v)", s, ok)
	}

	if err := json.Unmarshal([]byte(`["a","b"]`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := v.AsStringArray()
	if !ok || len(arr) != 2 || arr[0] != "a" {
		t.Fatalf("expected [a b], got %v (ok=%v)", arr, ok)
	}

	if err := json.Unmarshal([]byte(`3`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := v.AsNumber(); !ok || n != 3 {
		t.Fatalf("expected 3, got %v (ok=%v)", n, ok)
	}
}

func TestValueRejectsNull(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`null`), &v)
	if !errors.Is(err, ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue for null, got %v", err)
	}
}

func TestValueRejectsObject(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"a":1}`), &v)
	if !errors.Is(err, ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue for object, got %v", err)
	}
}

func TestValueAccessorsRejectWrongKind(t *testing.T) {
	v := NumberValue(2)
	if _, ok := v.AsString(); ok {
		t.Fatal("expected AsString to fail on a number")
	}
	if _, ok := v.AsBool(); ok {
		t.Fatal("expected AsBool to fail on a number")
	}
}

func TestValueMarshalEmptyArray(t *testing.T) {
	data, err := json.Marshal(StringArrayValue(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `[]` {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestValueMarshalInvalidKind(t *testing.T) {
	if _, err := json.Marshal(Value{}); err == nil {
		t.Fatal("expected error encoding an empty value")
	}
}

func TestValueRoundTrip(t *testing.T) {
	original := BoolValue(true)
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded Value
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := decoded.AsBool(); !ok || !b {
		t.Fatalf("expected true boolean, got %v (ok=%v)", b, ok)
	}
}
