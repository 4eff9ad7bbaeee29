package propertycatalog

import (
	"bytes"
	"encoding/json"
)

// decodeJSONValue coerces a single JSON literal into a Value, following the
// literal syntax rules: an unquoted true/false becomes bool; a numeral with
// no fractional part or exponent becomes i64; any other numeral becomes
// f64; a quoted string becomes string; a homogeneous array of one of the
// three scalar kinds becomes the matching list kind. Nested arrays,
// heterogeneous arrays, objects, and null all fail with ok=false.
func decodeJSONValue(raw json.RawMessage) (v Value, ok bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, false
		}
		return Value{Kind: KindString, Str: s}, true
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, false
		}
		return Value{Kind: KindBool, Bool: b}, true
	case '[':
		return decodeJSONArray(trimmed)
	case 'n':
		return Value{}, false
	default:
		return decodeJSONNumber(trimmed)
	}
}

// decodeJSONNumber distinguishes an integer literal from a float literal by
// the literal's own shape: any '.', 'e', or 'E' makes it f64, otherwise i64.
func decodeJSONNumber(raw []byte) (Value, bool) {
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return Value{}, false
	}
	if isFractional(string(num)) {
		f, err := num.Float64()
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: KindF64, F64: f}, true
	}
	i, err := num.Int64()
	if err != nil {
		// Out of int64 range despite lacking '.'/'e' — fall back to f64.
		f, ferr := num.Float64()
		if ferr != nil {
			return Value{}, false
		}
		return Value{Kind: KindF64, F64: f}, true
	}
	return Value{Kind: KindI64, I64: i}, true
}

func isFractional(lit string) bool {
	for _, r := range lit {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}

// decodeJSONArray accepts only a flat array of uniformly-kinded bool, i64,
// f64, or string elements. An empty array is rejected: with no elements
// there is no way to infer the list's kind.
func decodeJSONArray(raw []byte) (Value, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return Value{}, false
	}
	if len(elems) == 0 {
		return Value{}, false
	}

	values := make([]Value, 0, len(elems))
	for _, e := range elems {
		v, ok := decodeJSONValue(e)
		if !ok {
			return Value{}, false
		}
		values = append(values, v)
	}

	kind := values[0].Kind
	switch kind {
	case KindBoolList, KindI64List, KindF64List, KindStringList:
		// Nested arrays are not a supported element kind.
		return Value{}, false
	}
	for _, v := range values[1:] {
		if v.Kind != kind {
			return Value{}, false
		}
	}

	switch kind {
	case KindBool:
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.Bool
		}
		return Value{Kind: KindBoolList, BoolList: out}, true
	case KindI64:
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = v.I64
		}
		return Value{Kind: KindI64List, I64List: out}, true
	case KindF64:
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v.F64
		}
		return Value{Kind: KindF64List, F64List: out}, true
	case KindString:
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.Str
		}
		return Value{Kind: KindStringList, StringList: out}, true
	default:
		return Value{}, false
	}
}
