package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Series is an output sequence. Its JSON form writes NaN and the
// infinities as the strings "NaN", "+Inf" and "-Inf", which plain JSON
// numbers cannot carry.
type Series []float64

// MarshalJSON implements json.Marshaler.
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.Grow(len(s) * 8)
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		switch {
		case math.IsNaN(v):
			buf.WriteString(`"NaN"`)
		case math.IsInf(v, 1):
			buf.WriteString(`"+Inf"`)
		case math.IsInf(v, -1):
			buf.WriteString(`"-Inf"`)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. A null element reads as NaN.
func (s *Series) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, elem := range raw {
		switch {
		case string(elem) == "null":
			out[i] = math.NaN()
		case len(elem) > 0 && elem[0] == '"':
			str, err := strconv.Unquote(string(elem))
			if err != nil {
				return err
			}
			v, err := parseNonFinite(str)
			if err != nil {
				return err
			}
			out[i] = v
		default:
			if err := json.Unmarshal(elem, &out[i]); err != nil {
				return err
			}
		}
	}
	*s = out
	return nil
}

func parseNonFinite(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "+Inf", "Inf":
		return math.Inf(1), nil
	case "-Inf":
		return math.Inf(-1), nil
	}
	return 0, fmt.Errorf("series element %q is not a number", s)
}
