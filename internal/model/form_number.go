package model

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// FormNumber is a lenient numeric form value. Absent, null and empty-string
// values leave Present unset; anything that does not parse as a finite number
// sets Invalid.
type FormNumber struct {
	Value   float64
	Present bool
	Invalid bool
}

// Number returns a present, valid FormNumber.
func Number(v float64) FormNumber {
	return FormNumber{Value: v, Present: true}
}

func (n *FormNumber) UnmarshalJSON(data []byte) error {
	*n = FormNumber{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			n.Present, n.Invalid = true, true
			return nil
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
	default:
		raw = string(data)
	}

	n.Present = true
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		n.Invalid = true
		return nil
	}
	n.Value = v
	return nil
}

func (n FormNumber) MarshalJSON() ([]byte, error) {
	if !n.Present || n.Invalid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}
