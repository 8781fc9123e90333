package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int accepts a JSON number or a numeric string. An empty string is zero.
type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	raw, err := numberText(data)
	if err != nil {
		return err
	}
	if raw == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Whole-valued floats like 132.0 are fine.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("invalid integer %q", raw)
		}
		v = int64(f)
	}
	*n = Int(v)
	return nil
}

// Float accepts a JSON number or a numeric string. An empty string is zero.
// NaN and infinities are rejected since they cannot be encoded back to JSON.
type Float float64

func (n *Float) UnmarshalJSON(data []byte) error {
	raw, err := numberText(data)
	if err != nil {
		return err
	}
	if raw == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", raw)
	}
	*n = Float(v)
	return nil
}

func numberText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
