package dexscreener

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

var nullLiteral = []byte("null")

// Numeric is a float64 the API serves either as a JSON number or as a
// numeric string ("3000.5"). A string that does not parse as a number
// rejects the whole response.
type Numeric float64

// Float64 returns the value as a plain float64.
func (n Numeric) Float64() float64 { return float64(n) }

func (n Numeric) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(n), 'f', -1, 64), nil
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("numeric: invalid string %s", s)
		}
		s = unquoted
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numeric: cannot parse %q as number", s)
	}
	*n = Numeric(v)
	return nil
}

// NullNumeric is a Numeric that may be absent. The API marks a missing value
// three different ways, by omitting the field, sending null, or sending an
// empty string; all of them leave Valid false.
type NullNumeric struct {
	Float64 float64
	Valid   bool
}

func (n NullNumeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return nullLiteral, nil
	}
	return strconv.AppendFloat(nil, n.Float64, 'f', -1, 64), nil
}

func (n *NullNumeric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		*n = NullNumeric{}
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("numeric: invalid string %s", s)
		}
		if unquoted == "" {
			*n = NullNumeric{}
			return nil
		}
		s = unquoted
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numeric: cannot parse %q as number", s)
	}
	*n = NullNumeric{Float64: v, Valid: true}
	return nil
}

// Timestamp is a point in time the API serves as Unix milliseconds, a
// numeric string of milliseconds, or an RFC 3339 string. The zero value
// means the field was absent or empty. It marshals back to the wire form,
// integer milliseconds.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return nullLiteral, nil
	}
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		t.Time = time.Time{}
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("timestamp: invalid string %s", s)
		}
		if unquoted == "" {
			t.Time = time.Time{}
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339, unquoted); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		s = unquoted
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp: cannot parse %q", s)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}
