package grocy

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Grocy's PHP backend is loose about scalar types: integer columns arrive
// as "5", null columns arrive as "", booleans arrive as 0/1 or "0"/"1".
// The types below absorb those quirks so response models can stay flat.

// Int is an integer field that also accepts numeric strings and treats
// empty string and null as zero.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Int) UnmarshalJSON(data []byte) error {
	s, ok := normalizeScalar(data)
	if !ok {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse int %q: %w", s, err)
	}
	*n = Int(v)
	return nil
}

// Float is a float field that also accepts numeric strings and treats
// empty string and null as zero.
type Float float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	s, ok := normalizeScalar(data)
	if !ok {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse float %q: %w", s, err)
	}
	*f = Float(v)
	return nil
}

// Bool is a boolean field that also accepts 0/1 and "0"/"1" and treats
// empty string and null as false.
type Bool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bool) UnmarshalJSON(data []byte) error {
	s, ok := normalizeScalar(data)
	if !ok {
		*b = false
		return nil
	}
	switch s {
	case "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("parse bool %q", s)
	}
	return nil
}

// normalizeScalar strips surrounding quotes from a raw JSON scalar.
// It returns ok=false when the value is null or an empty string, which
// Grocy uses interchangeably for "not set".
func normalizeScalar(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil || s == "" {
			return "", false
		}
		return s, true
	}
	return string(data), true
}

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// timestampLayouts lists the formats Grocy emits for datetime fields,
// tried in order.
var timestampLayouts = []string{
	timestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	dateLayout,
}

// Time wraps time.Time and decodes the timestamp formats Grocy emits
// ("2006-01-02 15:04:05" and RFC 3339 variants). Empty string and null
// decode to the zero Time.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s, ok := normalizeScalar(data)
	if !ok {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("parse timestamp %q", s)
}

// MarshalJSON implements json.Marshaler. Zero times marshal to null.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendQuote(nil, t.Format(timestampLayout)), nil
}

// Date wraps time.Time and decodes Grocy date-only fields ("2006-01-02").
// Grocy uses 2999-12-31 to mean "never expires"; the value is preserved
// verbatim rather than interpreted. Empty string and null decode to the
// zero Date.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, ok := normalizeScalar(data)
	if !ok {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{dateLayout, timestampLayout} {
		if v, err := time.Parse(layout, s); err == nil {
			d.Time = v
			return nil
		}
	}
	return fmt.Errorf("parse date %q", s)
}

// MarshalJSON implements json.Marshaler. Zero dates marshal to null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendQuote(nil, d.Format(dateLayout)), nil
}

// formatTimestamp renders t the way the Grocy API expects datetimes in
// request bodies.
func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// formatDate renders t the way the Grocy API expects dates in request
// bodies.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
