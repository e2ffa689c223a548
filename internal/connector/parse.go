package connector

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flag decodes vendor boolean-like JSON values ("1", 1, true, "true") to a
// strict bool.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "1", "true", "y", "yes":
		*f = true
	case "", "0", "false", "n", "no", "null":
		*f = false
	default:
		return fmt.Errorf("cannot parse %q as flag", s)
	}
	return nil
}

func (f Flag) Bool() bool { return bool(f) }

// Vendor timestamp layouts, tried in order. Origin platforms mix ISO
// date-only values with US-style combined date+time fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"01/02/2006 15:04",
	"1/2/2006",
	"01/02/2006",
}

// Date decodes an ambiguous-format vendor timestamp string. Empty or null
// input decodes to the zero time, which callers treat as "not provided".
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseVendorTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseVendorTime normalizes a vendor timestamp string to time.Time, trying
// each known layout.
func ParseVendorTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized vendor timestamp %q", s)
}

// CombineDateTime joins a vendor's split date and time fields ("m/d/Y" +
// "H:i") into one timestamp. A missing time component yields midnight.
func CombineDateTime(date, clock string) (time.Time, error) {
	if date == "" {
		return time.Time{}, nil
	}
	if clock == "" {
		return ParseVendorTime(date)
	}
	return ParseVendorTime(date + " " + clock)
}

// ParseVendorInt coerces a numeric vendor field that may arrive as a JSON
// number or a quoted string.
func ParseVendorInt(s string) (int, error) {
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unrecognized vendor number %q", s)
	}
	return n, nil
}
