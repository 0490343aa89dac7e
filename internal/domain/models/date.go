// internal/domain/models/date.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Date is a calendar date or timestamp supplied by a client.
//
// JSON input may be RFC 3339 ("2024-01-01T09:30:00Z") or a bare date
// ("2024-01-01"). It is always stored as a BSON datetime in UTC and
// written back to JSON as RFC 3339.
type Date time.Time

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses s using the accepted client layouts.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t.UTC()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// NewDate wraps t, truncated to the millisecond precision MongoDB keeps.
func NewDate(t time.Time) Date {
	return Date(t.UTC().Truncate(time.Millisecond))
}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// IsZero lets the BSON encoder honor omitempty.
func (d Date) IsZero() bool { return time.Time(d).IsZero() }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(time.Time(d).UTC().Format(time.RFC3339Nano))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(d).UTC())
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bson.TypeNull || t == bson.TypeUndefined {
		*d = Date{}
		return nil
	}
	var tm time.Time
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&tm); err != nil {
		return err
	}
	*d = Date(tm.UTC())
	return nil
}
