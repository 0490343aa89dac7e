package models

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-01T10:30:00Z", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-03-01T10:30:00+02:00", time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)},
		{" 2024-03-01T10:30:00 ", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if !got.Time().Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got.Time(), tt.want)
		}
	}

	if _, err := ParseDate("March 1st"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		D Date `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-06-15"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := v.D.Time().Format("2006-01-02"); got != "2024-06-15" {
		t.Errorf("got %s", got)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"d":"2024-06-15T00:00:00Z"}` {
		t.Errorf("marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"d":""}`), &v); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !v.D.IsZero() {
		t.Error("empty string should give zero date")
	}

	if err := json.Unmarshal([]byte(`{"d":42}`), &v); err == nil {
		t.Error("expected error for numeric date")
	}
}

func TestDate_BSON(t *testing.T) {
	type doc struct {
		D Date `bson:"d"`
	}
	in := doc{D: NewDate(time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC))}

	raw, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if typ := bson.Raw(raw).Lookup("d").Type; typ != bson.TypeDateTime {
		t.Errorf("stored type = %v, want datetime", typ)
	}

	var out doc
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.D.Time().Equal(in.D.Time()) {
		t.Errorf("round trip: got %v, want %v", out.D.Time(), in.D.Time())
	}
}
