package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/daniilgb/budgetwise/models"
)

func decode(t *testing.T, raw string) models.FlexTime {
	t.Helper()
	var f models.FlexTime
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return f
}

func TestFlexTimeISOString(t *testing.T) {
	f := decode(t, `"2025-03-08T09:30:00Z"`)
	if f.IsZero() {
		t.Fatal("RFC3339 string decoded to zero time")
	}
	if f.UTC().Hour() != 9 || f.UTC().Minute() != 30 {
		t.Errorf("wrong time decoded: %s", f.Time)
	}
}

func TestFlexTimeDateOnly(t *testing.T) {
	f := decode(t, `"2025-03-08"`)
	y, m, d := f.Date()
	if y != 2025 || m != time.March || d != 8 {
		t.Errorf("date-only string decoded to %s", f.Time)
	}
}

func TestFlexTimeEpochPair(t *testing.T) {
	ref := time.Date(2025, 3, 8, 9, 30, 0, 0, time.UTC)
	f := decode(t, `{"seconds":1741426200,"nanoseconds":0}`)
	if !f.Time.Equal(ref) {
		t.Errorf("epoch pair decoded to %s, want %s", f.UTC(), ref)
	}
}

func TestFlexTimeUnparseableIsZeroNotError(t *testing.T) {
	for _, raw := range []string{`"not a date"`, `"31/12/2025"`, `{}`, `null`, `12345`} {
		f := decode(t, raw)
		if !f.IsZero() {
			t.Errorf("%s should decode to zero time, got %s", raw, f.Time)
		}
	}
}

func TestFlexTimeMarshal(t *testing.T) {
	zero, err := json.Marshal(models.FlexTime{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(zero) != "null" {
		t.Errorf("zero time should marshal to null, got %s", zero)
	}

	f := models.FlexTime{Time: time.Date(2025, 3, 8, 9, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2025-03-08T09:30:00Z"` {
		t.Errorf("marshal output: %s", out)
	}
}
