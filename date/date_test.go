package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, 2, 29), New(2025, 3, 1); got != want {
		t.Errorf("New(2025, 2, 29) = %v want %v", got, want)
	}
	if got, want := New(2025, 1, 31).Add(1), New(2025, 2, 1); got != want {
		t.Errorf("Add(1) = %v want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2024, 12, 31), New(2025, 1, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is not a total order on %v, %v", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After inconsistent for %v, %v", a, b)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse(2025-7-1) = %v", d)
	}
	if _, err := Parse("01/07/2025"); err == nil {
		t.Error("Parse() should reject non ISO dates")
	}
}

func TestJSON(t *testing.T) {
	var got struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-02-13"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Date != New(2024, 2, 13) {
		t.Errorf("Unmarshal() = %v", got.Date)
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-02"}`), &got); err == nil {
		t.Error("Unmarshal() of an incomplete date should fail")
	}
}

func TestFromTime(t *testing.T) {
	ny := time.FixedZone("EST", -5*3600)
	// 2024-01-02 21:00 in New York is already the 3rd in UTC.
	tm := time.Date(2024, 1, 2, 21, 0, 0, 0, ny)
	if got := FromTime(tm); got != New(2024, 1, 2) {
		t.Errorf("FromTime() = %v want 2024-01-02", got)
	}
}
