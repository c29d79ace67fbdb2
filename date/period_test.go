package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{"Single Day", New(2025, time.September, 8), Daily, Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"A Wednesday", New(2025, time.September, 10), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"A Sunday", New(2025, time.September, 14), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"A leap year", New(2024, time.February, 15), Monthly, Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"Q2", New(2025, time.May, 20), Quarterly, Range{New(2025, time.April, 1), New(2025, time.June, 30)}},
		{"Q4", New(2025, time.December, 31), Quarterly, Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"Year", New(2025, time.September, 8), Yearly, Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Daily Identifier", NewRange(New(2025, time.September, 8), Daily), "2025-09-08"},
		{"Weekly Identifier", NewRange(New(2025, time.September, 8), Weekly), "2025-W37"},
		{"Early Week Identifier", NewRange(New(2025, time.January, 6), Weekly), "2025-W02"},
		{"Monthly Identifier", NewRange(New(2025, time.September, 1), Monthly), "2025-09"},
		{"Quarterly Identifier", NewRange(New(2025, time.July, 1), Quarterly), "2025-Q3"},
		{"Yearly Identifier", NewRange(New(2025, time.January, 1), Yearly), "2025"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
		{"Multi Year", Range{From: New(2025, time.January, 1), To: New(2026, time.December, 31)}, "2025-01-01_2026-12-31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRange_Label(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{Range{New(2022, 1, 1), New(2023, 12, 31)}, "2022-2024"},
		{Range{New(2022, 1, 1), New(2022, 6, 30)}, "2022"},
		{Range{New(2022, 3, 1), New(2023, 6, 30)}, "2022-2023"},
	}
	for _, tc := range testCases {
		if got := tc.in.Label(); got != tc.want {
			t.Errorf("%v.Label() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRange_Validate(t *testing.T) {
	if err := (Range{New(2022, 1, 1), New(2023, 12, 31)}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error %v", err)
	}
	if err := (Range{New(2023, 1, 1), New(2022, 12, 31)}).Validate(); err == nil {
		t.Error("Validate() on reversed range should fail")
	}
	if err := (Range{To: New(2022, 12, 31)}).Validate(); err == nil {
		t.Error("Validate() on open range should fail")
	}
}

func TestPeriod_Until(t *testing.T) {
	now := time.Date(2025, time.September, 10, 18, 0, 0, 0, time.UTC)
	if got, want := Daily.Until(now), 6*time.Hour; got != want {
		t.Errorf("Daily.Until() = %v, want %v", got, want)
	}
	if got, want := Monthly.Until(now), 20*24*time.Hour+6*time.Hour; got != want {
		t.Errorf("Monthly.Until() = %v, want %v", got, want)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Daily", "daily", Daily, false},
		{"Weekly", "weekly", Weekly, false},
		{"Monthly", "monthly", Monthly, false},
		{"Quarterly", "quarterly", Quarterly, false},
		{"Yearly", "yearly", Yearly, false},
		{"Unknown", "unknown", Daily, true},
		{"Day", " Day", Daily, false},
		{"Month", "month", Monthly, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
