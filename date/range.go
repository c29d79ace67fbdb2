package date

import (
	"errors"
	"fmt"
)

// Range represents a range of dates, both bounds included.
type Range struct{ From, To Date }

// NewRange return the well known period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Validate checks that both bounds are set and ordered.
func (r Range) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return errors.New("date range bounds must be set")
	}
	if r.To.Before(r.From) {
		return fmt.Errorf("invalid date range %s: end is before start", r)
	}
	return nil
}

// Label is the short "YYYY-YYYY" form used in chart titles.
func (r Range) Label() string {
	// years are labelled by their exclusive end: 2022-01-01..2023-12-31 is "2022-2024"
	end := r.To.Add(1).Year()
	if end == r.From.Year() {
		return fmt.Sprintf("%d", end)
	}
	return fmt.Sprintf("%d-%d", r.From.Year(), end)
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// Identifier compute a unique identifier for the Range.
// If the period is defined, use a short insighful name
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		_, week := r.From.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	default:
		return r.From.Format("2006")
	}
}

// Period returns the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}
