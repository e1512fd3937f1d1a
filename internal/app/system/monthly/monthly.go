// internal/app/system/monthly/monthly.go
package monthly

import (
	"sort"
	"time"
)

// Point is one month's aggregate. Month is the first instant of the month
// in UTC and is the sort key; Label is the display form.
type Point struct {
	Month  time.Time `json:"month"`
	Label  string    `json:"label"`
	Count  int       `json:"count"`
	Amount float64   `json:"amount"`
}

// Key normalizes t to the first instant of its month in UTC.
func Key(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Label formats a month key for display, e.g. "Jan 2026".
func Label(t time.Time) string {
	return t.Format("Jan 2006")
}

// Series accumulates per-month counts and amounts.
type Series struct {
	points map[time.Time]*Point
}

// NewSeries creates an empty series.
func NewSeries() *Series {
	return &Series{points: map[time.Time]*Point{}}
}

// Add records one occurrence at time t carrying amount. Pass 0 when only
// the count matters.
func (s *Series) Add(t time.Time, amount float64) {
	k := Key(t)
	p, ok := s.points[k]
	if !ok {
		p = &Point{Month: k, Label: Label(k)}
		s.points[k] = p
	}
	p.Count++
	p.Amount += amount
}

// Points returns every month in chronological order. Months sort by their
// time key, never by label, so "Apr 2026" follows "Jan 2026".
func (s *Series) Points() []Point {
	out := make([]Point, 0, len(s.points))
	for _, p := range s.points {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// Last returns the most recent n months of the series, oldest first.
func (s *Series) Last(n int) []Point {
	pts := s.Points()
	if len(pts) > n {
		pts = pts[len(pts)-n:]
	}
	return pts
}
