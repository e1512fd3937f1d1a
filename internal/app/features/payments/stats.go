// internal/app/features/payments/stats.go
package payments

import (
	"sort"

	"github.com/gatherhub/gatherhub/internal/app/system/monthly"
	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// statsMonths is how many trailing month buckets the spending chart shows.
const statsMonths = 6

// Stats is the caller's payment summary. TotalSpent covers PAID payments
// only; UNPAID rows count but never contribute to amounts.
type Stats struct {
	TotalSpent  float64 `json:"totalSpent"`
	TotalCount  int     `json:"totalCount"`
	PaidCount   int     `json:"paidCount"`
	UnpaidCount int     `json:"unpaidCount"`

	Monthly     []monthly.Point `json:"monthly"`
	ByEventType []TypeStat      `json:"byEventType"`
}

// TypeStat is PAID spending grouped by the event's type.
type TypeStat struct {
	Type   string  `json:"type"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// ComputeStats reduces a payment collection into a summary. Pure; an empty
// slice yields a zeroed summary, never an error.
func ComputeStats(rows []models.Payment) Stats {
	s := Stats{TotalCount: len(rows)}
	series := monthly.NewSeries()
	byType := map[string]*TypeStat{}

	for _, p := range rows {
		if p.Status != models.PaymentPaid {
			s.UnpaidCount++
			continue
		}
		s.PaidCount++
		s.TotalSpent += p.Amount

		when := p.CreatedAt
		if p.PaidAt != nil {
			when = *p.PaidAt
		}
		series.Add(when, p.Amount)

		if p.Event != nil {
			ts, ok := byType[p.Event.Type]
			if !ok {
				ts = &TypeStat{Type: p.Event.Type}
				byType[p.Event.Type] = ts
			}
			ts.Count++
			ts.Amount += p.Amount
		}
	}

	s.Monthly = series.Last(statsMonths)
	s.ByEventType = make([]TypeStat, 0, len(byType))
	for _, ts := range byType {
		s.ByEventType = append(s.ByEventType, *ts)
	}
	sort.Slice(s.ByEventType, func(i, j int) bool {
		return s.ByEventType[i].Type < s.ByEventType[j].Type
	})
	return s
}
