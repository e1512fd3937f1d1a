// internal/app/features/dashboard/host.go
package dashboard

import (
	"context"
	"time"

	"github.com/gatherhub/gatherhub/internal/app/features/hostevents"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// HostSummary is the host's dashboard.
type HostSummary struct {
	TotalEvents    int `json:"totalEvents"`
	UpcomingEvents int `json:"upcomingEvents"`
	PastEvents     int `json:"pastEvents"`

	TotalParticipants int     `json:"totalParticipants"`
	Revenue           float64 `json:"revenue"`
	ReviewCount       int     `json:"reviewCount"`
	AverageRating     float64 `json:"averageRating"`

	Events []HostEventPreview `json:"events"`
}

// HostEventPreview is one owned event with its engagement counts.
type HostEventPreview struct {
	Event        models.Event `json:"event"`
	Participants int          `json:"participants"`
	Payments     int          `json:"payments"`
}

// BuildHostSummary reduces a host's owned events, received payments, and
// received reviews into their dashboard. Revenue sums PAID payments only.
func BuildHostSummary(ctx context.Context, api *gateway.Client, creds gateway.Credentials, now time.Time) (HostSummary, error) {
	events, err := hostevents.ListAll(ctx, api, creds)
	if err != nil {
		return HostSummary{}, err
	}
	payments, err := cappedFetch[models.Payment](ctx, api, creds, "/payments/host", nil)
	if err != nil {
		return HostSummary{}, err
	}
	reviews, err := fetchReviews(ctx, api, creds, "/reviews/host")
	if err != nil {
		return HostSummary{}, err
	}

	s := HostSummary{
		TotalEvents: len(events),
		ReviewCount: len(reviews),
	}

	paidByEvent := map[string]int{}
	for _, p := range payments {
		if p.Status != models.PaymentPaid {
			continue
		}
		s.Revenue += p.Amount
		paidByEvent[p.EventID]++
	}

	var ratingSum int
	for _, rv := range reviews {
		ratingSum += rv.Rating
	}
	if len(reviews) > 0 {
		s.AverageRating = float64(ratingSum) / float64(len(reviews))
	}

	for _, e := range events {
		if e.IsPast(now) {
			s.PastEvents++
		} else {
			s.UpcomingEvents++
		}
		s.TotalParticipants += e.CurrentParticipants
		if len(s.Events) < previewLen {
			s.Events = append(s.Events, HostEventPreview{
				Event:        e,
				Participants: e.CurrentParticipants,
				Payments:     paidByEvent[e.ID],
			})
		}
	}
	return s, nil
}
