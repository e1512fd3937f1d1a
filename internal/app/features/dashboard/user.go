// internal/app/features/dashboard/user.go
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/gatherhub/gatherhub/internal/app/features/myevents"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// UserSummary is the regular user's dashboard.
type UserSummary struct {
	TotalJoined    int `json:"totalJoined"`
	UpcomingJoined int `json:"upcomingJoined"`
	PastJoined     int `json:"pastJoined"`
	ReviewsWritten int `json:"reviewsWritten"`

	Upcoming       []models.Event `json:"upcoming"`
	RecentlyJoined []models.Event `json:"recentlyJoined"`
}

// BuildUserSummary reduces the caller's join history into their dashboard.
// Upcoming previews sort soonest first, recently joined most recent first;
// both truncate to five.
func BuildUserSummary(ctx context.Context, api *gateway.Client, creds gateway.Credentials, now time.Time) (UserSummary, error) {
	joins, err := myevents.ListAllJoined(ctx, api, creds)
	if err != nil {
		return UserSummary{}, err
	}
	reviews, err := fetchReviews(ctx, api, creds, "/reviews/my")
	if err != nil {
		return UserSummary{}, err
	}

	s := UserSummary{
		TotalJoined:    len(joins),
		ReviewsWritten: len(reviews),
	}

	type joined struct {
		event    models.Event
		joinedAt time.Time
	}
	var upcoming, recent []joined
	for _, j := range joins {
		if j.Event == nil {
			continue
		}
		row := joined{event: *j.Event, joinedAt: j.JoinedAt}
		recent = append(recent, row)
		if j.Event.IsPast(now) {
			s.PastJoined++
		} else {
			s.UpcomingJoined++
			upcoming = append(upcoming, row)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].event.Date.Before(upcoming[j].event.Date)
	})
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].joinedAt.After(recent[j].joinedAt)
	})

	for _, row := range upcoming {
		if len(s.Upcoming) == previewLen {
			break
		}
		s.Upcoming = append(s.Upcoming, row.event)
	}
	for _, row := range recent {
		if len(s.RecentlyJoined) == previewLen {
			break
		}
		s.RecentlyJoined = append(s.RecentlyJoined, row.event)
	}
	return s, nil
}
