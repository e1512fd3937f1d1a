// internal/app/features/myevents/activity.go
package myevents

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/app/system/monthly"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// activityMonths is how many trailing month buckets the activity feed shows.
const activityMonths = 6

// Activity buckets the caller's joins by join month and returns the last
// six months, oldest first. An empty history yields an empty slice.
func Activity(ctx context.Context, api *gateway.Client, creds gateway.Credentials) ([]monthly.Point, error) {
	joins, err := ListAllJoined(ctx, api, creds)
	if err != nil {
		return nil, err
	}
	series := monthly.NewSeries()
	for _, j := range joins {
		series.Add(j.JoinedAt, 0)
	}
	return series.Last(activityMonths), nil
}
