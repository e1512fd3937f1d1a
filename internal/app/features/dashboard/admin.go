// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gatherhub/gatherhub/internal/app/features/events"
	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// AdminSummary is the platform-wide dashboard.
type AdminSummary struct {
	TotalUsers  int64 `json:"totalUsers"`
	ActiveUsers int64 `json:"activeUsers"`
	TotalHosts  int64 `json:"totalHosts"`
	ActiveHosts int64 `json:"activeHosts"`

	TotalEvents         int64 `json:"totalEvents"`
	TotalPayments       int64 `json:"totalPayments"`
	PendingHostRequests int64 `json:"pendingHostRequests"`

	Revenue float64 `json:"revenue"`

	RecentEvents []models.Event `json:"recentEvents"`
	RecentUsers  []models.User  `json:"recentUsers"`
}

// BuildAdminSummary assembles the platform counts. Counts come from meta
// totals of one-row pages; revenue reduces a capped full payment fetch.
func BuildAdminSummary(ctx context.Context, api *gateway.Client, creds gateway.Credentials) (AdminSummary, error) {
	var s AdminSummary
	var err error

	active := url.Values{"status": {models.StatusActive}}
	pending := url.Values{"status": {models.HostRequestPending}}

	if s.TotalUsers, err = count(ctx, api, creds, "/users", nil); err != nil {
		return AdminSummary{}, err
	}
	if s.ActiveUsers, err = count(ctx, api, creds, "/users", active); err != nil {
		return AdminSummary{}, err
	}
	if s.TotalHosts, err = count(ctx, api, creds, "/hosts", nil); err != nil {
		return AdminSummary{}, err
	}
	if s.ActiveHosts, err = count(ctx, api, creds, "/hosts", active); err != nil {
		return AdminSummary{}, err
	}
	if s.TotalEvents, err = count(ctx, api, creds, "/events", url.Values{"includePast": {"true"}}); err != nil {
		return AdminSummary{}, err
	}
	if s.TotalPayments, err = count(ctx, api, creds, "/payments", nil); err != nil {
		return AdminSummary{}, err
	}
	if s.PendingHostRequests, err = count(ctx, api, creds, "/host-requests", pending); err != nil {
		return AdminSummary{}, err
	}

	payments, err := cappedFetch[models.Payment](ctx, api, creds, "/payments", nil)
	if err != nil {
		return AdminSummary{}, err
	}
	for _, p := range payments {
		if p.Status == models.PaymentPaid {
			s.Revenue += p.Amount
		}
	}

	recentEvents, err := events.ListAll(ctx, api, creds, listquery.Params{
		Page: 1, Limit: previewLen, SortBy: "createdAt", SortOrder: "desc",
	})
	if err != nil {
		return AdminSummary{}, err
	}
	s.RecentEvents = recentEvents.Items

	recentUsers, err := cappedFetchPreview[models.User](ctx, api, creds, "/users", url.Values{
		"sortBy": {"createdAt"}, "sortOrder": {"desc"},
	})
	if err != nil {
		return AdminSummary{}, err
	}
	s.RecentUsers = recentUsers

	return s, nil
}

// cappedFetchPreview pulls one preview-sized page.
func cappedFetchPreview[T any](ctx context.Context, api *gateway.Client, creds gateway.Credentials, path string, filters url.Values) ([]T, error) {
	q := url.Values{}
	for k, vs := range filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(previewLen))
	page, err := gateway.FetchPage[T](ctx, api, creds, path, q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
