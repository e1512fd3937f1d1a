// internal/app/features/events/list.go
package events

import (
	"context"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// List fetches one page of the public event listing. The includePast filter
// only travels upstream when explicitly true; the core API defaults to
// future events.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.Event], error) {
	q := p.UpstreamQuery()
	if q.Get("includePast") != "true" {
		q.Del("includePast")
	}
	return gateway.FetchPage[models.Event](ctx, api, creds, "/events", q)
}

// ListAll fetches one page of every event regardless of status or date.
// Admin moderation view.
func ListAll(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.Event], error) {
	q := p.UpstreamQuery()
	q.Set("includePast", "true")
	return gateway.FetchPage[models.Event](ctx, api, creds, "/events", q)
}

// Get fetches a single event by ID.
func Get(ctx context.Context, api *gateway.Client, creds gateway.Credentials, eventID string) (*models.Event, error) {
	resp, err := api.Do(ctx, creds, gateway.Request{
		Method: http.MethodGet,
		Path:   "/events/" + eventID,
	})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	var event models.Event
	if err := resp.DecodeData(&event); err != nil {
		return nil, err
	}
	return &event, nil
}
