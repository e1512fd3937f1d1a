// internal/app/features/myevents/list.go
package myevents

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// statsFetchLimit caps the single full fetch the activity aggregation
// reduces over. Scales poorly past this many join records; the core API
// owns an aggregate endpoint if that ever matters.
const statsFetchLimit = 1000

// List fetches one page of the caller's join records, newest join first by
// default, each carrying its event.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.Participant], error) {
	return gateway.FetchPage[models.Participant](ctx, api, creds, "/events/my", p.UpstreamQuery())
}

// ListAllJoined fetches the caller's join records in one capped page for
// client-side aggregation.
func ListAllJoined(ctx context.Context, api *gateway.Client, creds gateway.Credentials) ([]models.Participant, error) {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(statsFetchLimit))
	page, err := gateway.FetchPage[models.Participant](ctx, api, creds, "/events/my", q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
