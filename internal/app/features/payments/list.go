// internal/app/features/payments/list.go
package payments

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// statsFetchLimit caps the single full fetch the stats reduction runs over.
const statsFetchLimit = 1000

// List fetches one page of the caller's payment history, each row carrying
// its event.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.Payment], error) {
	return gateway.FetchPage[models.Payment](ctx, api, creds, "/payments", p.UpstreamQuery())
}

// listAll fetches the caller's payments in one capped page for client-side
// aggregation.
func listAll(ctx context.Context, api *gateway.Client, creds gateway.Credentials) ([]models.Payment, error) {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(statsFetchLimit))
	page, err := gateway.FetchPage[models.Payment](ctx, api, creds, "/payments", q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
