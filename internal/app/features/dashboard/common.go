// internal/app/features/dashboard/common.go

// Package dashboard assembles role-specific summaries from the core API.
// Each aggregator is read-only and reduces its own fetches; sub-fetches run
// sequentially and an empty platform yields zeroed summaries, not errors.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
)

// statsFetchLimit caps the single full fetch revenue reductions run over.
const statsFetchLimit = 1000

// previewLen is how many rows each dashboard preview list carries.
const previewLen = 5

// count asks the core API how many rows match the filters by requesting a
// one-row page and reading the meta total.
func count(ctx context.Context, api *gateway.Client, creds gateway.Credentials, path string, filters url.Values) (int64, error) {
	q := url.Values{}
	for k, vs := range filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", "1")
	q.Set("limit", "1")
	page, err := gateway.FetchPage[json.RawMessage](ctx, api, creds, path, q)
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}

// cappedFetch pulls up to statsFetchLimit rows from path for client-side
// reduction.
func cappedFetch[T any](ctx context.Context, api *gateway.Client, creds gateway.Credentials, path string, filters url.Values) ([]T, error) {
	q := url.Values{}
	for k, vs := range filters {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(statsFetchLimit))
	page, err := gateway.FetchPage[T](ctx, api, creds, path, q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// fetchReviews pulls the reviews visible to the caller at path
// ("/reviews/my" for a user's own, "/reviews/host" for ones received).
func fetchReviews(ctx context.Context, api *gateway.Client, creds gateway.Credentials, path string) ([]models.Review, error) {
	resp, err := api.Do(ctx, creds, gateway.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	var rows []models.Review
	if err := resp.DecodeData(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
