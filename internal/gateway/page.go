// internal/gateway/page.go
package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// Page is one page of a list response plus the total count across all
// pages, as reported by the core API's meta block.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// FetchPage performs a GET list call and decodes a typed page. Upstream
// failures surface as *UpstreamError; an empty collection is a valid page,
// not an error.
func FetchPage[T any](ctx context.Context, c *Client, creds Credentials, path string, q url.Values) (Page[T], error) {
	var page Page[T]

	resp, err := c.Do(ctx, creds, Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
	if err != nil {
		return page, err
	}
	if err := resp.Err(); err != nil {
		return page, err
	}
	if err := resp.DecodeData(&page.Items); err != nil {
		return page, err
	}
	if resp.Meta != nil {
		page.Total = resp.Meta.Total
		page.Page = resp.Meta.Page
		page.Limit = resp.Meta.Limit
	} else {
		page.Total = int64(len(page.Items))
	}
	return page, nil
}
