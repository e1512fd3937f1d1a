// internal/app/system/listquery/listquery.go

// Package listquery is the query-parameter codec shared by every paginated
// list: it maps a typed page/sort/filter request to and from a URL query
// string with per-resource defaults. Values equal to the "all" sentinel are
// treated as unset and never transmitted.
package listquery

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// All is the select-filter sentinel meaning "no filter". It is never
// emitted into an encoded query string.
const All = "all"

// Sort orders.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Reserved query keys; everything else decodes into Filters.
const (
	keyPage   = "page"
	keyLimit  = "limit"
	keySortBy = "sortBy"
	keyOrder  = "sortOrder"
	keySearch = "searchTerm"
)

// Defaults carries the resource-specific canonical sort and page size.
type Defaults struct {
	Limit     int
	SortBy    string
	SortOrder string
}

// Per-resource defaults. Events sort by date; administrative listings and
// payments sort by creation time, newest first.
var (
	EventDefaults       = Defaults{Limit: 9, SortBy: "date", SortOrder: Desc}
	UserDefaults        = Defaults{Limit: 10, SortBy: "createdAt", SortOrder: Desc}
	HostDefaults        = Defaults{Limit: 10, SortBy: "createdAt", SortOrder: Desc}
	HostRequestDefaults = Defaults{Limit: 10, SortBy: "createdAt", SortOrder: Desc}
	PaymentDefaults     = Defaults{Limit: 10, SortBy: "createdAt", SortOrder: Desc}
)

// Params is one fully-resolved list request.
type Params struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	SearchTerm string
	Filters    map[string]string

	defaults Defaults
}

// New returns Params at page 1 with the given defaults applied.
func New(d Defaults) Params {
	return Params{
		Page:      1,
		Limit:     d.Limit,
		SortBy:    d.SortBy,
		SortOrder: d.SortOrder,
		defaults:  d,
	}
}

// Decode parses a query string into Params. Absent keys fall back to the
// defaults; a present but malformed number is an error rather than a silent
// default, so bad client input is never masked as a valid request.
func Decode(v url.Values, d Defaults) (Params, error) {
	p := New(d)

	if s := v.Get(keyPage); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, fmt.Errorf("invalid page %q", s)
		}
		if n < 1 {
			n = 1
		}
		p.Page = n
	}
	if s := v.Get(keyLimit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Params{}, fmt.Errorf("invalid limit %q", s)
		}
		p.Limit = n
	}
	if s := v.Get(keySortBy); s != "" {
		p.SortBy = s
	}
	if s := v.Get(keyOrder); s != "" {
		if s != Asc && s != Desc {
			return Params{}, fmt.Errorf("invalid sortOrder %q", s)
		}
		p.SortOrder = s
	}
	p.SearchTerm = v.Get(keySearch)

	for key, vals := range v {
		switch key {
		case keyPage, keyLimit, keySortBy, keyOrder, keySearch:
			continue
		}
		if len(vals) == 0 || vals[0] == "" || vals[0] == All {
			continue
		}
		if p.Filters == nil {
			p.Filters = map[string]string{}
		}
		p.Filters[key] = vals[0]
	}

	return p, nil
}

// Encode renders Params as a query string. Defaults and sentinels are
// omitted: page 1, the default limit/sort, empty search, and any filter set
// to "all" never appear, so decode(encode(p)) round-trips every meaningful
// field and encode(decode(s)) reproduces strings built by this package.
func (p Params) Encode() url.Values {
	v := url.Values{}
	if p.Page > 1 {
		v.Set(keyPage, strconv.Itoa(p.Page))
	}
	if p.Limit > 0 && p.Limit != p.defaults.Limit {
		v.Set(keyLimit, strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" && p.SortBy != p.defaults.SortBy {
		v.Set(keySortBy, p.SortBy)
	}
	if p.SortOrder != "" && p.SortOrder != p.defaults.SortOrder {
		v.Set(keyOrder, p.SortOrder)
	}
	if p.SearchTerm != "" {
		v.Set(keySearch, p.SearchTerm)
	}
	for _, key := range sortedKeys(p.Filters) {
		val := p.Filters[key]
		if val == "" || val == All {
			continue
		}
		v.Set(key, val)
	}
	return v
}

// UpstreamQuery renders the full query sent to the core API. Unlike Encode
// it always carries page and limit, since the upstream has no notion of our
// display defaults. Sentinel filters stay omitted.
func (p Params) UpstreamQuery() url.Values {
	v := p.Encode()
	v.Set(keyPage, strconv.Itoa(p.Page))
	v.Set(keyLimit, strconv.Itoa(p.Limit))
	if p.SortBy != "" {
		v.Set(keySortBy, p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set(keyOrder, p.SortOrder)
	}
	return v
}

// WithFilter returns a copy with the filter applied and the page reset, so
// narrowing a result set never leaves the caller on an out-of-range page.
// Setting a filter to "" or "all" clears it.
func (p Params) WithFilter(key, val string) Params {
	out := p
	out.Filters = make(map[string]string, len(p.Filters)+1)
	for k, v := range p.Filters {
		out.Filters[k] = v
	}
	if val == "" || val == All {
		delete(out.Filters, key)
	} else {
		out.Filters[key] = val
	}
	out.Page = 1
	return out
}

// WithSearch returns a copy with the search term applied and the page reset.
func (p Params) WithSearch(term string) Params {
	out := p
	out.SearchTerm = term
	out.Page = 1
	return out
}

// WithPage returns a copy on the given page; pages below 1 clamp to 1.
func (p Params) WithPage(n int) Params {
	out := p
	if n < 1 {
		n = 1
	}
	out.Page = n
	return out
}

// Filter returns the named filter value, or "" when unset.
func (p Params) Filter(key string) string {
	return p.Filters[key]
}

// TotalPages derives the page count for a total row count and page size.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
