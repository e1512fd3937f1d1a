package listquery

import (
	"net/url"
	"testing"
)

func TestDecodeDefaults(t *testing.T) {
	p, err := Decode(url.Values{}, EventDefaults)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if p.Page != 1 || p.Limit != EventDefaults.Limit {
		t.Errorf("Decode() page/limit = %d/%d", p.Page, p.Limit)
	}
	if p.SortBy != "date" || p.SortOrder != Desc {
		t.Errorf("Decode() sort = %s:%s, want date:desc", p.SortBy, p.SortOrder)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"malformed page", "page=abc"},
		{"malformed limit", "limit=ten"},
		{"zero limit", "limit=0"},
		{"bad sort order", "sortOrder=sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := url.ParseQuery(tt.query)
			if _, err := Decode(v, UserDefaults); err == nil {
				t.Errorf("Decode(%q) expected error", tt.query)
			}
		})
	}
}

func TestDecodePageBelowOneClampsToOne(t *testing.T) {
	v, _ := url.ParseQuery("page=0")
	p, err := Decode(v, UserDefaults)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}

	v, _ = url.ParseQuery("page=-3")
	p, _ = Decode(v, UserDefaults)
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
}

func TestEncodeOmitsAllSentinel(t *testing.T) {
	p := New(UserDefaults)
	p = p.WithFilter("status", All)
	p = p.WithFilter("role", "HOST")

	v := p.Encode()
	if v.Has("status") {
		t.Errorf("encoded query must not contain a filter set to %q: %v", All, v)
	}
	if v.Get("role") != "HOST" {
		t.Errorf("role filter lost: %v", v)
	}
}

func TestWithFilterResetsPage(t *testing.T) {
	p := New(EventDefaults).WithPage(5)
	if p.Page != 5 {
		t.Fatalf("WithPage(5) = %d", p.Page)
	}

	narrowed := p.WithFilter("status", "OPEN")
	if narrowed.Page != 1 {
		t.Errorf("WithFilter must reset page, got %d", narrowed.Page)
	}
	if narrowed.Encode().Has("page") {
		t.Errorf("encoded query after narrowing must have no page key: %v", narrowed.Encode())
	}
	// The original is unchanged.
	if p.Page != 5 {
		t.Errorf("WithFilter mutated the receiver")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"page only", "page=3"},
		{"filters and search", "location=Austin&page=2&searchTerm=chess&type=SPORTS"},
		{"custom sort", "sortBy=name&sortOrder=asc"},
		{"custom limit", "limit=25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			p, err := Decode(v, EventDefaults)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got := p.Encode().Encode(); got != tt.query {
				t.Errorf("encode(decode(%q)) = %q", tt.query, got)
			}
		})
	}
}

func TestDecodePreservesNonDefaultFields(t *testing.T) {
	p := New(EventDefaults).
		WithFilter("type", "MUSIC").
		WithSearch("jazz").
		WithPage(4)

	back, err := Decode(p.Encode(), EventDefaults)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if back.Filter("type") != "MUSIC" {
		t.Errorf("type filter = %q", back.Filter("type"))
	}
	if back.SearchTerm != "jazz" {
		t.Errorf("searchTerm = %q", back.SearchTerm)
	}
	if back.Page != 4 {
		t.Errorf("page = %d", back.Page)
	}
}

func TestUpstreamQueryAlwaysCarriesPaging(t *testing.T) {
	p := New(EventDefaults)
	v := p.UpstreamQuery()
	if v.Get("page") != "1" || v.Get("limit") != "9" {
		t.Errorf("UpstreamQuery() = %v", v)
	}
	if v.Get("sortBy") != "date" || v.Get("sortOrder") != "desc" {
		t.Errorf("UpstreamQuery() sort = %v", v)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{37, 12, 4},
		{36, 12, 3},
		{1, 12, 1},
		{0, 12, 0},
		{12, 12, 1},
		{13, 12, 2},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
