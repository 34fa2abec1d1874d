package web

import (
	"net/url"
	"strings"
)

// SearchFilters is the transient trip-search input. Fields stay empty
// strings until the visitor fills them; nothing is persisted.
type SearchFilters struct {
	FromCity string
	ToCity   string
	Date     string
}

// ParseSearchFilters reads the search form's query parameters.
func ParseSearchFilters(values url.Values) SearchFilters {
	return SearchFilters{
		FromCity: strings.TrimSpace(values.Get("fromCity")),
		ToCity:   strings.TrimSpace(values.Get("toCity")),
		Date:     strings.TrimSpace(values.Get("date")),
	}
}

// Query encodes only the filled-in fields, URL-escaped.
func (f SearchFilters) Query() url.Values {
	q := url.Values{}
	if f.FromCity != "" {
		q.Set("fromCity", f.FromCity)
	}
	if f.ToCity != "" {
		q.Set("toCity", f.ToCity)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	return q
}

// ListingURL is the navigation target for a submitted search.
func (f SearchFilters) ListingURL() string {
	q := f.Query()
	if len(q) == 0 {
		return "/posts"
	}
	return "/posts?" + q.Encode()
}

// Blank reports whether the visitor filled in anything at all.
func (f SearchFilters) Blank() bool {
	return f.FromCity == "" && f.ToCity == "" && f.Date == ""
}
