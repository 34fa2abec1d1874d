package web

import (
	"net/url"
	"testing"
)

func TestSearchFiltersOnlyDestination(t *testing.T) {
	f := SearchFilters{ToCity: "Goa"}
	if got := f.ListingURL(); got != "/posts?toCity=Goa" {
		t.Fatalf("listing url = %q", got)
	}
}

func TestSearchFiltersAllFieldsEncoded(t *testing.T) {
	f := SearchFilters{FromCity: "New Delhi", ToCity: "Goa", Date: "2025-10-01"}
	got := f.ListingURL()

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("listing url does not parse: %v", err)
	}
	q := parsed.Query()
	if q.Get("fromCity") != "New Delhi" || q.Get("toCity") != "Goa" || q.Get("date") != "2025-10-01" {
		t.Fatalf("query = %q", got)
	}
	if len(q) != 3 {
		t.Fatalf("unexpected extra params in %q", got)
	}
}

func TestSearchFiltersEmptySubmit(t *testing.T) {
	f := SearchFilters{}
	if !f.Blank() {
		t.Fatal("empty filters should be blank")
	}
	if got := f.ListingURL(); got != "/posts" {
		t.Fatalf("listing url = %q, want bare /posts", got)
	}
}

func TestParseSearchFiltersTrims(t *testing.T) {
	values := url.Values{}
	values.Set("fromCity", "  Pune ")
	values.Set("date", " ")

	f := ParseSearchFilters(values)
	if f.FromCity != "Pune" {
		t.Fatalf("fromCity = %q", f.FromCity)
	}
	if f.Date != "" {
		t.Fatalf("blank date should stay empty, got %q", f.Date)
	}
	if f.ToCity != "" {
		t.Fatalf("missing toCity should stay empty, got %q", f.ToCity)
	}
}
