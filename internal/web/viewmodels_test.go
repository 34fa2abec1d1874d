package web

import (
	"strings"
	"testing"
)

func TestFeedStateTriState(t *testing.T) {
	loading := LoadingFeed()
	if !loading.Loading || loading.Empty() {
		t.Fatalf("loading state misreported: %+v", loading)
	}
	if loading.Trips == nil {
		t.Fatal("trips must always be a slice")
	}

	empty := LoadedFeed(nil)
	if empty.Loading || !empty.Empty() {
		t.Fatalf("loaded-empty state misreported: %+v", empty)
	}
	if empty.Trips == nil {
		t.Fatal("trips must always be a slice")
	}

	populated := LoadedFeed([]TripViewModel{{Title: "Goa Trip"}})
	if populated.Loading || populated.Empty() {
		t.Fatalf("populated state misreported: %+v", populated)
	}
}

func TestRecentTripsSectionLoadingShowsPlaceholders(t *testing.T) {
	var sb strings.Builder
	if err := RecentTripsSection(LoadingFeed()).Render(&sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(sb.String(), "card-placeholder") {
		t.Fatal("loading state should render placeholders")
	}
}

func TestRecentTripsSectionEmptyState(t *testing.T) {
	var sb strings.Builder
	if err := RecentTripsSection(LoadedFeed(nil)).Render(&sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(sb.String(), "No trips available") {
		t.Fatal("empty state should invite posting a trip")
	}
}
