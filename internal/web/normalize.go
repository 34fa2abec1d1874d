package web

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripmate/internal/domain/models"
	"tripmate/internal/tripsfeed"
)

const (
	placeholderDash = "—"
	unknownCreator  = "Unknown"
	untitledTrip    = "Untitled"

	dateDisplayLayout = "Jan 2, 2006"
)

// Layouts the feed has been seen to use for travel dates. Tried in order.
var dateParseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormalizeTrip maps a loose feed record onto a fully-populated card model.
// It is total: any TripSummary, however sparse, yields a renderable value.
func NormalizeTrip(t tripsfeed.TripSummary) TripViewModel {
	vm := TripViewModel{
		Title:       untitledTrip,
		FromCity:    placeholderDash,
		ToCity:      placeholderDash,
		Date:        placeholderDash,
		Time:        placeholderDash,
		CreatorName: unknownCreator,
	}

	if v, ok := firstNonBlank(t.Title); ok {
		vm.Title = v
	}
	if v, ok := t.Origin(); ok {
		vm.FromCity = v
	}
	if v, ok := t.Destination(); ok {
		vm.ToCity = v
	}
	if v, ok := t.TravelDate(); ok {
		vm.Date = formatTravelDate(v)
	}
	if v, ok := t.TravelTime(); ok {
		vm.Time = v
	}
	if v, ok := t.CreatorName(); ok {
		vm.CreatorName = v
	}

	status := "active"
	if v, ok := t.RawStatus(); ok {
		status = strings.ToLower(v)
	}
	vm.Status = status
	vm.Category = categorize(status)

	vm.Current, vm.Max = t.Participants()
	vm.Key = deriveKey(t, vm)

	return vm
}

// NormalizeTrips maps a whole feed page, preserving order.
func NormalizeTrips(posts []tripsfeed.TripSummary) []TripViewModel {
	out := make([]TripViewModel, 0, len(posts))
	for _, p := range posts {
		out = append(out, NormalizeTrip(p))
	}
	return out
}

func categorize(status string) StatusCategory {
	switch status {
	case "active":
		return StatusActive
	case "full":
		return StatusFull
	default:
		return StatusOther
	}
}

// deriveKey prefers the record id; without one it concatenates display
// fields, which is stable across re-renders of the same data.
func deriveKey(t tripsfeed.TripSummary, vm TripViewModel) string {
	if id := strings.TrimSpace(string(t.ID)); id != "" {
		return id
	}
	return vm.Title + "|" + vm.FromCity + "|" + vm.ToCity
}

// formatTravelDate renders a raw date value for humans, or the dash
// placeholder when nothing parses.
func formatTravelDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateParseLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format(dateDisplayLayout)
		}
	}
	return placeholderDash
}

// ViewModelFromTrip builds a card model straight from a stored trip,
// applying the same defaults the feed normalizer guarantees.
func ViewModelFromTrip(t models.Trip) TripViewModel {
	vm := TripViewModel{
		Key:         strconv.FormatInt(t.ID, 10),
		Title:       untitledTrip,
		FromCity:    placeholderDash,
		ToCity:      placeholderDash,
		Date:        placeholderDash,
		Time:        placeholderDash,
		CreatorName: unknownCreator,
	}

	if v := strings.TrimSpace(t.Title); v != "" {
		vm.Title = v
	}
	if v := strings.TrimSpace(t.FromCity); v != "" {
		vm.FromCity = v
	}
	if v := strings.TrimSpace(t.ToCity); v != "" {
		vm.ToCity = v
	}
	if !t.TravelDate.IsZero() {
		vm.Date = t.TravelDate.Format(dateDisplayLayout)
	}
	if v := strings.TrimSpace(t.TravelTime); v != "" {
		vm.Time = v
	}
	if v := strings.TrimSpace(t.CreatorName); v != "" {
		vm.CreatorName = v
	}

	status := strings.ToLower(strings.TrimSpace(t.Status))
	if status == "" {
		status = "active"
	}
	vm.Status = status
	vm.Category = categorize(status)
	vm.Current = t.CurrentParticipants
	vm.Max = t.MaxParticipants

	return vm
}

// Seats renders the participant ratio for the card footer.
func (vm TripViewModel) Seats() string {
	return fmt.Sprintf("%d/%d travellers", vm.Current, vm.Max)
}

func firstNonBlank(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
