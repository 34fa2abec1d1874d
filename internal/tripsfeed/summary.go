package tripsfeed

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TripSummary is one trip as the posts feed returns it. The upstream schema
// has drifted across deployments, so every field is optional and several
// concepts are reachable under more than one key. Synonym resolution lives
// in the accessor methods so the priority order stays in one place.
type TripSummary struct {
	ID    FlexID  `json:"id"`
	Title *string `json:"title"`

	FromCity *string `json:"fromCity"`
	From     *string `json:"from"`

	ToCity *string `json:"toCity"`
	To     *string `json:"to"`

	Date      *string `json:"date"`
	StartDate *string `json:"startDate"`
	TripDate  *string `json:"tripDate"`

	Time      *string `json:"time"`
	StartTime *string `json:"startTime"`

	Creator *Creator `json:"creator"`
	Status  *string  `json:"status"`

	CurrentParticipants *int `json:"currentParticipants"`
	MaxParticipants     *int `json:"maxParticipants"`
}

type Creator struct {
	Name *string `json:"name"`
}

// FlexID tolerates both string and numeric ids on the wire.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// firstSet walks candidate fields in priority order and returns the first
// one that is present with a non-blank value.
func firstSet(candidates ...*string) (string, bool) {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if v := strings.TrimSpace(*c); v != "" {
			return v, true
		}
	}
	return "", false
}

// Origin resolves the departure city: fromCity wins over from.
func (t TripSummary) Origin() (string, bool) {
	return firstSet(t.FromCity, t.From)
}

// Destination resolves the arrival city: toCity wins over to.
func (t TripSummary) Destination() (string, bool) {
	return firstSet(t.ToCity, t.To)
}

// TravelDate resolves the raw date value: date, then startDate, then tripDate.
func (t TripSummary) TravelDate() (string, bool) {
	return firstSet(t.Date, t.StartDate, t.TripDate)
}

// TravelTime resolves the raw time value: time wins over startTime.
func (t TripSummary) TravelTime() (string, bool) {
	return firstSet(t.Time, t.StartTime)
}

// CreatorName resolves the poster's display name.
func (t TripSummary) CreatorName() (string, bool) {
	if t.Creator == nil {
		return "", false
	}
	return firstSet(t.Creator.Name)
}

// RawStatus resolves the status string, if any.
func (t TripSummary) RawStatus() (string, bool) {
	return firstSet(t.Status)
}

// Participants returns current and max counts, defaulting both to 0.
func (t TripSummary) Participants() (current, max int) {
	if t.CurrentParticipants != nil {
		current = *t.CurrentParticipants
	}
	if t.MaxParticipants != nil {
		max = *t.MaxParticipants
	}
	return current, max
}
