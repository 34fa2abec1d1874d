package services

import (
	"strconv"

	"tripmate/internal/domain/models"
	"tripmate/internal/repositories"
	"tripmate/internal/utils"
)

const (
	// DefaultPostLimit matches what the landing page requests.
	DefaultPostLimit = 6
	maxPostLimit     = 24
)

// PostDTO is the wire shape of one trip in the public posts feed.
type PostDTO struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	FromCity            string     `json:"fromCity"`
	ToCity              string     `json:"toCity"`
	Date                string     `json:"date,omitempty"`
	Time                string     `json:"time,omitempty"`
	Creator             CreatorDTO `json:"creator"`
	Status              string     `json:"status"`
	CurrentParticipants int        `json:"currentParticipants"`
	MaxParticipants     int        `json:"maxParticipants"`
}

type CreatorDTO struct {
	Name string `json:"name,omitempty"`
}

type TripsService struct {
	Repo      repositories.TripRepository
	RequestID string
}

// ClampPostLimit keeps the requested page size inside sane bounds.
func ClampPostLimit(limit int) int {
	if limit <= 0 {
		return DefaultPostLimit
	}
	if limit > maxPostLimit {
		return maxPostLimit
	}
	return limit
}

// ListPosts returns up to limit recent trips as feed DTOs.
func (s TripsService) ListPosts(limit int) ([]PostDTO, error) {
	limit = ClampPostLimit(limit)
	utils.LogEvent(s.RequestID, "trips", "list_posts", "limit="+strconv.Itoa(limit))

	trips, err := s.Repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	posts := make([]PostDTO, 0, len(trips))
	for _, t := range trips {
		posts = append(posts, postFromTrip(t))
	}
	return posts, nil
}

func postFromTrip(t models.Trip) PostDTO {
	date := ""
	if !t.TravelDate.IsZero() {
		date = t.TravelDate.Format("2006-01-02")
	}
	return PostDTO{
		ID:                  t.ID,
		Title:               t.Title,
		FromCity:            t.FromCity,
		ToCity:              t.ToCity,
		Date:                date,
		Time:                t.TravelTime,
		Creator:             CreatorDTO{Name: t.CreatorName},
		Status:              t.Status,
		CurrentParticipants: t.CurrentParticipants,
		MaxParticipants:     t.MaxParticipants,
	}
}
