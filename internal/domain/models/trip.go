package models

import "time"

// Trip is a posted trip as stored in the trips table.
type Trip struct {
	ID                  int64
	Title               string
	FromCity            string
	ToCity              string
	TravelDate          time.Time
	TravelTime          string
	CreatorName         string
	Status              string
	CurrentParticipants int
	MaxParticipants     int
	CreatedAt           time.Time
}
