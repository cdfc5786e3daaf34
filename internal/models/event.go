package models

import "time"

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusLive      = "live"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Date                 time.Time `json:"date"`
	StartTime            string    `json:"start_time"`
	EndTime              string    `json:"end_time"`
	Timezone             string    `json:"timezone"`
	Platform             string    `json:"platform"`
	MaxCapacity          int       `json:"max_capacity"`
	CurrentRegistrations int       `json:"current_registrations"`
	BasePrice            int       `json:"base_price"`
	EarlyBirdPrice       int       `json:"early_bird_price"`
	EarlyBirdDeadline    time.Time `json:"early_bird_deadline"`
	Status               string    `json:"status"`

	// Derived from the stored fields on every read, never persisted.
	IsFull         bool `json:"is_full"`
	AvailableSpots int  `json:"available_spots"`
	IsEarlyBird    bool `json:"is_early_bird"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *Event) ComputeDerived(now time.Time) {
	e.AvailableSpots = e.MaxCapacity - e.CurrentRegistrations
	if e.AvailableSpots < 0 {
		e.AvailableSpots = 0
	}
	e.IsFull = e.CurrentRegistrations >= e.MaxCapacity
	e.IsEarlyBird = !e.EarlyBirdDeadline.IsZero() && now.Before(e.EarlyBirdDeadline)
}
