package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

const eventColumns = `id, name, date, start_time, end_time, timezone, platform,
	max_capacity, current_registrations, base_price, early_bird_price,
	early_bird_deadline, status, created_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	var event models.Event
	var deadline sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.Timezone,
		&event.Platform,
		&event.MaxCapacity,
		&event.CurrentRegistrations,
		&event.BasePrice,
		&event.EarlyBirdPrice,
		&deadline,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deadline.Valid {
		event.EarlyBirdDeadline = deadline.Time
	}
	event.ComputeDerived(time.Now())

	return &event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEvent(id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetUpcomingEvent() (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE status = 'upcoming' ORDER BY date ASC LIMIT 1`

	event, err := scanEvent(s.DB.QueryRow(query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get upcoming event: %w", err)
	}

	return event, nil
}

// IncrementRegistrations bumps the seat counter with a guarded single-statement
// update so two registrations racing for the last seat cannot both win.
func (s *Storage) IncrementRegistrations(eventID string) error {
	query := `
		UPDATE events
		SET current_registrations = current_registrations + 1
		WHERE id = $1 AND current_registrations < max_capacity`

	result, err := s.DB.Exec(query, eventID)
	if err != nil {
		return fmt.Errorf("failed to increment registrations: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to increment registrations: %w", err)
	}

	if affected == 0 {
		var exists bool
		if err = s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to increment registrations: %w", err)
		}
		if !exists {
			return storage.ErrNotFound
		}
		return storage.ErrEventFull
	}

	return nil
}
