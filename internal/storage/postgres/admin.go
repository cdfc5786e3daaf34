package postgres

import (
	"fmt"

	"dentalSummit/internal/models"
)

func (s *Storage) GetStats(recentLimit int) (*models.AdminStats, error) {
	var stats models.AdminStats

	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE payment_status = 'completed'),
			COUNT(*) FILTER (WHERE payment_status = 'pending'),
			COALESCE(SUM((pricing->>'total')::int) FILTER (WHERE payment_status = 'completed'), 0)
		FROM registrations`

	err := s.DB.QueryRow(query).Scan(
		&stats.TotalRegistrations,
		&stats.PaidRegistrations,
		&stats.PendingRegistrations,
		&stats.Revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	if stats.TotalRegistrations > 0 {
		stats.ConversionRate = float64(stats.PaidRegistrations) / float64(stats.TotalRegistrations)
	}

	recent, err := s.listRegistrations(``, recentLimit, 0)
	if err != nil {
		return nil, err
	}
	stats.Recent = recent

	return &stats, nil
}

func (s *Storage) listRegistrations(where string, limit, offset int) ([]models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := s.DB.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

func (s *Storage) ListRegistrations(paymentStatus string, limit, offset int) ([]models.Registration, error) {
	if limit <= 0 {
		limit = 50
	}
	if paymentStatus == "" {
		return s.listRegistrations(``, limit, offset)
	}

	query := `SELECT ` + registrationColumns + ` FROM registrations
		WHERE payment_status = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := s.DB.Query(query, limit, offset, paymentStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

func (s *Storage) GetPaidRegistrations() ([]models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations
		WHERE payment_status = 'completed' ORDER BY created_at ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get paid registrations: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}
