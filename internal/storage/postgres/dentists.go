package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

const dentistColumns = `id, name, title, specialty, bio, clinic, city,
	years_experience, photo_url`

func scanDentist(row interface{ Scan(...any) error }) (*models.Dentist, error) {
	var dentist models.Dentist

	err := row.Scan(
		&dentist.ID,
		&dentist.Name,
		&dentist.Title,
		&dentist.Specialty,
		&dentist.Bio,
		&dentist.Clinic,
		&dentist.City,
		&dentist.YearsExperience,
		&dentist.PhotoURL,
	)
	if err != nil {
		return nil, err
	}

	return &dentist, nil
}

func (s *Storage) GetAllDentists() ([]models.Dentist, error) {
	query := `SELECT ` + dentistColumns + ` FROM dentists ORDER BY name ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get dentists: %w", err)
	}
	defer rows.Close()

	var dentists []models.Dentist
	for rows.Next() {
		dentist, err := scanDentist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dentist: %w", err)
		}
		dentists = append(dentists, *dentist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dentists: %w", err)
	}

	return dentists, nil
}

func (s *Storage) GetDentist(id string) (*models.Dentist, error) {
	query := `SELECT ` + dentistColumns + ` FROM dentists WHERE id = $1`

	dentist, err := scanDentist(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dentist: %w", err)
	}

	return dentist, nil
}
