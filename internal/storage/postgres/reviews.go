package postgres

import (
	"fmt"

	"dentalSummit/internal/models"
)

const reviewColumns = `id, author_name, clinic, city, rating, text, is_approved,
	is_featured, created_at`

func (s *Storage) queryReviews(where string) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ` + where +
		` ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		err = rows.Scan(
			&review.ID,
			&review.AuthorName,
			&review.Clinic,
			&review.City,
			&review.Rating,
			&review.Text,
			&review.IsApproved,
			&review.IsFeatured,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

func (s *Storage) GetApprovedReviews() ([]models.Review, error) {
	return s.queryReviews(`is_approved`)
}

func (s *Storage) GetFeaturedReviews() ([]models.Review, error) {
	return s.queryReviews(`is_approved AND is_featured`)
}

// SaveReview stores a new review; moderation flags stay false until an admin
// flips them out of band.
func (s *Storage) SaveReview(review *models.Review) error {
	query := `
		INSERT INTO reviews (id, author_name, clinic, city, rating, text,
			is_approved, is_featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE, $7)`

	_, err := s.DB.Exec(query,
		review.ID,
		review.AuthorName,
		review.Clinic,
		review.City,
		review.Rating,
		review.Text,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}
