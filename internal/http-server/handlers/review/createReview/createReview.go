package createReview

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
)

type ReviewRequest struct {
	AuthorName string `json:"author_name" validate:"required"`
	Clinic     string `json:"clinic"`
	City       string `json:"city"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Text       string `json:"text" validate:"required"`
}

type ReviewResponse struct {
	response.Response
	ReviewID string `json:"review_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewSaver
type ReviewSaver interface {
	SaveReview(review *models.Review) error
}

// New creates a review in the unapproved state; only an administrative actor
// flips the moderation flags.
func New(log *slog.Logger, reviews ReviewSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.review.createReview.New"

		log = log.With(slog.String("op", op))

		var req ReviewRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		review := &models.Review{
			ID:         uuid.NewString(),
			AuthorName: req.AuthorName,
			Clinic:     req.Clinic,
			City:       req.City,
			Rating:     req.Rating,
			Text:       req.Text,
			CreatedAt:  time.Now(),
		}

		if err = reviews.SaveReview(review); err != nil {
			log.Error("failed to save review", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save review"))
			return
		}

		log.Info("review created", slog.String("id", review.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ReviewResponse{
			Response: response.OK(),
			ReviewID: review.ID,
		})
	}
}
