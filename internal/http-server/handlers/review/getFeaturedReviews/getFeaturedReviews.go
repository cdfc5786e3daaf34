package getFeaturedReviews

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/fallback"
	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/models"
	"dentalSummit/internal/seed"
)

type ReviewsResponse struct {
	response.Response
	Source  string          `json:"source"`
	Reviews []models.Review `json:"reviews"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeaturedReviewsGetter
type FeaturedReviewsGetter interface {
	GetFeaturedReviews() ([]models.Review, error)
}

func New(log *slog.Logger, reviews FeaturedReviewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.review.getFeaturedReviews.New"

		log = log.With(slog.String("op", op))

		list, err := reviews.GetFeaturedReviews()
		list, source := fallback.List(log, list, err, seedFeatured)

		log.Info("featured reviews retrieved", slog.Int("count", len(list)), slog.String("source", source))

		render.JSON(w, r, ReviewsResponse{
			Response: response.OK(),
			Source:   source,
			Reviews:  list,
		})
	}
}

func seedFeatured() []models.Review {
	var featured []models.Review
	for _, review := range seed.Reviews() {
		if review.IsFeatured {
			featured = append(featured, review)
		}
	}

	return featured
}
