package listReviews

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReviewsGetter
type ReviewsGetter interface {
	GetApprovedReviews() ([]models.Review, error)
}

func New(log *slog.Logger, reviews ReviewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.review.listReviews.New"

		log = log.With(slog.String("op", op))

		list, err := reviews.GetApprovedReviews()
		list, source := fallback.List(log, list, err, seed.Reviews)

		log.Info("reviews retrieved", slog.Int("count", len(list)), slog.String("source", source))

		render.JSON(w, r, ReviewsResponse{
			Response: response.OK(),
			Source:   source,
			Reviews:  list,
		})
	}
}
