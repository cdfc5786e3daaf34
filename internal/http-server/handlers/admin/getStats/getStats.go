package getStats

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
)

const recentLimit = 5

type StatsResponse struct {
	response.Response
	Stats *models.AdminStats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	GetStats(recentLimit int) (*models.AdminStats, error)
}

func New(log *slog.Logger, stats StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getStats.New"

		log = log.With(slog.String("op", op))

		result, err := stats.GetStats(recentLimit)
		if err != nil {
			log.Error("failed to get stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stats"))
			return
		}

		render.JSON(w, r, StatsResponse{
			Response: response.OK(),
			Stats:    result,
		})
	}
}
