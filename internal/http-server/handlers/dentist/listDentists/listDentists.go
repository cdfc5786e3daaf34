package listDentists

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/fallback"
	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/models"
	"dentalSummit/internal/seed"
)

type DentistsResponse struct {
	response.Response
	Source   string           `json:"source"`
	Dentists []models.Dentist `json:"dentists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DentistsGetter
type DentistsGetter interface {
	GetAllDentists() ([]models.Dentist, error)
}

func New(log *slog.Logger, dentists DentistsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dentist.listDentists.New"

		log = log.With(slog.String("op", op))

		list, err := dentists.GetAllDentists()
		list, source := fallback.List(log, list, err, seed.Dentists)

		log.Info("dentists retrieved", slog.Int("count", len(list)), slog.String("source", source))

		render.JSON(w, r, DentistsResponse{
			Response: response.OK(),
			Source:   source,
			Dentists: list,
		})
	}
}
