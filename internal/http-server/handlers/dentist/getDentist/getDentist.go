package getDentist

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"dentalSummit/internal/fallback"
	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/seed"
	"dentalSummit/internal/storage"
)

type DentistResponse struct {
	response.Response
	Source  string          `json:"source"`
	Dentist *models.Dentist `json:"dentist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DentistGetter
type DentistGetter interface {
	GetDentist(id string) (*models.Dentist, error)
}

func New(log *slog.Logger, dentists DentistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dentist.getDentist.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("dentist id is required"))
			return
		}

		dentist, err := dentists.GetDentist(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("dentist not found"))
				return
			}

			log.Warn("store unavailable, trying seed data", sl.Err(err))

			if seeded := seedDentist(id); seeded != nil {
				render.JSON(w, r, DentistResponse{
					Response: response.OK(),
					Source:   fallback.SourceMock,
					Dentist:  seeded,
				})
				return
			}

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("dentist not found"))
			return
		}

		render.JSON(w, r, DentistResponse{
			Response: response.OK(),
			Source:   fallback.SourceDB,
			Dentist:  dentist,
		})
	}
}

func seedDentist(id string) *models.Dentist {
	for _, dentist := range seed.Dentists() {
		if dentist.ID == id {
			return &dentist
		}
	}

	return nil
}
