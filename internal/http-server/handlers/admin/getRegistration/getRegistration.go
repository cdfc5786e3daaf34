package getRegistration

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
	"dentalSummit/internal/storage"
)

type RegistrationResponse struct {
	response.Response
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationGetter
type RegistrationGetter interface {
	GetRegistrationByID(id string) (*models.Registration, error)
}

func New(log *slog.Logger, registrations RegistrationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getRegistration.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("registration id is required"))
			return
		}

		reg, err := registrations.GetRegistrationByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("registration not found"))
				return
			}

			log.Error("failed to get registration", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registration"))
			return
		}

		render.JSON(w, r, RegistrationResponse{
			Response:     response.OK(),
			Registration: reg,
		})
	}
}
