package getEvent

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

type EventResponse struct {
	response.Response
	Source string        `json:"source"`
	Event  *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(id string) (*models.Event, error)
}

func New(log *slog.Logger, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		event, err := events.GetEvent(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Warn("store unavailable, serving seed data", sl.Err(err))

			render.JSON(w, r, EventResponse{
				Response: response.OK(),
				Source:   fallback.SourceMock,
				Event:    seed.Event(),
			})
			return
		}

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Source:   fallback.SourceDB,
			Event:    event,
		})
	}
}
