package getAvailability

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

type AvailabilityResponse struct {
	response.Response
	Source               string `json:"source"`
	MaxCapacity          int    `json:"max_capacity"`
	CurrentRegistrations int    `json:"current_registrations"`
	AvailableSpots       int    `json:"available_spots"`
	IsFull               bool   `json:"is_full"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(id string) (*models.Event, error)
}

func New(log *slog.Logger, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAvailability.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		source := fallback.SourceDB

		event, err := events.GetEvent(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Warn("store unavailable, serving seed data", sl.Err(err))
			event = seed.Event()
			source = fallback.SourceMock
		}

		render.JSON(w, r, AvailabilityResponse{
			Response:             response.OK(),
			Source:               source,
			MaxCapacity:          event.MaxCapacity,
			CurrentRegistrations: event.CurrentRegistrations,
			AvailableSpots:       event.AvailableSpots,
			IsFull:               event.IsFull,
		})
	}
}
