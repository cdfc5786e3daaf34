package listEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/fallback"
	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/models"
	"dentalSummit/internal/seed"
)

type EventsResponse struct {
	response.Response
	Source string         `json:"source"`
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents() ([]models.Event, error)
}

func New(log *slog.Logger, events EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		list, err := events.GetAllEvents()
		list, source := fallback.List(log, list, err, seed.Events)

		log.Info("events retrieved", slog.Int("count", len(list)), slog.String("source", source))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Source:   source,
			Events:   list,
		})
	}
}
