package getUpcomingEvent

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/fallback"
	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/models"
	"dentalSummit/internal/seed"
)

type EventResponse struct {
	response.Response
	Source string        `json:"source"`
	Event  *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UpcomingEventGetter
type UpcomingEventGetter interface {
	GetUpcomingEvent() (*models.Event, error)
}

func New(log *slog.Logger, events UpcomingEventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getUpcomingEvent.New"

		log = log.With(slog.String("op", op))

		event, err := events.GetUpcomingEvent()
		event, source := fallback.One(log, event, err, seed.Event)

		log.Info("upcoming event retrieved", slog.String("source", source))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Source:   source,
			Event:    event,
		})
	}
}
