package listRegistrations

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
)

type RegistrationsResponse struct {
	response.Response
	Count         int                   `json:"count"`
	Registrations []models.Registration `json:"registrations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsLister
type RegistrationsLister interface {
	ListRegistrations(paymentStatus string, limit, offset int) ([]models.Registration, error)
}

func New(log *slog.Logger, registrations RegistrationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listRegistrations.New"

		log = log.With(slog.String("op", op))

		paymentStatus := r.URL.Query().Get("payment_status")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		list, err := registrations.ListRegistrations(paymentStatus, limit, offset)
		if err != nil {
			log.Error("failed to list registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list registrations"))
			return
		}

		render.JSON(w, r, RegistrationsResponse{
			Response:      response.OK(),
			Count:         len(list),
			Registrations: list,
		})
	}
}
