package exportRegistrations

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/models"
)

var csvHeader = []string{
	"confirmation_number", "first_name", "last_name", "email", "phone",
	"clinic", "license_number", "accommodation_type", "food_preference",
	"certificate_type", "materials_kit", "networking_dinner", "promo_code",
	"total", "payment_status", "paid_at", "created_at",
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaidRegistrationsGetter
type PaidRegistrationsGetter interface {
	GetPaidRegistrations() ([]models.Registration, error)
}

// New streams paid registrations as CSV. encoding/csv quotes fields
// containing delimiters, quotes or newlines.
func New(log *slog.Logger, registrations PaidRegistrationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.exportRegistrations.New"

		log = log.With(slog.String("op", op))

		list, err := registrations.GetPaidRegistrations()
		if err != nil {
			log.Error("failed to get paid registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export registrations"))
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)

		writer := csv.NewWriter(w)

		if err = writer.Write(csvHeader); err != nil {
			log.Error("failed to write csv", sl.Err(err))
			return
		}

		for _, reg := range list {
			record := []string{
				reg.ConfirmationNumber,
				reg.FirstName,
				reg.LastName,
				reg.Email,
				reg.Phone,
				reg.Clinic,
				reg.LicenseNumber,
				reg.AccommodationType,
				reg.FoodPreference,
				reg.CertificateType,
				strconv.FormatBool(reg.MaterialsKit),
				strconv.FormatBool(reg.NetworkingDinner),
				reg.PromoCode,
				strconv.Itoa(reg.Pricing.Total),
				reg.PaymentStatus,
				formatTime(reg.PaidAt),
				formatTime(reg.CreatedAt),
			}

			if err = writer.Write(record); err != nil {
				log.Error("failed to write csv", sl.Err(err))
				return
			}
		}

		writer.Flush()
		if err = writer.Error(); err != nil {
			log.Error("failed to flush csv", sl.Err(err))
			return
		}

		log.Info("registrations exported", slog.Int("count", len(list)))
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}
