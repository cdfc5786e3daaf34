package getPaymentConfig

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
)

type ConfigResponse struct {
	response.Response
	PublishableKey string `json:"publishable_key"`
	DemoMode       bool   `json:"demo_mode"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProviderConfig
type ProviderConfig interface {
	Configured() bool
	PublishableKey() string
}

func New(log *slog.Logger, provider ProviderConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ConfigResponse{
			Response:       response.OK(),
			PublishableKey: provider.PublishableKey(),
			DemoMode:       !provider.Configured(),
		})
	}
}
