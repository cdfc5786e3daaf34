package adminauth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
)

// Policy is decided once at startup instead of branching on the environment
// inside the handler chain. When Enforce is off the admin surface is open,
// which is the intended demo-grade behavior outside production.
type Policy struct {
	Enforce bool
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (string, error)
}

func New(log *slog.Logger, policy Policy, tokens TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(slog.String("component", "middleware/adminauth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			if !policy.Enforce {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			if _, err := tokens.Verify(token); err != nil {
				log.Warn("rejected admin token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
