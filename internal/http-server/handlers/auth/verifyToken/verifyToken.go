package verifyToken

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"dentalSummit/internal/lib/api/response"
	"dentalSummit/internal/lib/logger/sl"
)

type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

type VerifyResponse struct {
	response.Response
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (string, error)
}

func New(log *slog.Logger, tokens TokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.verifyToken.New"

		log = log.With(slog.String("op", op))

		var req VerifyRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		email, err := tokens.Verify(req.Token)
		if err != nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, VerifyResponse{
				Response: response.Error("unauthorized"),
				Valid:    false,
			})
			return
		}

		render.JSON(w, r, VerifyResponse{
			Response: response.OK(),
			Valid:    true,
			Email:    email,
		})
	}
}
