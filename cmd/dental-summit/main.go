package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dentalSummit/internal/auth"
	"dentalSummit/internal/config"
	adminExport "dentalSummit/internal/http-server/handlers/admin/exportRegistrations"
	adminGetRegistration "dentalSummit/internal/http-server/handlers/admin/getRegistration"
	"dentalSummit/internal/http-server/handlers/admin/getStats"
	adminListRegistrations "dentalSummit/internal/http-server/handlers/admin/listRegistrations"
	"dentalSummit/internal/http-server/handlers/admin/updateRegistration"
	"dentalSummit/internal/http-server/handlers/auth/login"
	"dentalSummit/internal/http-server/handlers/auth/verifyToken"
	"dentalSummit/internal/http-server/handlers/dentist/getDentist"
	"dentalSummit/internal/http-server/handlers/dentist/listDentists"
	"dentalSummit/internal/http-server/handlers/event/getAvailability"
	"dentalSummit/internal/http-server/handlers/event/getEvent"
	"dentalSummit/internal/http-server/handlers/event/getUpcomingEvent"
	"dentalSummit/internal/http-server/handlers/event/listEvents"
	"dentalSummit/internal/http-server/handlers/payment/confirmPayment"
	"dentalSummit/internal/http-server/handlers/payment/createIntent"
	"dentalSummit/internal/http-server/handlers/payment/getPaymentConfig"
	"dentalSummit/internal/http-server/handlers/payment/handleWebhook"
	"dentalSummit/internal/http-server/handlers/registration/calculatePricing"
	"dentalSummit/internal/http-server/handlers/registration/createRegistration"
	"dentalSummit/internal/http-server/handlers/registration/getRegistration"
	"dentalSummit/internal/http-server/handlers/registration/validatePromo"
	"dentalSummit/internal/http-server/handlers/review/createReview"
	"dentalSummit/internal/http-server/handlers/review/getFeaturedReviews"
	"dentalSummit/internal/http-server/handlers/review/listReviews"
	"dentalSummit/internal/http-server/middleware/adminauth"
	"dentalSummit/internal/http-server/middleware/mwlogger"
	"dentalSummit/internal/lib/logger/handlers/slogpretty"
	"dentalSummit/internal/lib/logger/sl"
	"dentalSummit/internal/payments"
	"dentalSummit/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting dental summit backend", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	provider := payments.New(log, cfg.Stripe)
	if !provider.Configured() {
		log.Warn("payment provider not configured, running in demo mode")
	}

	tokens := auth.New(cfg.Admin)

	// Decided once here, not inside the handler chain. Outside prod the admin
	// surface is intentionally open demo-grade.
	authPolicy := adminauth.Policy{Enforce: cfg.Env == envProd}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/dentists", listDentists.New(log, storage))
	router.Get("/dentists/{id}", getDentist.New(log, storage))

	router.Get("/events", listEvents.New(log, storage))
	router.Get("/events/upcoming", getUpcomingEvent.New(log, storage))
	router.Get("/events/{id}", getEvent.New(log, storage))
	router.Get("/events/{id}/availability", getAvailability.New(log, storage))

	router.Post("/registrations/calculate-pricing", calculatePricing.New(log, storage))
	router.Post("/registrations/validate-promo", validatePromo.New(log, storage))
	router.Post("/registrations", createRegistration.New(log, storage))
	router.Get("/registrations/{confirmationNumber}", getRegistration.New(log, storage))

	router.Post("/payments/create-intent", createIntent.New(log, storage, provider))
	router.Post("/payments/confirm", confirmPayment.New(log, storage, provider))
	router.Get("/payments/config", getPaymentConfig.New(log, provider))
	router.Post("/payments/webhook", handleWebhook.New(log, provider, storage))

	router.Get("/reviews", listReviews.New(log, storage))
	router.Get("/reviews/featured", getFeaturedReviews.New(log, storage))
	router.Post("/reviews", createReview.New(log, storage))

	router.Post("/auth/login", login.New(log, tokens))
	router.Post("/auth/verify", verifyToken.New(log, tokens))

	router.Route("/admin", func(r chi.Router) {
		r.Use(adminauth.New(log, authPolicy, tokens))

		r.Get("/stats", getStats.New(log, storage))
		r.Get("/registrations", adminListRegistrations.New(log, storage))
		r.Get("/registrations/{id}", adminGetRegistration.New(log, storage))
		r.Patch("/registrations/{id}", updateRegistration.New(log, storage))
		r.Get("/export", adminExport.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Close(); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
