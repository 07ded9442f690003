package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/syncads/paydetect/gateway"
	_ "github.com/syncads/paydetect/gateway/asaas"
	_ "github.com/syncads/paydetect/gateway/mercadopago"
	_ "github.com/syncads/paydetect/gateway/pagseguro"
	_ "github.com/syncads/paydetect/gateway/paguex"
	_ "github.com/syncads/paydetect/gateway/stripe"
	"github.com/syncads/paydetect/handler"
	"github.com/syncads/paydetect/infra/config"
	"github.com/syncads/paydetect/infra/logger"
	"github.com/syncads/paydetect/infra/middle"
	"github.com/syncads/paydetect/infra/opensearch"
	"github.com/syncads/paydetect/infra/response"
	"github.com/syncads/paydetect/infra/store"
	v1 "github.com/syncads/paydetect/router/v1"
)

const version = "1.0.0"

func main() {
	// .env is optional; deployments inject real environment variables.
	_ = godotenv.Load()

	cfg := config.App()
	log := logger.New(cfg.LogLevel)

	registry := gateway.Default()

	opts := []gateway.Option{
		gateway.WithProbeTimeout(cfg.ProbeTimeout),
		gateway.WithLogger(log),
	}

	if cfg.EnableAuditLog {
		osClient, err := opensearch.NewClient(cfg, registry.Slugs(), log)
		if err != nil {
			log.Warn().Err(err).Msg("audit logging disabled, opensearch unreachable")
		} else {
			opts = append(opts, gateway.WithAuditSink(opensearch.NewLogger(osClient, log)))
			log.Info().Msg("audit logging enabled")
		}
	}

	detector := gateway.NewDetector(registry, opts...)

	configStore, err := store.New(cfg.DBPath, cfg.EncryptKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open configuration store")
	}
	defer configStore.Close()

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middle.PanicRecoveryMiddleware(log))
	r.Use(middle.SecurityHeadersMiddleware())
	r.Use(middle.RateLimitMiddleware(middle.NewRateLimiter(60, time.Minute)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	healthHandler := handler.NewHealthHandler(version)
	r.Get("/health", healthHandler.Check)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middle.AuthMiddleware(cfg.APIKey))
		r.Use(middle.RequestValidationMiddleware())
		v1.Routes(r, v1.Deps{
			Detector: detector,
			Store:    configStore,
			Validate: validator.New(),
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Route not found", nil)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Int("gateways", registry.Len()).
			Msg("paydetect listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
