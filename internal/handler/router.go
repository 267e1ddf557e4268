package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	logger2 "github.com/vladislavprovich/looksrare-integration/pkg/logger"

	"github.com/go-chi/cors"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler Handler, logger *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &logger2.Logger{Logger: logger}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	mux.Get("/health", handler.Health)

	routURL := fmt.Sprintf("/api/%s/looksrare", cfg.APIVersion)
	mux.Route(routURL, func(r chi.Router) {
		r.Get("/accounts/{address}", handler.GetAccount)
		r.Get("/accounts/{address}/nonce", handler.GetNonce)
		r.Get("/orders", handler.GetOrders)
		r.Get("/collections/listing-rewards", handler.GetTopListingRewardsCollections)
		r.Get("/collections/{address}", handler.GetCollectionInformation)
		r.Get("/collections/{address}/stats", handler.GetCollectionStats)
		r.Get("/collections/{address}/overview", handler.GetCollectionOverview)
	})

	return mux
}
