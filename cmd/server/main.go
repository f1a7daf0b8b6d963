package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Poldin/budgez-sub003/internal/config"
	"github.com/Poldin/budgez-sub003/internal/db"
	"github.com/Poldin/budgez-sub003/internal/format"
	"github.com/Poldin/budgez-sub003/internal/migrations"
	"github.com/Poldin/budgez-sub003/internal/obs"
	"github.com/Poldin/budgez-sub003/internal/seed"
	"github.com/Poldin/budgez-sub003/internal/store"
)

type server struct {
	store     *store.Store
	validate  *validator.Validate
	logger    zerolog.Logger
	formatter format.Formatter
	currency  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := obs.NewLogger("console", "info")
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			logger.Fatal().Err(err).Msg("failed to run database migrations")
		}
	}

	st := store.New(database)
	if cfg.IsDev() {
		stats, err := seed.Run(context.Background(), st, cfg.DefaultCurrency)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		if stats.Inserts > 0 {
			logger.Info().Int("inserts", stats.Inserts).Msg("seeded demo budget")
		}
	}

	srv := &server{
		store:     st,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
		formatter: format.ForLocale(cfg.DefaultLocale),
		currency:  cfg.DefaultCurrency,
	}

	r := newRouter(srv, cfg.CORSAllowedOrigins)

	addr := cfg.HTTPAddr()
	logger.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(srv *server, allowedOrigins []string) chi.Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(obs.RequestLogger{Logger: srv.logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", srv.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/compute", srv.handleCompute)
		r.Post("/budgets", srv.handleBudgetCreate)
		r.Get("/budgets", srv.handleBudgetsList)
		r.Get("/budgets/{id}", srv.handleBudgetDetail)
	})

	return r
}
