package server

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/QueryGate/pdp-go/internal/authz"
	"github.com/QueryGate/pdp-go/internal/handlers"
	"github.com/QueryGate/pdp-go/internal/identity"
	mw2 "github.com/QueryGate/pdp-go/internal/mw"
	"github.com/QueryGate/pdp-go/internal/version"
)

type Options struct {
	EnableCORS bool
}

type Deps struct {
	Authorizer authz.Authorizer
	Identity   *identity.Resolver
}

// BuildRouter wires the decision endpoint behind the baseline middleware
// stack. The engine does all the thinking; everything here is transport.
func BuildRouter(d Deps, opts Options, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	if os.Getenv("PDP_ENV") == "local" || os.Getenv("PDP_ENV") == "dev" {
		r.Use(mw2.NoStore)
	}

	// baseline
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	for _, m := range mw {
		r.Use(m)
	}

	// tracing + logger
	r.Use(mw2.Trace())
	r.Use(mw2.Logger(mw2.LogOpts{
		SkipPaths:     []string{"/healthz", "/version"},
		RedactHeaders: []string{"Authorization"},
	}))

	decision := handlers.NewDecisionHandler(d.Authorizer, d.Identity)

	r.Get("/healthz", healthCheckHandler)
	r.Get("/version", handlers.VersionHandler)
	r.Post("/v1/decision", decision.ServeHTTP)

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": version.Version,
	})
}
