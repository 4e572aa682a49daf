package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yettapastries/storefront/pkg/jwt"
)

// CORSConfig holds the allowed frontend origin.
type CORSConfig struct {
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
}

// Deps bundles everything the router needs.
type Deps struct {
	Auth       *AuthHandler
	Storefront *StorefrontHandler
	Payment    *PaymentHandler
	Sessions   *jwt.Service
	CORS       CORSConfig

	// Healthcheck is probed by GET /health; nil means the endpoint only
	// reports that the process is up.
	Healthcheck func(ctx context.Context) error
}

// NewRouter assembles the API router. Cart, orders and favorites sit behind
// the session middleware; auth and payment routes are public.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(deps.CORS))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if deps.Healthcheck != nil {
			if err := deps.Healthcheck(req.Context()); err != nil {
				respondMessage(w, http.StatusServiceUnavailable, "unhealthy")
				return
			}
		}
		respondMessage(w, http.StatusOK, "ok")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", deps.Auth.Routes)
		r.Route("/payment", deps.Payment.Routes)

		r.Group(func(r chi.Router) {
			r.Use(jwt.Middleware(deps.Sessions))
			r.Route("/cart", deps.Storefront.CartRoutes)
			r.Route("/orders", deps.Storefront.OrderRoutes)
			r.Route("/favorites", deps.Storefront.FavoriteRoutes)
		})
	})

	return r
}

// corsMiddleware admits the configured frontend origin with the methods and
// headers the API uses.
func corsMiddleware(cfg CORSConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (cfg.AllowedOrigin == "*" || origin == cfg.AllowedOrigin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "3600")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
