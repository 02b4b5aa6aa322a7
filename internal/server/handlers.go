package server

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sweet-booking/internal/handlers"
	"sweet-booking/internal/middlewares"
)

func setupRouter(ctx *middlewares.AppContext, limiter *middlewares.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Get("/healthz", ctx.HandlerFunc(handlers.HandlerHealth))
	r.Get("/readyz", ctx.HandlerFunc(handlers.HandlerReady))

	r.Route("/line", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/authorize", ctx.HandlerFunc(handlers.GETLineAuthorizeHandler))
		r.Get("/callback", ctx.HandlerFunc(handlers.GETLineCallbackHandler))
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/", ctx.HandlerFunc(handlers.GETWebhookHandler))
		r.Post("/", ctx.HandlerFunc(handlers.POSTWebhookHandler))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)
			r.Get("/login/me", ctx.HandlerFunc(handlers.GETLoginMeHandler))
			r.Get("/sweets", ctx.HandlerFunc(handlers.GETSweetsHandler))
			r.Post("/booking", ctx.HandlerFunc(handlers.POSTBookingHandler))
			r.Get("/booking/{userId}", ctx.HandlerFunc(handlers.GETBookingsHandler))
			r.Get("/reward/{userId}", ctx.HandlerFunc(handlers.GETRewardHandler))
			r.Put("/reward/{userId}", ctx.HandlerFunc(handlers.PUTRewardHandler))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
