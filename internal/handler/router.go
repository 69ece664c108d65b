package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/otey247/diagram-creator/internal/metrics"
	"github.com/otey247/diagram-creator/internal/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// NewRouter wires every HTTP route. No timeout or throttle middleware:
// a generation runs until the provider answers or the client goes away.
func NewRouter(logger *zap.Logger, ask *AskHandler, page *web.Page) http.Handler {
	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestLogger(&middleware.DefaultLogFormatter{
			Logger:  zap.NewStdLog(logger.Named("http")),
			NoColor: true,
		}),
		middleware.Recoverer,
		metrics.Middleware,
	}...)

	r.MethodNotAllowed(ask.MethodNotAllowed)

	r.Get("/", page.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", page.Static()))

	r.Post("/api/ask", ask.Ask)
	r.Get("/api/templates", ask.Templates)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	return r
}
