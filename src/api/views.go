package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"rentroll/src/api/controllers"
	handlers "rentroll/src/api/handlers"
	"rentroll/src/config"
	"rentroll/src/metrics"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Metrics *metrics.Metrics
	Logger  *logrus.Logger
	handler http.Handler
}

func NewServer(cfg *config.Config, controller controllers.IController, m *metrics.Metrics, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(controller, logger),
		Metrics: m,
		Logger:  logger,
	}
	server.InitRoutes()

	co := cors.New(cors.Options{
		AllowedOrigins: cfg.Service.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	server.handler = co.Handler(server.Router)
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(s.instrument)

	s.Router.Get("/", handlers.Home)
	s.Router.Get("/alive", handlers.Healthcheck)
	if s.Metrics != nil {
		s.Router.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	s.Router.Route("/api/rent-roll", func(r chi.Router) {
		r.Get("/", s.Handler.GetRentRoll)
		r.Get("/view", s.Handler.GetView)
		r.Get("/snapshot", s.Handler.GetSnapshot)
		r.Get("/units", s.Handler.GetUnits)
		r.Get("/properties", s.Handler.GetProperties)
		r.Get("/export", s.Handler.ExportXLSX)
		r.Post("/refresh", s.Handler.Refresh)
	})

	s.Router.Route("/api/kpis", func(r chi.Router) {
		r.Get("/", s.Handler.GetKPIs)
		r.Get("/chart", s.Handler.GetKPIChart)
	})

	s.Router.Route("/api/transactions", func(r chi.Router) {
		r.Post("/move-in", s.Handler.MoveIn)
		r.Post("/move-out", s.Handler.MoveOut)
	})
}

// instrument logs every request and records its latency by route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		if s.Metrics != nil {
			s.Metrics.ObserveRequest(route, status, elapsed)
		}
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"route":    route,
				"status":   status,
				"duration": elapsed.String(),
			}).Debug("request served")
		}
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
