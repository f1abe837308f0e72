package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	admin_http "blog-post-service/internal/delivery/http/admin"
	post_http "blog-post-service/internal/delivery/http/post"
	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
	"blog-post-service/internal/middleware"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	postAPI   *post_http.PostHTTPService
	adminAPI  *admin_http.AdminHTTPService
	jwtSecret []byte

	cookieName string
	address    string
	port       int
	store      Pinger
	log        *logger.Logger
	metrics    metrics.Provider

	server *http.Server
}

func NewServer(
	postAPI *post_http.PostHTTPService,
	adminAPI *admin_http.AdminHTTPService,
	jwtSecret []byte,
	cookieName string,
	address string,
	port int,
	store Pinger,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) *Server {
	return &Server{
		postAPI:    postAPI,
		adminAPI:   adminAPI,
		jwtSecret:  jwtSecret,
		cookieName: cookieName,
		address:    address,
		port:       port,
		store:      store,
		log:        log,
		metrics:    metricsProvider,
	}
}

func (s *Server) Run() error {
	r := chi.NewRouter()

	r.Use(chi_middleware.RequestID)
	r.Use(chi_middleware.RealIP)
	r.Use(middleware.RequestLogger(s.log, s.metrics))
	r.Use(chi_middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.AdminSession(s.jwtSecret, s.cookieName))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/posts", s.postAPI.Routes(s.requireAdmin))
		r.Mount("/admin", s.adminAPI.Routes())
	})

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.String("address", s.address), slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// requireAdmin rejects requests whose session guard decision was negative.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IsAdmin(r.Context()) {
			response.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
