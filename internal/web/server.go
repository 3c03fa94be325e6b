package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Adithya700/Wadrobe/internal/domain"
	"github.com/Adithya700/Wadrobe/internal/imagestore"
	"github.com/Adithya700/Wadrobe/internal/service"
)

type Server struct {
	service *service.WardrobeService
	images  imagestore.Store
	mux     *http.ServeMux
	logger  *slog.Logger
}

func NewServer(svc *service.WardrobeService, images imagestore.Store, logger *slog.Logger) *Server {
	s := &Server{
		service: svc,
		images:  images,
		mux:     http.NewServeMux(),
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /upload", s.handleUpload)
	s.mux.HandleFunc("GET /generate-ai/{userID}", s.handleGenerate)
	// Route kept for clients built against the older path.
	s.mux.HandleFunc("GET /generate/{userID}", s.handleGenerate)
	s.mux.HandleFunc("GET /uploads/{file}", s.handleGetImage)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps a failure to a status code and a generic client
// message. Diagnostic detail stays in the log; raw errors never reach the
// client.
func (s *Server) writeDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		s.writeError(w, http.StatusBadRequest, "Category must be one of: top, bottom, shoes")
	case errors.Is(err, domain.ErrInsufficientItems):
		s.writeError(w, http.StatusBadRequest, "Please upload at least 3 items first!")
	case errors.Is(err, domain.ErrMissingAssets):
		s.writeError(w, http.StatusBadRequest, "Some item images are missing; please re-upload them")
	case errors.Is(err, domain.ErrMalformedAIResponse):
		s.writeError(w, http.StatusInternalServerError, "AI produced invalid JSON")
	default:
		s.writeError(w, http.StatusInternalServerError, fallback)
	}
}
