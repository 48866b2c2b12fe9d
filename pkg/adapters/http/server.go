package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/fsacheck/internal/compiler"
	"github.com/aretw0/fsacheck/pkg/domain"
	"github.com/aretw0/fsacheck/pkg/report"
)

// RequestIDHeader carries the identifier assigned to every validation.
const RequestIDHeader = "X-Request-ID"

// Validator defines the interface for the validation core.
type Validator interface {
	Validate(ctx context.Context, decl domain.Declarations) *report.Report
}

// ValidateResponse is the JSON body returned by POST /validate.
type ValidateResponse struct {
	ID string `json:"id"`
	report.Document
}

// Server serves validation requests over HTTP.
// Every request is an independent run; nothing is kept between requests.
type Server struct {
	Validator    Validator
	Logger       *slog.Logger
	MaxBodyBytes int64
	Gatherer     prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMaxBodyBytes caps the size of a declaration document.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.MaxBodyBytes = n
	}
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// NewHandler creates the HTTP handler for v.
func NewHandler(v Validator, opts ...Option) http.Handler {
	s := &Server{
		Validator:    v,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxBodyBytes: 1 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	r.Post("/validate", s.Validate)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Validate handles POST /validate.
//
// The body is a declaration document: bracketed text by default, YAML for
// application/yaml or text/yaml, or a JSON object keyed by group label for
// application/json. A document that fails validation is still a successful
// request: the report carries the error. With ?format=text the response is
// the literal report text instead of JSON.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)
	logger := s.Logger.With("request_id", id)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			logger.Warn("Validate: body too large", "limit", s.MaxBodyBytes)
			return
		}
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		logger.Warn("Validate: unreadable body", "error", err)
		return
	}

	var rep *report.Report
	decl, err := decodeDeclarations(r.Header.Get("Content-Type"), body)
	if err != nil {
		rep = report.Failed(err)
	} else {
		rep = s.Validator.Validate(r.Context(), decl)
	}
	logger.Info("Validate: done", "outcome", rep.Outcome(), "warnings", len(rep.Warnings))

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(rep.String()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ValidateResponse{ID: id, Document: rep.Document()}); err != nil {
		logger.Error("Validate response encode failed", "error", err)
	}
}

func decodeDeclarations(contentType string, body []byte) (domain.Declarations, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/json":
		var raw map[string]any
		if err := json.Unmarshal(body, &raw); err != nil {
			return domain.Declarations{}, domain.MalformedInput()
		}
		var decl domain.Declarations
		if err := compiler.DecodeGroups(raw, &decl); err != nil {
			return domain.Declarations{}, err
		}
		return decl, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return compiler.ParseYAML(body)
	default:
		return compiler.Parse("request.txt", body)
	}
}
