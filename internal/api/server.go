// Package api serves the pivotgrid operations over HTTP.
//
// Routes:
//
//	GET  /healthz        liveness probe
//	GET  /v1/fonts       font families available for measurement
//	POST /v1/reconcile   document.ReconcileRequest -> pivot.Setting
//	POST /v1/check       document.CheckRequest     -> document.CheckResponse
//	POST /v1/layout      document.LayoutRequest    -> document.LayoutResponse
//
// Failures return an [ErrorResponse]. Render-check failures map to 422,
// malformed requests to 400, and everything else to 500. Messages follow
// the request's Accept-Language.
package api

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pivotgrid/pkg/document"
	"github.com/matzehuels/pivotgrid/pkg/errors"
	"github.com/matzehuels/pivotgrid/pkg/fonts"
	"github.com/matzehuels/pivotgrid/pkg/layout"
	"github.com/matzehuels/pivotgrid/pkg/pivot"
)

// maxBodyBytes limits request documents.
const maxBodyBytes = 8 << 20

// Runner executes the pivotgrid operations. *pipeline.Runner implements it.
type Runner interface {
	Reconcile(ctx context.Context, req document.ReconcileRequest) (pivot.Setting, error)
	Check(ctx context.Context, req document.CheckRequest) error
	LayoutWithCacheInfo(ctx context.Context, req document.LayoutRequest) (layout.Header, bool, error)
}

// Server is the HTTP handler for the API.
type Server struct {
	runner Runner
	logger *log.Logger
	router chi.Router
}

// New creates a Server backed by runner.
func New(runner Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID, s.instrument, s.recoverer)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, errors.ErrCodeNotFound, "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeInvalidInput, "method not allowed")
	})
	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/fonts", s.handleFonts)
		r.Post("/reconcile", s.handleReconcile)
		r.Post("/check", s.handleCheck)
		r.Post("/layout", s.handleLayout)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFonts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":  fonts.DefaultFamily,
		"families": fonts.Names(),
	})
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	var req document.ReconcileRequest
	if !s.decode(w, r, &req) {
		return
	}
	setting, err := s.runner.Reconcile(r.Context(), req)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req document.CheckRequest
	if !s.decode(w, r, &req) {
		return
	}
	err := s.runner.Check(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, document.CheckResponse{Renderable: true})
	case errors.IsRenderCheck(err):
		tag := errors.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
		writeJSON(w, statusFor(err), document.CheckResponse{
			Code:    errors.GetCode(err),
			Message: errors.Localize(err, tag),
		})
	default:
		writeErr(w, r, err)
	}
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req document.LayoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	header, cached, err := s.runner.LayoutWithCacheInfo(r.Context(), req)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, document.LayoutResponse{Header: header, Cached: cached})
}

// decode reads the request body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	if err := document.Read(body, v); err != nil {
		s.logger.Debug("rejected request body", "err", err, "request_id", GetRequestID(r.Context()))
		writeErr(w, r, err)
		return false
	}
	return true
}
