// Package server provides the HTTP surface around the log parser:
// request decoding, response assembly, metrics, and lifecycle. The
// parser itself never fails; input validation lives here.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/buildlens/buildlens/pkg/ai"
	"github.com/buildlens/buildlens/pkg/config"
	"github.com/buildlens/buildlens/pkg/output"
	"github.com/buildlens/buildlens/pkg/parser"
)

// maxRequestBytes caps the accepted request body size.
const maxRequestBytes = 32 << 20 // 32MB

// Insighter produces AI diagnostics for an analysis. *ai.Client
// implements it; tests substitute their own.
type Insighter interface {
	Analyze(ctx context.Context, analysis *parser.LogAnalysis, format string) (*ai.Insights, error)
}

// Handler handles buildlens API requests.
type Handler struct {
	insighter Insighter
	metrics   *metrics
}

// NewHandler creates a handler. insighter may be nil when AI insights
// are disabled.
func NewHandler(insighter Insighter) *Handler {
	return &Handler{
		insighter: insighter,
		metrics:   newMetrics(),
	}
}

// Router builds the HTTP router with all routes registered.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestMiddleware)

	r.HandleFunc("/api/analyze", h.AnalyzeLog).Methods("POST")
	r.HandleFunc("/api/formats", h.ListFormats).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})).Methods("GET")

	return r
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	// Content is the raw build-log text.
	Content string `json:"content"`

	// Format is the log format key; unrecognized values fall back to
	// generic matching.
	Format string `json:"format"`
}

// AnalyzeLog parses a submitted log and responds with the structured
// report. AI insight failures degrade to a report without insights.
func (h *Handler) AnalyzeLog(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	format := req.Format
	if format == "" {
		format = parser.FormatGeneric
	}

	start := time.Now()
	analysis := parser.Parse(req.Content, format)
	h.metrics.analyzeDuration.Observe(time.Since(start).Seconds())
	h.metrics.analyzesTotal.WithLabelValues(metricFormat(format)).Inc()

	report := output.NewReport(analysis, format, "request")

	if h.insighter != nil {
		insights, err := h.insighter.Analyze(r.Context(), analysis, format)
		if err != nil {
			log.Printf("Warning: AI insights unavailable: %v", err)
		} else {
			report.Insights = insights
		}
	}

	writeJSON(w, http.StatusOK, report)
}

// ListFormats returns the recognized format keys.
func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"formats": parser.SupportedFormats(),
		"default": parser.FormatGeneric,
	})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// metricFormat folds unrecognized format keys into "generic" so the
// label set stays bounded.
func metricFormat(format string) string {
	key := strings.ToLower(format)
	for _, known := range parser.SupportedFormats() {
		if key == known {
			return key
		}
	}
	return parser.FormatGeneric
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: writing response: %v", err)
	}
}

// Run serves the API until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context, cfg *config.Config) error {
	var insighter Insighter
	if cfg.AI.Enabled {
		insighter = ai.NewClient(ai.Options{
			Endpoint: cfg.AI.Endpoint,
			Model:    cfg.AI.Model,
			APIKey:   cfg.AI.APIKey,
			Timeout:  cfg.AI.Timeout,
			CacheTTL: cfg.AI.CacheTTL,
		})
	}

	handler := NewHandler(insighter)
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("buildlens listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
