// Package server exposes the analysis engine, sentiment pipeline and run
// history over HTTP and WebSocket.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/seolens/seolens/docs" // swagger spec registration

	"github.com/seolens/seolens/internal/analyzer"
	"github.com/seolens/seolens/internal/app"
	"github.com/seolens/seolens/internal/logging"
	"github.com/seolens/seolens/internal/registry"
	"github.com/seolens/seolens/internal/scraper"
	"github.com/seolens/seolens/internal/sentiment"
)

// Server is the HTTP + WebSocket API surface.
type Server struct {
	cfg       Config
	app       *app.App
	scraper   *scraper.Scraper
	sentiment *sentiment.Analyzer
	registry  *registry.Registry
	router    chi.Router
	upgrader  websocket.Upgrader
	logger    logging.Logger
}

// NewServer wires the full service: analysis app, scraper, sentiment
// analyzer and history registry.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}
	if cfg.ScraperConfig == nil {
		cfg.ScraperConfig = scraper.DefaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	application, err := app.New(cfg.AppConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	reg, err := registry.Open(cfg.DBPath, logger)
	if err != nil {
		application.Close()
		return nil, fmt.Errorf("opening registry: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		app:       application,
		scraper:   scraper.New(cfg.ScraperConfig, application.WebClient(), logger),
		sentiment: sentiment.New(logger),
		registry:  reg,
		router:    chi.NewRouter(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
		logger: logger,
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)
	r.Use(metricsMiddleware)

	r.Options("/api/v1/analyze", s.optionsHandler("GET"))
	r.Options("/api/v1/sentiment", s.optionsHandler("POST"))
	r.Options("/api/v1/analyses", s.optionsHandler("GET"))
	r.Options("/api/v1/analyses/{id}", s.optionsHandler("GET"))
	r.Options("/api/v1/analyses/diff", s.optionsHandler("GET"))

	r.Get("/", s.handleAnalyze)
	r.Get("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/sentiment", s.handleSentiment)

	r.Get("/api/v1/analyses", s.handleListAnalyses)
	r.Get("/api/v1/analyses/diff", s.handleDiffAnalyses)
	r.Get("/api/v1/analyses/{id}", s.handleGetAnalysis)

	r.Get("/ws/analyze", s.handleAnalyzeWS)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}
	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close releases the app's web client and the registry database.
func (s *Server) Close() {
	if s.registry != nil {
		s.registry.Close()
	}
	if s.app != nil {
		s.app.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError emits the uniform error envelope. url echoes the page or post
// URL the request was about, empty when the request carried none.
func writeError(w http.ResponseWriter, status int, url, msg string) {
	writeJSON(w, status, map[string]string{"status": "error", "url": url, "message": msg})
}

// --- HTTP handlers ---

// handleAnalyze godoc
//
//	@Summary	Run the full check catalog against a page
//	@Param		url	query		string	true	"Absolute http(s) URL of the page to analyze"
//	@Success	200	{object}	app.Envelope
//	@Failure	400	{object}	map[string]string
//	@Router		/api/v1/analyze [get]
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")

	envelope, err := s.app.Analyze(r.Context(), url, nil)
	if err != nil {
		analysesTotal.WithLabelValues("error").Inc()
		s.logger.Warn("analysis failed",
			logging.Field{Key: "url", Value: url},
			logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, url, err.Error())
		return
	}

	analysesTotal.WithLabelValues("success").Inc()
	analysisDuration.Observe(envelope.AnalysisTimeSeconds)

	if id, err := s.registry.Save(r.Context(), envelope); err != nil {
		s.logger.Warn("saving analysis", logging.Field{Key: "error", Value: err.Error()})
	} else {
		w.Header().Set("X-Analysis-Id", id)
	}

	writeJSON(w, http.StatusOK, envelope)
}

// handleSentiment godoc
//
//	@Summary	Scrape comments from a social post and classify sentence sentiment
//	@Param		url	query		string	true	"Social media post URL (TikTok, Instagram, YouTube)"
//	@Success	200	{object}	map[string]any
//	@Failure	400	{object}	map[string]string
//	@Router		/api/v1/sentiment [post]
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		writeError(w, http.StatusBadRequest, url, "url query parameter is required")
		return
	}

	result, err := s.scraper.Scrape(r.Context(), url)
	if err != nil {
		s.logger.Warn("scraping comments",
			logging.Field{Key: "url", Value: url},
			logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, url, err.Error())
		return
	}

	comments := s.sentiment.ProcessComments(result.Texts())
	summary := sentiment.Summarize(comments)

	writeJSON(w, http.StatusOK, map[string]any{
		"platform": result.Platform,
		"url":      result.URL,
		"comments": comments,
		"summary":  summary,
	})
}

// handleListAnalyses godoc
//
//	@Summary	List recent analysis runs
//	@Param		limit	query		int	false	"Maximum number of runs (default 20)"
//	@Success	200	{array}	registry.RunSummary
//	@Router		/api/v1/analyses [get]
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if ls := r.URL.Query().Get("limit"); ls != "" {
		if v, err := strconv.Atoi(ls); err == nil && v > 0 {
			limit = v
		}
	}

	runs, err := s.registry.ListRecent(r.Context(), limit)
	if err != nil {
		s.logger.Warn("listing analyses", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}
	if runs == nil {
		runs = []registry.RunSummary{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// handleGetAnalysis godoc
//
//	@Summary	Fetch one stored analysis run with its full report
//	@Param		id	path		string	true	"Run id"
//	@Success	200	{object}	registry.Run
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/analyses/{id} [get]
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := s.registry.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, "", "analysis run not found")
			return
		}
		s.logger.Warn("getting analysis", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handleDiffAnalyses godoc
//
//	@Summary	Compare two stored runs check by check
//	@Param		base	query		string	true	"Base run id"
//	@Param		head	query		string	true	"Head run id"
//	@Success	200	{object}	registry.RunDiff
//	@Failure	404	{object}	map[string]string
//	@Router		/api/v1/analyses/diff [get]
func (s *Server) handleDiffAnalyses(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	head := r.URL.Query().Get("head")
	if base == "" || head == "" {
		writeError(w, http.StatusBadRequest, "", "base and head query parameters are required")
		return
	}

	diff, err := s.registry.DiffRuns(r.Context(), base, head)
	if err != nil {
		if errors.Is(err, registry.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, "", "analysis run not found")
			return
		}
		s.logger.Warn("diffing analyses", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, "", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, diff)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- WebSocket ---

// progressEvent is one per-check message on the analysis stream.
type progressEvent struct {
	Event  string                `json:"event"`
	Check  string                `json:"check,omitempty"`
	Result *analyzer.CheckResult `json:"result,omitempty"`
}

// handleAnalyzeWS streams per-check progress events followed by the final
// envelope.
func (s *Server) handleAnalyzeWS(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	progress := func(name string, result *analyzer.CheckResult) {
		_ = conn.WriteJSON(progressEvent{Event: "check", Check: name, Result: result})
	}

	envelope, err := s.app.Analyze(r.Context(), url, progress)
	if err != nil {
		analysesTotal.WithLabelValues("error").Inc()
		_ = conn.WriteJSON(map[string]string{"status": "error", "url": url, "message": err.Error()})
		return
	}

	analysesTotal.WithLabelValues("success").Inc()
	analysisDuration.Observe(envelope.AnalysisTimeSeconds)

	if _, err := s.registry.Save(r.Context(), envelope); err != nil {
		s.logger.Warn("saving analysis", logging.Field{Key: "error", Value: err.Error()})
	}

	_ = conn.WriteJSON(map[string]any{"event": "done", "envelope": envelope})
}
