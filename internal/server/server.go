// Package server exposes the optimization engine over HTTP. It owns the set
// of live runs (each driven by its own goroutine on a ticker) and the run
// archive, and maps engine errors onto HTTP status codes.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/archivestore"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/config"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization/benchmark"
)

// palette supplies default trace colors for archived runs, cycled in
// archive order.
var palette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231", "#911eb4",
	"#46f0f0", "#f032e6", "#bcf60c", "#008080", "#9a6324",
}

// runJob pairs a live run with the goroutine driving it. All access to the
// run goes through mu: the engine itself is single-threaded by contract.
type runJob struct {
	ID        string
	StartTime time.Time
	Color     string

	mu     sync.Mutex
	run    *optimization.Run
	cancel context.CancelFunc
}

// Server implements the HTTP API for the optimization service.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger

	archive *optimization.Archive
	store   archivestore.Store // optional durable layer, may be nil

	jobsMu sync.RWMutex
	jobs   map[string]*runJob
}

// NewServer creates a server instance. store may be nil to keep the archive
// in memory only.
func NewServer(cfg *config.Config, logger *zap.Logger, store archivestore.Store) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		archive: optimization.NewArchive(),
		store:   store,
		jobs:    make(map[string]*runJob),
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/functions", s.handleListFunctions)
		r.Post("/runs", s.handleCreateRun)
		r.Get("/runs/{id}", s.handleRunStatus)
		r.Delete("/runs/{id}", s.handleStopRun)
		r.Post("/runs/{id}/archive", s.handleArchiveRun)
		r.Get("/archive", s.handleListArchive)
		r.Get("/archive/{id}", s.handleGetArchive)
		r.Get("/archive/{id}/history", s.handleArchiveHistory)
	})
}

// functionInfo is the catalog listing payload.
type functionInfo struct {
	Name     string  `json:"name"`
	Lo       float64 `json:"lo"`
	Hi       float64 `json:"hi"`
	OptimumX float64 `json:"optimumX"`
	OptimumY float64 `json:"optimumY"`
}

func (s *Server) handleListFunctions(w http.ResponseWriter, r *http.Request) {
	fns := benchmark.List()
	out := make([]functionInfo, len(fns))
	for i, fn := range fns {
		out[i] = functionInfo{
			Name:     fn.Name,
			Lo:       fn.Lo,
			Hi:       fn.Hi,
			OptimumX: fn.OptimumX,
			OptimumY: fn.OptimumY,
		}
	}
	s.respondJSON(w, http.StatusOK, out)
}

// createRunRequest configures a new run.
type createRunRequest struct {
	Algorithm     string              `json:"algorithm"`
	Function      string              `json:"function"`
	MaxIterations *int                `json:"maxIterations,omitempty"`
	Color         string              `json:"color,omitempty"`
	Params        optimization.Params `json:"params"`
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	opt, err := optimization.New(optimization.Algorithm(req.Algorithm), req.Params, req.Function)
	if err != nil {
		s.respondError(w, err)
		return
	}

	maxIterations := s.cfg.Engine.MaxIterations
	if req.MaxIterations != nil {
		maxIterations = *req.MaxIterations
	}

	run := optimization.NewRun(opt, req.Params, maxIterations)
	if err := run.Start(); err != nil {
		s.respondError(w, err)
		return
	}

	color := req.Color
	if color == "" {
		color = palette[s.archive.Len()%len(palette)]
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &runJob{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		Color:     color,
		run:       run,
		cancel:    cancel,
	}

	s.jobsMu.Lock()
	s.jobs[job.ID] = job
	s.jobsMu.Unlock()

	runsStarted.WithLabelValues(req.Algorithm, req.Function).Inc()
	s.logger.Info("run started",
		zap.String("run_id", job.ID),
		zap.String("algorithm", req.Algorithm),
		zap.String("function", req.Function),
		zap.Int("max_iterations", maxIterations),
	)

	go s.driveRun(ctx, job, req.Algorithm, req.Function)

	s.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"id":    job.ID,
		"state": string(optimization.StateRunning),
	})
}

// driveRun advances the run one step per tick until it leaves Running or
// the job context is cancelled. Each Advance is atomic under the job lock.
func (s *Server) driveRun(ctx context.Context, job *runJob, algorithm, function string) {
	ticker := time.NewTicker(s.cfg.Engine.StepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			job.mu.Lock()
			if job.run.State() == optimization.StateRunning {
				_ = job.run.Stop()
			}
			state := job.run.State()
			job.mu.Unlock()
			runsFinished.WithLabelValues(string(state)).Inc()
			return
		case <-ticker.C:
			job.mu.Lock()
			err := job.run.Advance()
			state := job.run.State()
			best := job.run.Best()
			job.mu.Unlock()

			if err != nil {
				// A stop between ticks leaves the run terminal before the
				// next Advance; that is normal termination, not a failure.
				if optimization.IsInvalidState(err) {
					s.logger.Debug("run no longer running", zap.String("run_id", job.ID), zap.Error(err))
					runsFinished.WithLabelValues(string(state)).Inc()
					return
				}
				s.logger.Error("advance failed", zap.String("run_id", job.ID), zap.Error(err))
				return
			}
			iterationsTotal.Inc()
			bestFitness.WithLabelValues(algorithm, function).Set(best.Fitness)

			if state != optimization.StateRunning {
				runsFinished.WithLabelValues(string(state)).Inc()
				s.logger.Info("run finished",
					zap.String("run_id", job.ID),
					zap.String("state", string(state)),
					zap.Float64("best_fitness", best.Fitness),
				)
				return
			}
		}
	}
}

func (s *Server) handleRunStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.getJob(chi.URLParam(r, "id"))
	if !ok {
		s.respondJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		return
	}

	job.mu.Lock()
	summary := job.run.Summary()
	snapshot := job.run.Snapshot()
	job.mu.Unlock()

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":        job.ID,
		"color":     job.Color,
		"startTime": job.StartTime.Format(time.RFC3339),
		"summary":   summary,
		"snapshot":  snapshot,
	})
}

func (s *Server) handleStopRun(w http.ResponseWriter, r *http.Request) {
	job, ok := s.getJob(chi.URLParam(r, "id"))
	if !ok {
		s.respondJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		return
	}

	job.mu.Lock()
	err := job.run.Stop()
	job.mu.Unlock()
	job.cancel()

	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"state": string(optimization.StateStopped)})
}

func (s *Server) handleArchiveRun(w http.ResponseWriter, r *http.Request) {
	job, ok := s.getJob(chi.URLParam(r, "id"))
	if !ok {
		s.respondJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
		return
	}

	job.mu.Lock()
	id, err := s.archive.Record(job.run, job.Color)
	job.mu.Unlock()

	if err != nil {
		s.respondError(w, err)
		return
	}
	archivedRuns.Inc()

	if s.store != nil {
		entry, getErr := s.archive.Get(id)
		if getErr == nil {
			if saveErr := s.store.Save(r.Context(), entry); saveErr != nil {
				s.logger.Error("persist archived run", zap.Int("archive_id", id), zap.Error(saveErr))
			}
		}
	}

	s.respondJSON(w, http.StatusCreated, map[string]int{"archiveId": id})
}

func (s *Server) handleListArchive(w http.ResponseWriter, r *http.Request) {
	entries := s.archive.List()
	out := make([]map[string]interface{}, len(entries))
	for i, e := range entries {
		out[i] = map[string]interface{}{
			"id":       e.ID,
			"function": e.FunctionName,
			"color":    e.Color,
			"summary":  e.Summary,
		}
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetArchive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "archive id must be an integer"})
		return
	}

	entry, err := s.archive.Get(id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":         entry.ID,
		"function":   entry.FunctionName,
		"color":      entry.Color,
		"summary":    entry.Summary,
		"iterations": len(entry.History) - 1,
	})
}

func (s *Server) handleArchiveHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "archive id must be an integer"})
		return
	}

	entry, err := s.archive.Get(id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      entry.ID,
		"color":   entry.Color,
		"history": entry.History,
		"stats":   entry.Stats,
	})
}

// Archive exposes the in-memory archive, used by the serve bootstrap to
// rehydrate persisted entries.
func (s *Server) Archive() *optimization.Archive { return s.archive }

// Close cancels every live run driver.
func (s *Server) Close() error {
	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()

	for _, job := range s.jobs {
		if job.cancel != nil {
			job.cancel()
		}
	}
	return nil
}

func (s *Server) getJob(id string) (*runJob, bool) {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// respondError maps engine error kinds onto HTTP statuses.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case optimization.IsInvalidConfiguration(err):
		status = http.StatusBadRequest
	case optimization.IsNotFound(err), errors.Is(err, archivestore.ErrNotFound):
		status = http.StatusNotFound
	case optimization.IsInvalidState(err):
		status = http.StatusConflict
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}
