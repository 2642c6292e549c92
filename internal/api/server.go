// Package api exposes the evaluation pipeline, agent interactions and
// reports over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/campushq/mentor/internal/agent"
	"github.com/campushq/mentor/internal/evaluation"
	"github.com/campushq/mentor/internal/store"
)

// Store is the slice of persistence the handlers read from directly.
type Store interface {
	GetAgent(ctx context.Context, id uuid.UUID) (*agent.Profile, error)
	GetEvaluation(ctx context.Context, id uuid.UUID) (*store.Evaluation, error)
	ListEvaluations(ctx context.Context, projectID uuid.UUID) ([]store.Evaluation, error)
	ListEvaluationsByStudent(ctx context.Context, studentID uuid.UUID) ([]store.Evaluation, error)
}

// EvaluationService runs the submission evaluation pipeline.
type EvaluationService interface {
	AnalyzeSubmission(ctx context.Context, projectID, milestoneID uuid.UUID) (*store.Evaluation, error)
	GenerateRecommendations(ctx context.Context, evaluationID uuid.UUID) (*store.Evaluation, error)
	AnalyzeForPreview(ctx context.Context, projectID, milestoneID uuid.UUID) (*evaluation.SubmissionAnalysis, error)
}

type Server struct {
	router      *chi.Mux
	port        int
	store       Store
	evaluations EvaluationService
	strategies  *agent.Set
	logger      *slog.Logger
}

func NewServer(port int, apiToken string, db Store, evaluations EvaluationService, strategies *agent.Set, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:      router,
		port:        port,
		store:       db,
		evaluations: evaluations,
		strategies:  strategies,
		logger:      logger,
	}

	router.Get("/health", s.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))

		r.Get("/projects/{projectID}/evaluations", s.listEvaluations)
		r.Get("/projects/{projectID}/milestones/{milestoneID}/analysis", s.previewAnalysis)
		r.Post("/projects/{projectID}/milestones/{milestoneID}/analyze", s.analyzeSubmission)
		r.Post("/evaluations/{evaluationID}/recommendations", s.generateRecommendations)

		r.Post("/agents/{agentID}/greeting", s.agentGreeting)
		r.Post("/agents/{agentID}/feedback", s.agentFeedback)
		r.Post("/agents/{agentID}/next-steps", s.agentNextSteps)

		r.Get("/reports/evaluations/{evaluationID}", s.evaluationReport)
		r.Get("/reports/students/{studentID}/performance", s.studentPerformance)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps pipeline errors onto HTTP statuses: missing
// records are 404, milestones that are not ready for analysis are 409,
// model-side failures are 502, anything else is a 500.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, evaluation.ErrInvalidSubmissionState):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, agent.ErrCompletion):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// urlUUID parses a uuid path parameter; a false return means the 400 has
// already been written.
func urlUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", param))
		return uuid.Nil, false
	}
	return id, true
}
