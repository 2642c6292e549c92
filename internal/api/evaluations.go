package api

import (
	"net/http"
	"time"

	"github.com/campushq/mentor/internal/store"
)

type evaluationResponse struct {
	ID              string             `json:"id"`
	ProjectID       string             `json:"projectId"`
	StudentID       string             `json:"studentId"`
	Type            string             `json:"type"`
	Criteria        map[string]float64 `json:"criteria"`
	Comments        string             `json:"comments"`
	Recommendations string             `json:"recommendationsForImprovement,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func toEvaluationResponse(e *store.Evaluation) evaluationResponse {
	return evaluationResponse{
		ID:              e.ID.String(),
		ProjectID:       e.ProjectID.String(),
		StudentID:       e.StudentID.String(),
		Type:            string(e.Type),
		Criteria:        e.Criteria,
		Comments:        e.Comments,
		Recommendations: e.Recommendations,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// listEvaluations handles GET /api/v1/projects/{projectID}/evaluations
func (s *Server) listEvaluations(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlUUID(w, r, "projectID")
	if !ok {
		return
	}

	evaluations, err := s.store.ListEvaluations(r.Context(), projectID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	out := make([]evaluationResponse, 0, len(evaluations))
	for i := range evaluations {
		out = append(out, toEvaluationResponse(&evaluations[i]))
	}
	respondJSON(w, http.StatusOK, out)
}

// analyzeSubmission handles POST /api/v1/projects/{projectID}/milestones/{milestoneID}/analyze
func (s *Server) analyzeSubmission(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlUUID(w, r, "projectID")
	if !ok {
		return
	}
	milestoneID, ok := urlUUID(w, r, "milestoneID")
	if !ok {
		return
	}

	evaluation, err := s.evaluations.AnalyzeSubmission(r.Context(), projectID, milestoneID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toEvaluationResponse(evaluation))
}

// previewAnalysis handles GET /api/v1/projects/{projectID}/milestones/{milestoneID}/analysis
func (s *Server) previewAnalysis(w http.ResponseWriter, r *http.Request) {
	projectID, ok := urlUUID(w, r, "projectID")
	if !ok {
		return
	}
	milestoneID, ok := urlUUID(w, r, "milestoneID")
	if !ok {
		return
	}

	analysis, err := s.evaluations.AnalyzeForPreview(r.Context(), projectID, milestoneID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, analysis)
}

// generateRecommendations handles POST /api/v1/evaluations/{evaluationID}/recommendations
func (s *Server) generateRecommendations(w http.ResponseWriter, r *http.Request) {
	evaluationID, ok := urlUUID(w, r, "evaluationID")
	if !ok {
		return
	}

	evaluation, err := s.evaluations.GenerateRecommendations(r.Context(), evaluationID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toEvaluationResponse(evaluation))
}
