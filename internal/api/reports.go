package api

import (
	"net/http"

	"github.com/campushq/mentor/internal/report"
	"github.com/campushq/mentor/internal/store"
)

type evaluationReportResponse struct {
	EvaluationID     string             `json:"evaluationId"`
	ProjectID        string             `json:"projectId"`
	StudentID        string             `json:"studentId"`
	Type             string             `json:"type"`
	Status           string             `json:"status"`
	OverallRating    float64            `json:"overallRating"`
	Criteria         map[string]float64 `json:"criteria"`
	Strengths        []string           `json:"strengths"`
	ImprovementAreas []string           `json:"improvementAreas"`
	Comments         string             `json:"comments"`
	Recommendations  string             `json:"recommendations,omitempty"`
}

// evaluationReport handles GET /api/v1/reports/evaluations/{evaluationID}
func (s *Server) evaluationReport(w http.ResponseWriter, r *http.Request) {
	evaluationID, ok := urlUUID(w, r, "evaluationID")
	if !ok {
		return
	}

	e, err := s.store.GetEvaluation(r.Context(), evaluationID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, evaluationReportResponse{
		EvaluationID:     e.ID.String(),
		ProjectID:        e.ProjectID.String(),
		StudentID:        e.StudentID.String(),
		Type:             string(e.Type),
		Status:           string(e.Status),
		OverallRating:    report.OverallRating(e.Criteria),
		Criteria:         e.Criteria,
		Strengths:        emptyIfNil(report.Strengths(e.Criteria)),
		ImprovementAreas: emptyIfNil(report.ImprovementAreas(e.Criteria)),
		Comments:         e.Comments,
		Recommendations:  e.Recommendations,
	})
}

type studentPerformanceResponse struct {
	StudentID              string             `json:"studentId"`
	TotalEvaluations       int                `json:"totalEvaluations"`
	CompletedEvaluations   int                `json:"completedEvaluations"`
	AveragePerformance     map[string]float64 `json:"averagePerformance"`
	OverallRating          float64            `json:"overallRating"`
	Strengths              []string           `json:"strengths"`
	ImprovementAreas       []string           `json:"improvementAreas"`
	DevelopmentSuggestions []string           `json:"developmentSuggestions"`
}

// studentPerformance handles GET /api/v1/reports/students/{studentID}/performance
func (s *Server) studentPerformance(w http.ResponseWriter, r *http.Request) {
	studentID, ok := urlUUID(w, r, "studentID")
	if !ok {
		return
	}

	evaluations, err := s.store.ListEvaluationsByStudent(r.Context(), studentID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	if len(evaluations) == 0 {
		respondError(w, http.StatusNotFound, "no evaluations for student "+studentID.String())
		return
	}

	completed := 0
	for _, e := range evaluations {
		if e.Status == store.EvaluationCompleted {
			completed++
		}
	}

	performance := report.AveragePerformance(evaluations)
	improvements := report.AggregateImprovementAreas(performance)

	respondJSON(w, http.StatusOK, studentPerformanceResponse{
		StudentID:              studentID.String(),
		TotalEvaluations:       len(evaluations),
		CompletedEvaluations:   completed,
		AveragePerformance:     performance,
		OverallRating:          report.OverallRating(performance),
		Strengths:              emptyIfNil(report.AggregateStrengths(performance)),
		ImprovementAreas:       emptyIfNil(improvements),
		DevelopmentSuggestions: report.DevelopmentSuggestions(improvements),
	})
}

// emptyIfNil keeps list fields as [] in JSON instead of null.
func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
