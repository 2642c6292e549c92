package api

import (
	"encoding/json"
	"net/http"

	"github.com/campushq/mentor/internal/agent"
)

// loadAgent fetches an active agent profile; a nil return means the response
// has already been written.
func (s *Server) loadAgent(w http.ResponseWriter, r *http.Request) *agent.Profile {
	agentID, ok := urlUUID(w, r, "agentID")
	if !ok {
		return nil
	}

	profile, err := s.store.GetAgent(r.Context(), agentID)
	if err != nil {
		s.respondServiceError(w, err)
		return nil
	}
	if !profile.IsActive {
		respondError(w, http.StatusNotFound, "agent "+agentID.String()+" is not active")
		return nil
	}
	return profile
}

// agentGreeting handles POST /api/v1/agents/{agentID}/greeting
func (s *Server) agentGreeting(w http.ResponseWriter, r *http.Request) {
	profile := s.loadAgent(w, r)
	if profile == nil {
		return
	}

	greeting, err := s.strategies.For(profile.Personality).Greeting(r.Context(), *profile)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"agentId":  profile.ID.String(),
		"greeting": greeting,
	})
}

type feedbackRequest struct {
	Message string `json:"message"`
}

// agentFeedback handles POST /api/v1/agents/{agentID}/feedback
func (s *Server) agentFeedback(w http.ResponseWriter, r *http.Request) {
	profile := s.loadAgent(w, r)
	if profile == nil {
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	feedback, err := s.strategies.For(profile.Personality).Feedback(r.Context(), *profile, req.Message)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"agentId":  profile.ID.String(),
		"feedback": feedback,
	})
}

// agentNextSteps handles POST /api/v1/agents/{agentID}/next-steps
func (s *Server) agentNextSteps(w http.ResponseWriter, r *http.Request) {
	profile := s.loadAgent(w, r)
	if profile == nil {
		return
	}

	steps, err := s.strategies.For(profile.Personality).NextSteps(r.Context(), *profile)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	if steps == nil {
		steps = []string{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"agentId":   profile.ID.String(),
		"nextSteps": steps,
	})
}
