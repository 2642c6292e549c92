package evaluation

import (
	"github.com/campushq/mentor/internal/agent"
	"github.com/campushq/mentor/internal/store"
)

// Recency weights for merging a fresh evaluation into the accumulated record:
// later milestones say more about current skill than earlier ones, but one
// outlier submission should not erase accumulated evidence.
const (
	newWeight      = 0.7
	existingWeight = 0.3
)

// extractCriteria pulls the scored criteria relevant to the evaluation type.
// The base four always apply; the type-specific extras differ between
// individual and group projects. Scores were already clamped to [0,10] at
// parse time, with anything missing or unparseable read as 0.
func extractCriteria(r agent.EvaluationResult, evalType store.EvaluationType) map[string]float64 {
	criteria := map[string]float64{
		"technicalSkills": r.TechnicalSkills,
		"problemSolving":  r.ProblemSolving,
		"creativity":      r.Creativity,
		"deliveryQuality": r.DeliveryQuality,
	}

	if evalType == store.EvaluationIndividual {
		criteria["communication"] = r.Communication
		criteria["projectManagement"] = r.ProjectManagement
		criteria["adaptability"] = r.Adaptability
	} else {
		criteria["teamwork"] = r.Teamwork
		criteria["collaboration"] = r.Collaboration
		criteria["rolePerformance"] = r.RolePerformance
		criteria["conflictResolution"] = r.ConflictResolution
		criteria["leadershipContribution"] = r.LeadershipContribution
	}

	return criteria
}

// mergeCriteria blends fresh scores into existing ones. Keys present in both
// take the 70/30 recency-weighted blend; keys only in the fresh map are added
// at full weight; keys only in the existing map are left untouched. Blending
// two in-range values is a convex combination, so scores stay within [0,10]
// by construction.
func mergeCriteria(existing, fresh map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(existing)+len(fresh))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range fresh {
		if prev, ok := merged[k]; ok {
			merged[k] = v*newWeight + prev*existingWeight
		} else {
			merged[k] = v
		}
	}
	return merged
}
