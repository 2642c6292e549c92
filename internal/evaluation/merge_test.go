package evaluation

import (
	"math"
	"testing"

	"github.com/campushq/mentor/internal/agent"
	"github.com/campushq/mentor/internal/store"
)

func TestMergeCriteria_RecencyBlend(t *testing.T) {
	tests := []struct {
		name     string
		existing float64
		fresh    float64
		want     float64
	}{
		{"recency weighted blend", 8, 4, 5.2}, // 4*0.7 + 8*0.3
		{"equal values unchanged", 6, 6, 6},
		{"zero fresh pulls down", 10, 0, 3},
		{"zero existing pulls up", 0, 10, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mergeCriteria(
				map[string]float64{"technicalSkills": tt.existing},
				map[string]float64{"technicalSkills": tt.fresh},
			)
			if math.Abs(merged["technicalSkills"]-tt.want) > 0.0001 {
				t.Errorf("merged = %f, want %f", merged["technicalSkills"], tt.want)
			}
		})
	}
}

func TestMergeCriteria_StaysInRange(t *testing.T) {
	// A convex combination of two in-range values cannot leave the range.
	for _, existing := range []float64{0, 2.5, 5, 7.5, 10} {
		for _, fresh := range []float64{0, 2.5, 5, 7.5, 10} {
			merged := mergeCriteria(
				map[string]float64{"creativity": existing},
				map[string]float64{"creativity": fresh},
			)
			got := merged["creativity"]
			if got < 0 || got > 10 {
				t.Errorf("merge(%f, %f) = %f, out of [0,10]", existing, fresh, got)
			}
		}
	}
}

func TestMergeCriteria_NewKeyAddedAtFullWeight(t *testing.T) {
	merged := mergeCriteria(
		map[string]float64{"technicalSkills": 8},
		map[string]float64{"technicalSkills": 8, "teamwork": 7},
	)
	if merged["teamwork"] != 7 {
		t.Errorf("new key should carry full weight, got %f", merged["teamwork"])
	}
}

func TestMergeCriteria_ExistingOnlyKeyKept(t *testing.T) {
	merged := mergeCriteria(
		map[string]float64{"communication": 6, "technicalSkills": 8},
		map[string]float64{"technicalSkills": 8},
	)
	if merged["communication"] != 6 {
		t.Errorf("key absent from fresh extraction should be untouched, got %f", merged["communication"])
	}
}

func TestExtractCriteria_Individual(t *testing.T) {
	result := agent.EvaluationResult{
		TechnicalSkills: 8, ProblemSolving: 7, Creativity: 6, DeliveryQuality: 9,
		Communication: 5, ProjectManagement: 4, Adaptability: 3,
		Teamwork: 10, Collaboration: 10,
	}

	criteria := extractCriteria(result, store.EvaluationIndividual)

	want := map[string]float64{
		"technicalSkills": 8, "problemSolving": 7, "creativity": 6, "deliveryQuality": 9,
		"communication": 5, "projectManagement": 4, "adaptability": 3,
	}
	if len(criteria) != len(want) {
		t.Fatalf("expected %d criteria, got %d: %v", len(want), len(criteria), criteria)
	}
	for k, v := range want {
		if criteria[k] != v {
			t.Errorf("%s = %f, want %f", k, criteria[k], v)
		}
	}
	if _, ok := criteria["teamwork"]; ok {
		t.Error("individual evaluation must not carry group criteria")
	}
}

func TestExtractCriteria_Group(t *testing.T) {
	result := agent.EvaluationResult{
		TechnicalSkills: 8, ProblemSolving: 7, Creativity: 6, DeliveryQuality: 9,
		Teamwork: 8, Collaboration: 7, RolePerformance: 6, ConflictResolution: 5, LeadershipContribution: 4,
		Communication: 10,
	}

	criteria := extractCriteria(result, store.EvaluationGroup)

	for _, key := range []string{
		"technicalSkills", "problemSolving", "creativity", "deliveryQuality",
		"teamwork", "collaboration", "rolePerformance", "conflictResolution", "leadershipContribution",
	} {
		if _, ok := criteria[key]; !ok {
			t.Errorf("group evaluation missing criterion %s", key)
		}
	}
	if _, ok := criteria["communication"]; ok {
		t.Error("group evaluation must not carry individual criteria")
	}
	if len(criteria) != 9 {
		t.Errorf("expected 9 group criteria, got %d", len(criteria))
	}
}
