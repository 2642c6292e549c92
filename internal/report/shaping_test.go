package report

import (
	"math"
	"strings"
	"testing"

	"github.com/campushq/mentor/internal/store"
)

func TestFormatCriterionLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"technicalSkills", "Technical Skills"},
		{"problemSolving", "Problem Solving"},
		{"creativity", "Creativity"},
		{"deliveryQuality", "Delivery Quality"},
		{"conflictResolution", "Conflict Resolution"},
		{"leadershipContribution", "Leadership Contribution"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatCriterionLabel(tt.key); got != tt.want {
			t.Errorf("FormatCriterionLabel(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestStrengthsAndImprovements(t *testing.T) {
	criteria := map[string]float64{
		"technicalSkills": 9,
		"problemSolving":  4,
		"creativity":      7,
		"deliveryQuality": 5,
	}

	strengths := Strengths(criteria)
	if len(strengths) != 1 || strengths[0] != "Technical Skills" {
		t.Errorf("strengths = %v, want [Technical Skills]", strengths)
	}

	improvements := ImprovementAreas(criteria)
	if len(improvements) != 2 {
		t.Fatalf("improvements = %v, want 2 areas", improvements)
	}
	got := strings.Join(improvements, ",")
	for _, want := range []string{"Problem Solving", "Delivery Quality"} {
		if !strings.Contains(got, want) {
			t.Errorf("improvements %v missing %q", improvements, want)
		}
	}
}

func TestThresholdBoundaries(t *testing.T) {
	// 8 is a strength, 5 is an improvement area; values between belong to
	// neither list.
	criteria := map[string]float64{
		"technicalSkills": 8,
		"problemSolving":  5,
		"creativity":      6,
	}

	if s := Strengths(criteria); len(s) != 1 || s[0] != "Technical Skills" {
		t.Errorf("strengths = %v, want exactly [Technical Skills]", s)
	}
	if a := ImprovementAreas(criteria); len(a) != 1 || a[0] != "Problem Solving" {
		t.Errorf("improvements = %v, want exactly [Problem Solving]", a)
	}
}

func TestOverallRating(t *testing.T) {
	criteria := map[string]float64{
		"technicalSkills": 9,
		"problemSolving":  4,
		"creativity":      7,
		"deliveryQuality": 5,
	}
	if got := OverallRating(criteria); math.Abs(got-6.25) > 0.0001 {
		t.Errorf("overall rating = %f, want 6.25", got)
	}
	if got := OverallRating(nil); got != 0 {
		t.Errorf("overall rating of empty criteria = %f, want 0", got)
	}
}

func TestAveragePerformance(t *testing.T) {
	evaluations := []store.Evaluation{
		{Criteria: map[string]float64{"technicalSkills": 8, "communication": 6}},
		{Criteria: map[string]float64{"technicalSkills": 6, "teamwork": 9}},
	}

	perf := AveragePerformance(evaluations)

	if got := perf["technicalSkills"]; got != 7 {
		t.Errorf("technicalSkills average = %f, want 7", got)
	}
	// Criteria present in a single evaluation average over that one alone.
	if got := perf["communication"]; got != 6 {
		t.Errorf("communication average = %f, want 6", got)
	}
	if got := perf["teamwork"]; got != 9 {
		t.Errorf("teamwork average = %f, want 9", got)
	}
}

func TestAggregateThresholds(t *testing.T) {
	perf := map[string]float64{
		"technicalSkills": 7.5, // boundary: strength
		"problemSolving":  6,   // boundary: neither
		"creativity":      5.9, // improvement
		"deliveryQuality": 7,   // neither
	}

	if s := AggregateStrengths(perf); len(s) != 1 || s[0] != "Technical Skills" {
		t.Errorf("aggregate strengths = %v, want [Technical Skills]", s)
	}
	if a := AggregateImprovementAreas(perf); len(a) != 1 || a[0] != "Creativity" {
		t.Errorf("aggregate improvements = %v, want [Creativity]", a)
	}
}

func TestDevelopmentSuggestions(t *testing.T) {
	got := DevelopmentSuggestions([]string{"Problem Solving", "Teamwork"})
	if len(got) != 6 {
		t.Fatalf("expected 3 suggestions per matched area, got %d", len(got))
	}
	if !strings.Contains(got[0], "algorithmic") {
		t.Errorf("unexpected first suggestion: %q", got[0])
	}

	generic := DevelopmentSuggestions(nil)
	if len(generic) == 0 {
		t.Fatal("expected generic suggestions when no areas matched")
	}
	if !strings.Contains(generic[0], "feedback") {
		t.Errorf("unexpected generic suggestion: %q", generic[0])
	}

	unknown := DevelopmentSuggestions([]string{"Quantum Entanglement"})
	if len(unknown) != len(generic) {
		t.Errorf("unmatched areas should fall back to generic suggestions, got %v", unknown)
	}
}
