package agent

import "testing"

func TestParseDemandingEvaluation_ClampsAndDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		want float64
	}{
		{"digit in string", `{"technicalSkills": "8"}`, "technicalSkills", 8},
		{"bare number", `{"technicalSkills": 8}`, "technicalSkills", 8},
		{"decimal", `{"overallRating": "7.5"}`, "overallRating", 7.5},
		{"missing defaults to zero", `{}`, "technicalSkills", 0},
		{"non-numeric defaults to zero", `{"technicalSkills": "excellent"}`, "technicalSkills", 0},
		{"above range clamped", `{"technicalSkills": "14"}`, "technicalSkills", 10},
		{"below range clamped", `{"technicalSkills": "-3"}`, "technicalSkills", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDemandingEvaluation(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got float64
			switch tt.key {
			case "technicalSkills":
				got = result.TechnicalSkills
			case "overallRating":
				got = result.OverallRating
			}
			if got != tt.want {
				t.Errorf("%s = %f, want %f", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseDemandingEvaluation_InvalidJSON(t *testing.T) {
	for _, raw := range []string{"", "not json", "{truncated", "Sure! Here is my evaluation: {}"} {
		if _, err := parseDemandingEvaluation(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseSupportiveEvaluation_ArrayAndStringFields(t *testing.T) {
	result, err := parseSupportiveEvaluation(`{
		"overallRating": "4",
		"strengths": "Strong start",
		"gentleSuggestions": ["Expand the intro", "Cite sources"],
		"encouragingNextSteps": ["Draft the next section"]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallRating != 4 {
		t.Errorf("overallRating = %f, want 4", result.OverallRating)
	}
	if result.Strengths != "Strong start" {
		t.Errorf("strengths = %q", result.Strengths)
	}
	if result.AreasForImprovement != "Expand the intro\nCite sources" {
		t.Errorf("areasForImprovement = %q", result.AreasForImprovement)
	}
	if result.Feedback != "Draft the next section" {
		t.Errorf("feedback = %q", result.Feedback)
	}
}

func TestSplitSteps(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"numbered", "1. First\n2. Second", []string{"First", "Second"}},
		{"unnumbered", "Do this\nThen that", []string{"Do this", "Then that"}},
		{"blank lines dropped", "1. One\n\n\n2. Two\n", []string{"One", "Two"}},
		{"whitespace only", "   \n\t\n", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSteps(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("step %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
