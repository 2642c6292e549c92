// Package report derives presentation data from stored evaluations: labels,
// strength/improvement lists and aggregate performance. Pure functions, no
// I/O; the HTTP layer serialises the results.
package report

import (
	"sort"
	"strings"
	"unicode"

	"github.com/campushq/mentor/internal/store"
)

// Thresholds for a single evaluation's criteria.
const (
	strengthThreshold    = 8.0
	improvementThreshold = 5.0
)

// Thresholds for per-student aggregates. Deliberately asymmetric with the
// single-evaluation cut points: averages smooth out single-observation noise,
// so the bar for calling something a strength or a weakness moves inward.
const (
	aggregateStrengthThreshold    = 7.5
	aggregateImprovementThreshold = 6.0
)

// FormatCriterionLabel turns a camelCase criterion key into a display label:
// "technicalSkills" becomes "Technical Skills".
func FormatCriterionLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sortedKeys(criteria map[string]float64) []string {
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strengths lists the labels of criteria scoring at or above 8, in criterion
// key order.
func Strengths(criteria map[string]float64) []string {
	var out []string
	for _, k := range sortedKeys(criteria) {
		if criteria[k] >= strengthThreshold {
			out = append(out, FormatCriterionLabel(k))
		}
	}
	return out
}

// ImprovementAreas lists the labels of criteria scoring at or below 5
// (inclusive boundary), in criterion key order.
func ImprovementAreas(criteria map[string]float64) []string {
	var out []string
	for _, k := range sortedKeys(criteria) {
		if criteria[k] <= improvementThreshold {
			out = append(out, FormatCriterionLabel(k))
		}
	}
	return out
}

// OverallRating is the arithmetic mean of all criteria, 0 when empty.
func OverallRating(criteria map[string]float64) float64 {
	if len(criteria) == 0 {
		return 0
	}
	var sum float64
	for _, v := range criteria {
		sum += v
	}
	return sum / float64(len(criteria))
}

// AveragePerformance computes the per-criterion mean across evaluations.
// A criterion only contributes to its own average for evaluations that carry
// it, so individual and group evaluations can be averaged together.
func AveragePerformance(evaluations []store.Evaluation) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range evaluations {
		for k, v := range e.Criteria {
			sums[k] += v
			counts[k]++
		}
	}

	avg := make(map[string]float64, len(sums))
	for k, sum := range sums {
		avg[k] = sum / float64(counts[k])
	}
	return avg
}

// AggregateStrengths lists criteria whose average is at least 7.5.
func AggregateStrengths(performance map[string]float64) []string {
	var out []string
	for _, k := range sortedKeys(performance) {
		if performance[k] >= aggregateStrengthThreshold {
			out = append(out, FormatCriterionLabel(k))
		}
	}
	return out
}

// AggregateImprovementAreas lists criteria whose average is strictly below 6.
func AggregateImprovementAreas(performance map[string]float64) []string {
	var out []string
	for _, k := range sortedKeys(performance) {
		if performance[k] < aggregateImprovementThreshold {
			out = append(out, FormatCriterionLabel(k))
		}
	}
	return out
}

var developmentSuggestions = map[string][]string{
	"Technical Skills": {
		"Consider taking online courses to strengthen technical foundations",
		"Join coding meetups or hackathons to practice skills",
		"Work on side projects to build a portfolio",
	},
	"Problem Solving": {
		"Practice algorithmic thinking with coding challenges",
		"Break down complex problems into smaller steps",
		"Study design patterns and system architecture",
	},
	"Communication": {
		"Join Toastmasters or public speaking groups",
		"Practice writing technical documentation",
		"Ask for feedback on presentations and emails",
	},
	"Teamwork": {
		"Volunteer for group projects",
		"Participate in team-building activities",
		"Practice active listening and constructive feedback",
	},
	"Creativity": {
		"Explore new technologies outside your comfort zone",
		"Brainstorm multiple solutions before implementation",
		"Study innovative approaches in your field",
	},
	"Delivery Quality": {
		"Implement code reviews and testing in your workflow",
		"Set personal quality standards for your work",
		"Study best practices for your development environment",
	},
	"Project Management": {
		"Learn a project management methodology (Agile, Scrum)",
		"Use project management tools for personal projects",
		"Practice estimating and tracking time for tasks",
	},
	"Adaptability": {
		"Regularly learn new technologies or frameworks",
		"Seek feedback and adjust approaches accordingly",
		"Practice responding positively to change",
	},
}

var genericSuggestions = []string{
	"Continue to seek feedback on your work and identify areas for growth",
	"Consider finding a mentor in your field of interest",
	"Set aside regular time for deliberate practice in your weakest areas",
}

// DevelopmentSuggestions maps improvement-area labels to concrete
// professional development suggestions; generic advice when no area matches
// a known criterion.
func DevelopmentSuggestions(areas []string) []string {
	var out []string
	for _, area := range areas {
		for label, suggestions := range developmentSuggestions {
			if strings.Contains(area, label) {
				out = append(out, suggestions...)
				break
			}
		}
	}
	if len(out) == 0 {
		return genericSuggestions
	}
	return out
}
