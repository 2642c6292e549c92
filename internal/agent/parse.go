package agent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var stepNumbering = regexp.MustCompile(`^\d+\.\s*`)

// splitSteps turns a line-per-step completion into a clean slice: blank lines
// dropped, leading "1. " numbering stripped.
func splitSteps(raw string) []string {
	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = stepNumbering.ReplaceAllString(line, "")
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// score reads a single criterion from the model's JSON. The API returns
// digits inside strings ("8"); gjson coerces either form. Missing or
// non-numeric values read as 0, out-of-range values are clamped to [0,10].
func score(doc gjson.Result, key string) float64 {
	return clampScore(doc.Get(key).Float())
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// joinLines renders a field that the model may return either as a string or
// as an array of strings.
func joinLines(r gjson.Result) string {
	if !r.IsArray() {
		return r.String()
	}
	var lines []string
	for _, item := range r.Array() {
		lines = append(lines, item.String())
	}
	return strings.Join(lines, "\n")
}

// parseDemandingEvaluation parses the demanding strategy's 8-criterion JSON
// shape. Individual missing fields default silently; only a response that is
// not JSON at all is an error (the caller substitutes the fallback payload).
func parseDemandingEvaluation(raw string) (EvaluationResult, error) {
	if !gjson.Valid(raw) {
		return EvaluationResult{}, fmt.Errorf("response is not valid JSON")
	}
	doc := gjson.Parse(raw)

	return EvaluationResult{
		TechnicalSkills:        score(doc, "technicalSkills"),
		ProblemSolving:         score(doc, "problemSolving"),
		Communication:          score(doc, "communication"),
		Teamwork:               score(doc, "teamwork"),
		Creativity:             score(doc, "creativity"),
		DeliveryQuality:        score(doc, "deliveryQuality"),
		ProjectManagement:      score(doc, "projectManagement"),
		Adaptability:           score(doc, "adaptability"),
		Collaboration:          score(doc, "collaboration"),
		RolePerformance:        score(doc, "rolePerformance"),
		ConflictResolution:     score(doc, "conflictResolution"),
		LeadershipContribution: score(doc, "leadershipContribution"),
		Strengths:              joinLines(doc.Get("strengths")),
		AreasForImprovement:    joinLines(doc.Get("areasForImprovement")),
		Feedback:               doc.Get("feedback").String(),
		OverallRating:          score(doc, "overallRating"),
	}, nil
}

// parseSupportiveEvaluation parses the supportive strategy's star/suggestions
// shape into the shared result type. Its prompt asks for no per-criterion
// scores, so those fields stay zero; a supportive evaluation fed into the
// criteria pipeline scores 0 across the board by the missing-reads-as-0 rule.
func parseSupportiveEvaluation(raw string) (EvaluationResult, error) {
	if !gjson.Valid(raw) {
		return EvaluationResult{}, fmt.Errorf("response is not valid JSON")
	}
	doc := gjson.Parse(raw)

	return EvaluationResult{
		Strengths:           joinLines(doc.Get("strengths")),
		AreasForImprovement: joinLines(doc.Get("gentleSuggestions")),
		Feedback:            joinLines(doc.Get("encouragingNextSteps")),
		OverallRating:       clampScore(doc.Get("overallRating").Float()),
	}, nil
}

// Fallback payloads are compile-time values so degraded behaviour is exact
// and testable.

// demandingParseFallback is returned when the model answered but not in the
// requested JSON shape: mid scores, generic commentary.
var demandingParseFallback = EvaluationResult{
	TechnicalSkills:     6,
	ProblemSolving:      6,
	Communication:       5,
	Teamwork:            6,
	Creativity:          5,
	DeliveryQuality:     6,
	ProjectManagement:   5,
	Adaptability:        5,
	Strengths:           "- Shows basic understanding of concepts\n- Attempted to complete all requirements",
	AreasForImprovement: "- Need more attention to detail\n- Documentation is insufficient\n- Code quality needs improvement",
	Feedback:            "The submission meets minimum requirements but lacks the polish and attention to detail that would elevate it to a higher standard. Significant improvement is needed in documentation, code quality, and overall deliverable completeness.",
	OverallRating:       5.5,
}

// demandingCompletionFallback is returned when the completion call itself
// failed: slightly lower scores than the parse fallback.
var demandingCompletionFallback = EvaluationResult{
	TechnicalSkills:     5,
	ProblemSolving:      5,
	Communication:       4,
	Teamwork:            5,
	Creativity:          4,
	DeliveryQuality:     5,
	ProjectManagement:   4,
	Adaptability:        4,
	Strengths:           "- Basic implementation completed\n- Some understanding of requirements shown",
	AreasForImprovement: "- Need more thorough implementation\n- Documentation missing\n- Quality control needed",
	Feedback:            "This submission falls below expectations. The implementation is basic and lacks attention to detail. Significant improvements are needed across all areas, particularly in documentation and overall quality.",
	OverallRating:       4.5,
}

var supportiveFallback = EvaluationResult{
	Strengths:           "You've put good effort into this submission",
	AreasForImprovement: "Consider exploring additional perspectives",
	Feedback:            "Continue building on your strengths",
	OverallRating:       4,
}
