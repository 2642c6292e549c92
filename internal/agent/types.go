package agent

import "github.com/google/uuid"

// Personality selects which strategy drives an agent's interactions.
type Personality string

const (
	PersonalityDemanding   Personality = "demanding"
	PersonalitySupportive  Personality = "supportive"
	PersonalityAnalytical  Personality = "analytical"
	PersonalityCreative    Personality = "creative"
	PersonalityChallenging Personality = "challenging"
)

// ProblemCategory is the agent's subject-matter focus.
type ProblemCategory string

const (
	CategoryTechnology         ProblemCategory = "technology"
	CategoryAutomation         ProblemCategory = "automation"
	CategoryProcessImprovement ProblemCategory = "process_improvement"
	CategoryInnovation         ProblemCategory = "innovation"
	CategorySocial             ProblemCategory = "social"
)

// Profile is the configured AI persona. Read-only during a strategy call.
type Profile struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Personality      Personality
	ProblemCategory  ProblemCategory
	ProblemStatement string
	IsActive         bool
}

// Submission is a point-in-time view of a milestone under evaluation,
// built fresh for each call. Not persisted.
type Submission struct {
	MilestoneTitle       string
	MilestoneDescription string
	SubmissionURL        string
	SubmissionNotes      string
	ProjectContext       ProjectContext
}

type ProjectContext struct {
	Title          string
	Description    string
	Status         string
	IsGroupProject bool
}

// EvaluationResult is the normalised structured output of EvaluateSubmission.
// Scores are 0-10 (clamped at parse time); criteria a strategy's prompt never
// asks for stay zero. Strengths and AreasForImprovement are newline-separated
// bullet text as returned by the model.
type EvaluationResult struct {
	TechnicalSkills        float64
	ProblemSolving         float64
	Communication          float64
	Teamwork               float64
	Creativity             float64
	DeliveryQuality        float64
	ProjectManagement      float64
	Adaptability           float64
	Collaboration          float64
	RolePerformance        float64
	ConflictResolution     float64
	LeadershipContribution float64
	Strengths              string
	AreasForImprovement    string
	Feedback               string
	OverallRating          float64
}
