package voice

import "github.com/minakianandclaude/LifeTracker/internal/model"

// MaxInputLength is the longest utterance accepted, counted in characters after trimming.
const MaxInputLength = 1000

// Confidence signals where a parsed title came from.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high" // extracted by the model
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low" // heuristic fallback
)

// ParsedTask is the structured result of parsing one utterance.
// High confidence implies no warning, and no warning implies ParseErrors is nil.
type ParsedTask struct {
	Title        string
	Confidence   Confidence
	ParseWarning bool
	ParseErrors  *string
}

// --- UseCase Inputs ---

type IntakeInput struct {
	Input string
}

// --- UseCase Outputs ---

type IntakeOutput struct {
	Message string
	Task    model.Task
	Parsed  ParsedTask
}

type HealthOutput struct {
	LLMAvailable bool
}
