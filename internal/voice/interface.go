package voice

import "context"

// Parser turns a free-text utterance into a task candidate.
// Implementations must be safe for concurrent use.
type Parser interface {
	// Parse never fails: problems are reported through ParseWarning and ParseErrors
	// and the title falls back to a cleaned-up copy of the input.
	Parse(ctx context.Context, rawInput string) ParsedTask

	// CheckHealth reports whether the inference service lists the expected model.
	CheckHealth(ctx context.Context) bool
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Intake parses the utterance and files the result in the inbox.
	Intake(ctx context.Context, input IntakeInput) (IntakeOutput, error)
	Health(ctx context.Context) HealthOutput
}
