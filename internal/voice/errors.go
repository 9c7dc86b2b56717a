package voice

import "errors"

var (
	ErrEmptyInput   = errors.New("input is required")
	ErrInputTooLong = errors.New("input must be at most 1000 characters")
)

// Reasons a model reply is rejected; their text ends up in ParsedTask.ParseErrors.
var (
	ErrNoJSON       = errors.New("no JSON found in LLM response")
	ErrMissingTitle = errors.New("LLM response missing title field")
	ErrEmptyTitle   = errors.New("LLM returned empty title")
)
