package ollama

import "time"

const (
	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default generation model
	DefaultModel = "gpt-oss:20b"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	generatePath = "/api/generate"
	tagsPath     = "/api/tags"
)
