package ollama

import "context"

// IOllama defines the interface for an Ollama inference server.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate runs a single non-streaming completion.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// ListModels returns the models installed on the server.
	ListModels(ctx context.Context) ([]ModelInfo, error)

	// Model returns the default model used when a request leaves it empty.
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
