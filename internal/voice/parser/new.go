package parser

import (
	"strings"

	"github.com/minakianandclaude/LifeTracker/internal/voice"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
	"github.com/minakianandclaude/LifeTracker/pkg/ollama"
)

const (
	DefaultTemperature = 0.1
	DefaultNumPredict  = 200
)

// Config tunes the parser. Zero values fall back to the defaults above;
// an empty Model uses the client's model and an empty ModelFamily is derived from it.
type Config struct {
	Model       string
	ModelFamily string // prefix a listed model name must have for CheckHealth
	Temperature float64
	NumPredict  int
}

type implParser struct {
	l   log.Logger
	llm ollama.IOllama
	cfg Config
}

// New creates a voice.Parser backed by an Ollama client.
func New(l log.Logger, llm ollama.IOllama, cfg Config) voice.Parser {
	if cfg.Model == "" {
		cfg.Model = llm.Model()
	}
	if cfg.ModelFamily == "" {
		cfg.ModelFamily = modelFamily(cfg.Model)
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.NumPredict <= 0 {
		cfg.NumPredict = DefaultNumPredict
	}

	return &implParser{
		l:   l,
		llm: llm,
		cfg: cfg,
	}
}

// modelFamily strips the tag from an Ollama model name: "gpt-oss:20b" -> "gpt-oss".
func modelFamily(model string) string {
	if i := strings.IndexByte(model, ':'); i >= 0 {
		return model[:i]
	}
	return model
}
