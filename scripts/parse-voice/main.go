// Command parse-voice runs the voice parser once against a local Ollama and prints the result.
// Useful when tuning the prompt or trying a different model.
//
//	go run ./scripts/parse-voice "remind me to call the dentist tomorrow"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/minakianandclaude/LifeTracker/config"
	"github.com/minakianandclaude/LifeTracker/internal/voice"
	"github.com/minakianandclaude/LifeTracker/internal/voice/parser"
	"github.com/minakianandclaude/LifeTracker/pkg/log"
	"github.com/minakianandclaude/LifeTracker/pkg/ollama"
)

type output struct {
	Input        string           `json:"input"`
	Title        string           `json:"title"`
	Confidence   voice.Confidence `json:"confidence"`
	ParseWarning bool             `json:"parse_warning"`
	ParseErrors  *string          `json:"parse_errors"`
	LLMAvailable bool             `json:"llm_available"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/parse-voice/main.go <utterance>")
		fmt.Println(`Example: go run scripts/parse-voice/main.go "add buy milk to my list"`)
		os.Exit(1)
	}
	input := strings.TrimSpace(strings.Join(os.Args[1:], " "))

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         "development",
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})
	ctx := context.Background()

	llm, err := ollama.New(ollama.Config{
		BaseURL: cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
		Timeout: cfg.Ollama.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Ollama client: %v", err)
	}

	p := parser.New(logger, llm, parser.Config{
		Model:       cfg.Ollama.Model,
		ModelFamily: cfg.Ollama.ModelFamily,
		Temperature: cfg.Ollama.Temperature,
		NumPredict:  cfg.Ollama.NumPredict,
	})

	healthy := p.CheckHealth(ctx)
	parsed := p.Parse(ctx, input)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(output{
		Input:        input,
		Title:        parsed.Title,
		Confidence:   parsed.Confidence,
		ParseWarning: parsed.ParseWarning,
		ParseErrors:  parsed.ParseErrors,
		LLMAvailable: healthy,
	})
}
