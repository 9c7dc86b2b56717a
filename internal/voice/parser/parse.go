package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/minakianandclaude/LifeTracker/internal/voice"
	"github.com/minakianandclaude/LifeTracker/pkg/ollama"
)

// Parse asks the model for a title and falls back to heuristic cleanup on any failure.
// No retries: one outbound call per invocation.
func (p *implParser) Parse(ctx context.Context, rawInput string) voice.ParsedTask {
	resp, err := p.llm.Generate(ctx, &ollama.GenerateRequest{
		Model:  p.cfg.Model,
		Prompt: buildPrompt(rawInput),
		Options: ollama.GenerateOptions{
			Temperature: p.cfg.Temperature,
			NumPredict:  p.cfg.NumPredict,
		},
	})
	if err != nil {
		p.l.Warnf(ctx, "voice/parser.Parse: LLM call failed, using fallback: %v", err)
		return fallback(rawInput, fmt.Sprintf("LLM parsing failed: %v", err))
	}

	title, err := extractTitle(resp.Response)
	if err != nil {
		p.l.Warnf(ctx, "voice/parser.Parse: unusable LLM reply %q: %v", resp.Response, err)
		return fallback(rawInput, err.Error())
	}

	p.l.Debugf(ctx, "voice/parser.Parse: extracted title %q", title)
	return voice.ParsedTask{
		Title:        title,
		Confidence:   voice.ConfidenceHigh,
		ParseWarning: false,
		ParseErrors:  nil,
	}
}

// CheckHealth lists the server's models and looks for one of the configured family.
func (p *implParser) CheckHealth(ctx context.Context) bool {
	models, err := p.llm.ListModels(ctx)
	if err != nil {
		p.l.Debugf(ctx, "voice/parser.CheckHealth: %v", err)
		return false
	}
	for _, m := range models {
		if strings.HasPrefix(m.Name, p.cfg.ModelFamily) {
			return true
		}
	}
	return false
}
